// Package hypergraph provides an in-memory hypergraph: weighted nodes and
// weighted hyperedges, each hyperedge referencing a non-empty set of nodes.
//
// A Hypergraph H = (V, E) keeps these invariants after every successful call:
//
//   - node ids are unique, edge ids are unique;
//   - every id referenced by an edge exists in the node store;
//   - every edge has at least one member;
//   - with duplicate detection on, no two edges share the same node-id set.
//
// Identifier policies (WithIDPolicy):
//
//	Sequential (default)
//	    AddNode / AddEdge assign 0, 1, 2, ...; passing WithNodeID / WithEdgeID
//	    returns ErrExplicitIDNotAllowed. Ids are never reused after removal.
//	    Members are stored ascending. Duplicate detection on by default.
//	Explicit
//	    Every add needs WithNodeID / WithEdgeID (else ErrIDRequired); an id
//	    already taken returns ErrDuplicateID. Members keep the caller's order.
//	    Duplicate detection off by default.
//
// Other options:
//
//	WithWeightedNodes()          export node weight lines
//	WithWeightedEdges()          export edge weight prefixes
//	WithDuplicateDetection(bool) override the policy default
//
// The weight flags influence serialization only (see package hmetis); weights
// are stored and returned regardless.
//
// Core methods:
//
//	AddNode(weight, opts...) (NodeID, error)            O(1)
//	AddEdge(nodeIDs, weight, opts...) (EdgeID, error)   O(k log k)
//	RemoveNode(id) error                                O(E·k), cascades into edges
//	RemoveEdge(id) error                                O(1)
//	HasNode(id) / HasEdge(id) bool                      O(1)
//	NodeWeight(id) / EdgeWeight(id) (int64, error)      O(1)
//	NodeIDs(edgeID) ([]NodeID, error)                   O(k), returns a copy
//	FindEdge(nodeIDs) (EdgeID, bool)                    content lookup
//	Nodes() / Edges() / Snapshot()                      ascending id order
//	Clone() / CloneEmpty() / Clear()
//
// Removing a node strips it from every edge; an edge left empty is deleted.
// The removal is all-or-nothing: if the rewritten edges would violate duplicate
// detection, RemoveNode returns ErrDuplicateEdgeContent and nothing changes.
//
// Errors:
//
//	ErrDuplicateID          – id already present
//	ErrNotFound             – umbrella for ErrNodeNotFound / ErrEdgeNotFound
//	ErrEmptyEdge            – edge with no members
//	ErrUnknownNode          – edge member not in the node store
//	ErrDuplicateEdgeContent – node-id set already used by another edge
//	ErrIDRequired           – Explicit policy, no id given
//	ErrExplicitIDNotAllowed – Sequential policy, id given
//
// All methods are safe for concurrent use; a single RWMutex guards the store.
package hypergraph
