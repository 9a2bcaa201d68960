// SPDX-License-Identifier: MIT
// Package: hyperlath/hypergraph
//
// types.go: Node, Hyperedge, Hypergraph, option types and the New constructor.

package hypergraph

import "sync"

// NodeID identifies a node within one Hypergraph.
type NodeID int

// EdgeID identifies a hyperedge within one Hypergraph.
type EdgeID int

// Node is a weighted vertex. Weight is an opaque tag; it is never validated.
type Node struct {
	ID     NodeID
	Weight int64
}

// Hyperedge is a weighted relation over a non-empty list of node ids.
//
// Values returned by the Hypergraph are copies: mutating NodeIDs on a returned
// Hyperedge never reaches the store.
type Hyperedge struct {
	ID      EdgeID
	Weight  int64
	NodeIDs []NodeID
}

// node and edge are the store-owned records.
type node struct {
	id     NodeID
	weight int64
}

type edge struct {
	id      EdgeID
	weight  int64
	members []NodeID
	// fp caches Fingerprint(members); refreshed on every membership change.
	fp uint64
}

func (e *edge) export() Hyperedge {
	out := Hyperedge{ID: e.id, Weight: e.weight, NodeIDs: make([]NodeID, len(e.members))}
	copy(out.NodeIDs, e.members)

	return out
}

// GraphOption configures a Hypergraph before creation.
type GraphOption func(g *Hypergraph)

// WithWeightedNodes makes exports append one weight line per node.
func WithWeightedNodes() GraphOption {
	return func(g *Hypergraph) { g.weightedNodes = true }
}

// WithWeightedEdges makes exports prefix every edge line with the edge weight.
func WithWeightedEdges() GraphOption {
	return func(g *Hypergraph) { g.weightedEdges = true }
}

// WithIDPolicy selects how node and edge ids are allocated.
// Panics on nil: a store without a policy cannot assign or validate ids.
func WithIDPolicy(p IDPolicy) GraphOption {
	if p == nil {
		panic("hypergraph: WithIDPolicy(nil)")
	}

	return func(g *Hypergraph) { g.policy = p }
}

// WithDuplicateDetection overrides the policy default for rejecting edges whose
// node-id set equals an existing edge's.
func WithDuplicateDetection(enabled bool) GraphOption {
	return func(g *Hypergraph) {
		g.dedup = enabled
		g.dedupSet = true
	}
}

// NodeOption configures a single AddNode call.
type NodeOption func(*callOpts)

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*callOpts)

// callOpts carries per-call overrides. Only the id exists today.
type callOpts struct {
	id    int
	hasID bool
}

// WithNodeID supplies the id for AddNode under the Explicit policy.
func WithNodeID(id NodeID) NodeOption {
	return func(s *callOpts) { s.id, s.hasID = int(id), true }
}

// WithEdgeID supplies the id for AddEdge under the Explicit policy.
func WithEdgeID(id EdgeID) EdgeOption {
	return func(s *callOpts) { s.id, s.hasID = int(id), true }
}

// Hypergraph is an in-memory container of weighted nodes and weighted hyperedges.
//
// A single RWMutex guards every field: node removal rewrites several edges at
// once and must look atomic to readers.
type Hypergraph struct {
	mu sync.RWMutex

	// Configuration
	weightedNodes bool     // export node weight lines
	weightedEdges bool     // export edge weight prefixes
	policy        IDPolicy // id allocation strategy
	dedup         bool     // reject content-duplicate edges
	dedupSet      bool     // dedup was set explicitly, policy default ignored

	// Allocators: highest id ever handed out (or inserted), -1 when none.
	maxNodeID int
	maxEdgeID int

	// Storage
	nodes map[NodeID]*node
	edges map[EdgeID]*edge

	// byFingerprint[fp] lists every edge whose membership hashes to fp.
	byFingerprint map[uint64][]EdgeID
}

// New creates an empty Hypergraph.
// Defaults: Sequential ids, duplicate detection on, no weights exported.
// Complexity: O(1).
func New(opts ...GraphOption) *Hypergraph {
	g := &Hypergraph{policy: Sequential}
	for _, opt := range opts {
		opt(g)
	}
	if !g.dedupSet {
		g.dedup = g.policy.dedupByDefault()
	}
	g.reset()

	return g
}

// reset drops all records and rewinds the allocators; flags survive.
func (g *Hypergraph) reset() {
	g.nodes = make(map[NodeID]*node)
	g.edges = make(map[EdgeID]*edge)
	g.byFingerprint = make(map[uint64][]EdgeID)
	g.maxNodeID = -1
	g.maxEdgeID = -1
}

// WeightedNodes reports whether exports include node weight lines.
func (g *Hypergraph) WeightedNodes() bool { return g.weightedNodes }

// WeightedEdges reports whether exports prefix edge lines with weights.
func (g *Hypergraph) WeightedEdges() bool { return g.weightedEdges }

// Policy returns the id allocation policy chosen at construction.
func (g *Hypergraph) Policy() IDPolicy { return g.policy }

// DuplicateDetection reports whether content-duplicate edges are rejected.
func (g *Hypergraph) DuplicateDetection() bool { return g.dedup }
