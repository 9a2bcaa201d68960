// File: methods_edges.go
// Role: Hyperedge lifecycle & queries, plus the fingerprint index helpers.
//
// Determinism:
//   - Edges() and EdgeIDList() return ascending ids. Under Sequential this is
//     also insertion order because ids only grow.
//
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.

package hypergraph

import (
	"fmt"
	"slices"
)

// AddEdge creates a hyperedge over nodeIDs with the given weight and returns its id.
//
// Implementation:
//   - Stage 1: Collect per-call options (WithEdgeID) and resolve the id through the policy.
//   - Stage 2: Reject an empty member list (ErrEmptyEdge).
//   - Stage 3: Reject any member missing from the node store (ErrUnknownNode).
//   - Stage 4: Reject an id already in the edge store (ErrDuplicateID).
//   - Stage 5: With duplicate detection on, reject a node-id set equal to an
//     existing edge's (ErrDuplicateEdgeContent).
//   - Stage 6: Store a private copy of the members (ascending under Sequential,
//     verbatim under Explicit), cache the fingerprint, index it.
//
// Nothing is mutated unless every stage passes.
//
// Complexity: O(k log k) for k members, plus the size of the colliding fingerprint bucket.
func (g *Hypergraph) AddEdge(nodeIDs []NodeID, weight int64, opts ...EdgeOption) (EdgeID, error) {
	var call callOpts
	for _, opt := range opts {
		opt(&call)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	raw, err := g.policy.allocate(call, g.maxEdgeID)
	if err != nil {
		return 0, fmt.Errorf("AddEdge: %w", err)
	}
	id := EdgeID(raw)

	if len(nodeIDs) == 0 {
		return 0, fmt.Errorf("AddEdge(id=%d): %w", id, ErrEmptyEdge)
	}
	for _, nid := range nodeIDs {
		if _, ok := g.nodes[nid]; !ok {
			return 0, fmt.Errorf("AddEdge(id=%d): node %d: %w", id, nid, ErrUnknownNode)
		}
	}
	if _, exists := g.edges[id]; exists {
		return 0, fmt.Errorf("AddEdge(id=%d): %w", id, ErrDuplicateID)
	}

	members := slices.Clone(nodeIDs)
	if g.policy.sortsMembers() {
		slices.Sort(members)
	}
	fp := Fingerprint(members)
	if g.dedup {
		if other, dup := g.findDuplicate(members, fp, nil); dup {
			return 0, fmt.Errorf("AddEdge(id=%d): same nodes as edge %d: %w", id, other, ErrDuplicateEdgeContent)
		}
	}

	e := &edge{id: id, weight: weight, members: members, fp: fp}
	g.edges[id] = e
	g.indexEdge(e)
	if raw > g.maxEdgeID {
		g.maxEdgeID = raw
	}

	return id, nil
}

// RemoveEdge deletes edge id. Nodes are never removed as a consequence.
// Errors: ErrEdgeNotFound.
// Complexity: O(1) plus the size of the edge's fingerprint bucket.
func (g *Hypergraph) RemoveEdge(id EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("RemoveEdge(id=%d): %w", id, ErrEdgeNotFound)
	}
	g.unindexEdge(e)
	delete(g.edges, id)

	return nil
}

// HasEdge reports whether id is in the edge store. Never fails.
func (g *Hypergraph) HasEdge(id EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[id]

	return ok
}

// EdgeWeight returns the weight stored for edge id.
// Errors: ErrEdgeNotFound.
func (g *Hypergraph) EdgeWeight(id EdgeID) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return 0, fmt.Errorf("EdgeWeight(id=%d): %w", id, ErrEdgeNotFound)
	}

	return e.weight, nil
}

// NodeIDs returns a copy of the members of edge id in stored order.
// Under Sequential that order is ascending; under Explicit it is the order
// given to AddEdge, until a node removal moves members around.
// Errors: ErrEdgeNotFound.
func (g *Hypergraph) NodeIDs(id EdgeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return nil, fmt.Errorf("NodeIDs(id=%d): %w", id, ErrEdgeNotFound)
	}

	return slices.Clone(e.members), nil
}

// EdgeCount returns the number of edges. O(1).
func (g *Hypergraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeIDList returns every edge id in ascending order.
func (g *Hypergraph) EdgeIDList() []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdgeIDs()
}

// Edges returns deep copies of every edge in ascending id order.
// Complexity: O(E log E + Σk).
func (g *Hypergraph) Edges() []Hyperedge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeSnapshot()
}

// FindEdge returns the lowest-id edge whose node-id set equals nodeIDs.
// Order and repeats in nodeIDs are ignored.
func (g *Hypergraph) FindEdge(nodeIDs []NodeID) (EdgeID, bool) {
	if len(nodeIDs) == 0 {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.findDuplicate(nodeIDs, Fingerprint(nodeIDs), nil)
}

// findDuplicate looks up edges sharing fp and confirms with an exact set
// comparison. Edges for which skip returns true are ignored. Among several
// matches the lowest id wins. Caller holds g.mu.
func (g *Hypergraph) findDuplicate(members []NodeID, fp uint64, skip func(EdgeID) bool) (EdgeID, bool) {
	var (
		best  EdgeID
		found bool
	)
	for _, eid := range g.byFingerprint[fp] {
		if skip != nil && skip(eid) {
			continue
		}
		if !sameSet(g.edges[eid].members, members) {
			continue
		}
		if !found || eid < best {
			best, found = eid, true
		}
	}

	return best, found
}

// indexEdge registers e under its cached fingerprint. Caller holds g.mu.
func (g *Hypergraph) indexEdge(e *edge) {
	g.byFingerprint[e.fp] = append(g.byFingerprint[e.fp], e.id)
}

// unindexEdge removes e from its fingerprint bucket. Caller holds g.mu.
func (g *Hypergraph) unindexEdge(e *edge) {
	bucket := slices.DeleteFunc(g.byFingerprint[e.fp], func(eid EdgeID) bool { return eid == e.id })
	if len(bucket) == 0 {
		delete(g.byFingerprint, e.fp)
		return
	}
	g.byFingerprint[e.fp] = bucket
}

// sortedEdgeIDs lists edge ids ascending. Caller holds g.mu.
func (g *Hypergraph) sortedEdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// edgeSnapshot deep-copies edges ascending. Caller holds g.mu.
func (g *Hypergraph) edgeSnapshot() []Hyperedge {
	out := make([]Hyperedge, 0, len(g.edges))
	for _, id := range g.sortedEdgeIDs() {
		out = append(out, g.edges[id].export())
	}

	return out
}
