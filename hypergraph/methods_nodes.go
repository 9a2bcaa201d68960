// File: methods_nodes.go
// Role: Node lifecycle & queries, including the removal cascade into edges.
//
// Determinism:
//   - Nodes() and NodeIDList() return ascending ids.
//   - IncidentEdges() returns ascending edge ids.
//
// Concurrency:
//   - Mutations hold g.mu for writing; queries hold it for reading.

package hypergraph

import (
	"fmt"
	"slices"
)

// AddNode inserts a node with the given weight and returns its id.
//
// Implementation:
//   - Stage 1: Collect per-call options (WithNodeID).
//   - Stage 2: Ask the policy for the id (Sequential assigns, Explicit validates presence).
//   - Stage 3: Reject an id already in the node store.
//   - Stage 4: Insert and advance the high-water mark.
//
// Errors:
//   - ErrIDRequired: Explicit policy without WithNodeID.
//   - ErrExplicitIDNotAllowed: Sequential policy with WithNodeID.
//   - ErrDuplicateID: id already present.
//
// Complexity: O(1) amortized.
func (g *Hypergraph) AddNode(weight int64, opts ...NodeOption) (NodeID, error) {
	var call callOpts
	for _, opt := range opts {
		opt(&call)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	raw, err := g.policy.allocate(call, g.maxNodeID)
	if err != nil {
		return 0, fmt.Errorf("AddNode: %w", err)
	}
	id := NodeID(raw)
	if _, exists := g.nodes[id]; exists {
		return 0, fmt.Errorf("AddNode(id=%d): %w", id, ErrDuplicateID)
	}

	g.nodes[id] = &node{id: id, weight: weight}
	if raw > g.maxNodeID {
		g.maxNodeID = raw
	}

	return id, nil
}

// HasNode reports whether id is in the node store. Never fails.
func (g *Hypergraph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// NodeWeight returns the weight stored for node id.
// Errors: ErrNodeNotFound.
func (g *Hypergraph) NodeWeight(id NodeID) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("NodeWeight(id=%d): %w", id, ErrNodeNotFound)
	}

	return n.weight, nil
}

// NodeCount returns the number of nodes. O(1).
func (g *Hypergraph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// NodeIDList returns every node id in ascending order.
func (g *Hypergraph) NodeIDList() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedNodeIDs()
}

// Nodes returns a copy of every node in ascending id order.
// Complexity: O(V log V).
func (g *Hypergraph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodeSnapshot()
}

// Degree returns how many edges reference node id.
// Errors: ErrNodeNotFound.
// Complexity: O(E·k) for edges of size k.
func (g *Hypergraph) Degree(id NodeID) (int, error) {
	incident, err := g.IncidentEdges(id)
	if err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}

	return len(incident), nil
}

// IncidentEdges returns the ids of all edges referencing node id, ascending.
// Errors: ErrNodeNotFound.
func (g *Hypergraph) IncidentEdges(id NodeID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("IncidentEdges(id=%d): %w", id, ErrNodeNotFound)
	}

	out := make([]EdgeID, 0)
	for eid, e := range g.edges {
		if slices.Contains(e.members, id) {
			out = append(out, eid)
		}
	}
	slices.Sort(out)

	return out, nil
}

// RemoveNode deletes node id and strips it from every edge referencing it.
// An edge left without members is deleted as well.
//
// Implementation:
//   - Stage 1: Verify presence (ErrNodeNotFound).
//   - Stage 2: Plan. Scan every edge once; for each edge holding id compute the
//     new member list (every occurrence removed) and its fingerprint, or mark
//     it for deletion when nothing remains.
//   - Stage 3: With duplicate detection on, reject the plan if a rewritten edge
//     would end up equal to another edge (ErrDuplicateEdgeContent).
//   - Stage 4: Commit the rewrites, then delete the node.
//
// Member order after a rewrite follows the policy: Sequential keeps ascending
// order, Explicit moves the last member into each vacated slot.
//
// Errors:
//   - ErrNodeNotFound: id absent.
//   - ErrDuplicateEdgeContent: the cascade would create a content duplicate.
//
// Complexity: O(E·k) time, O(touched·k) extra space.
func (g *Hypergraph) RemoveNode(id NodeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("RemoveNode(id=%d): %w", id, ErrNodeNotFound)
	}

	plan := g.planNodeRemoval(id)
	if g.dedup {
		if err := g.checkRewrites(plan); err != nil {
			return fmt.Errorf("RemoveNode(id=%d): %w", id, err)
		}
	}

	for _, rw := range plan {
		g.unindexEdge(rw.e)
		if rw.drop {
			delete(g.edges, rw.e.id)
			continue
		}
		rw.e.members = rw.members
		rw.e.fp = rw.fp
		g.indexEdge(rw.e)
	}
	delete(g.nodes, id)

	return nil
}

// edgeRewrite is one planned edge change inside a node removal.
type edgeRewrite struct {
	e       *edge
	members []NodeID // new members; nil when drop
	fp      uint64
	drop    bool
}

// planNodeRemoval computes, without mutating anything, how each edge holding id changes.
// The plan is ordered by ascending edge id so error messages are reproducible.
func (g *Hypergraph) planNodeRemoval(id NodeID) []edgeRewrite {
	var plan []edgeRewrite
	for _, eid := range g.sortedEdgeIDs() {
		e := g.edges[eid]
		if !slices.Contains(e.members, id) {
			continue
		}
		members := g.stripMember(e.members, id)
		if len(members) == 0 {
			plan = append(plan, edgeRewrite{e: e, drop: true})
			continue
		}
		plan = append(plan, edgeRewrite{e: e, members: members, fp: Fingerprint(members)})
	}

	return plan
}

// stripMember returns a copy of members with every occurrence of id removed.
func (g *Hypergraph) stripMember(members []NodeID, id NodeID) []NodeID {
	out := slices.Clone(members)
	if g.policy.sortsMembers() {
		return slices.DeleteFunc(out, func(m NodeID) bool { return m == id })
	}

	// swap-with-last and truncate; order is not preserved
	for i := 0; i < len(out); {
		if out[i] != id {
			i++
			continue
		}
		last := len(out) - 1
		out[i] = out[last]
		out = out[:last]
	}

	return out
}

// checkRewrites reports a duplicate if any surviving rewritten edge would equal
// an edge the plan leaves untouched. Two rewritten edges cannot collide: both
// held id, so equal remainders would mean they were already equal.
func (g *Hypergraph) checkRewrites(plan []edgeRewrite) error {
	touched := make(map[EdgeID]struct{}, len(plan))
	for _, rw := range plan {
		touched[rw.e.id] = struct{}{}
	}
	skipTouched := func(eid EdgeID) bool {
		_, ok := touched[eid]
		return ok
	}

	for _, rw := range plan {
		if rw.drop {
			continue
		}
		if other, dup := g.findDuplicate(rw.members, rw.fp, skipTouched); dup {
			return fmt.Errorf("edge %d would duplicate edge %d: %w", rw.e.id, other, ErrDuplicateEdgeContent)
		}
	}

	return nil
}

// sortedNodeIDs lists node ids ascending. Caller holds g.mu.
func (g *Hypergraph) sortedNodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// nodeSnapshot copies nodes ascending. Caller holds g.mu.
func (g *Hypergraph) nodeSnapshot() []Node {
	out := make([]Node, 0, len(g.nodes))
	for _, id := range g.sortedNodeIDs() {
		n := g.nodes[id]
		out = append(out, Node{ID: n.id, Weight: n.weight})
	}

	return out
}
