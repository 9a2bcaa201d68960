// File: view.go
// Role: Read-only snapshots for consumers that need a consistent view (exporters).

package hypergraph

// Snapshot is an immutable copy of a Hypergraph taken under a single read lock.
// Nodes and Edges are in store order (ascending id). The slices belong to the
// caller; nothing in a Snapshot aliases the store.
type Snapshot struct {
	WeightedNodes bool
	WeightedEdges bool
	Nodes         []Node
	Edges         []Hyperedge
}

// Snapshot copies the current state. Complexity: O(V log V + E log E + Σk).
func (g *Hypergraph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Snapshot{
		WeightedNodes: g.weightedNodes,
		WeightedEdges: g.weightedEdges,
		Nodes:         g.nodeSnapshot(),
		Edges:         g.edgeSnapshot(),
	}
}
