// File: methods_clone.go
// Role: Cloning and clearing hypergraph instances.
//
// Clone and CloneEmpty carry the id allocators over, so Sequential ids on the
// clone continue where the source stopped and never collide with copied records.
// Clear keeps the configuration and rewinds the allocators.

package hypergraph

import (
	"maps"
	"slices"
)

// CloneEmpty returns a new Hypergraph with the same configuration and nodes, but no edges.
// Complexity: O(V).
func (g *Hypergraph) CloneEmpty() *Hypergraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.newConfigured()
	clone.maxNodeID = g.maxNodeID
	clone.maxEdgeID = g.maxEdgeID
	for id, n := range g.nodes {
		clone.nodes[id] = &node{id: n.id, weight: n.weight}
	}

	return clone
}

// Clone returns a deep copy: configuration, nodes, edges and the fingerprint index.
// Complexity: O(V + Σk).
func (g *Hypergraph) Clone() *Hypergraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.newConfigured()
	clone.maxNodeID = g.maxNodeID
	clone.maxEdgeID = g.maxEdgeID
	for id, n := range g.nodes {
		clone.nodes[id] = &node{id: n.id, weight: n.weight}
	}
	for id, e := range g.edges {
		clone.edges[id] = &edge{id: e.id, weight: e.weight, members: slices.Clone(e.members), fp: e.fp}
	}
	clone.byFingerprint = maps.Clone(g.byFingerprint)
	for fp, bucket := range clone.byFingerprint {
		clone.byFingerprint[fp] = slices.Clone(bucket)
	}

	return clone
}

// Clear removes every node and edge and rewinds the allocators.
// Flags, policy and duplicate detection are preserved. O(1).
func (g *Hypergraph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset()
}

// newConfigured builds an empty Hypergraph carrying g's configuration. Caller holds g.mu.
func (g *Hypergraph) newConfigured() *Hypergraph {
	opts := []GraphOption{WithIDPolicy(g.policy), WithDuplicateDetection(g.dedup)}
	if g.weightedNodes {
		opts = append(opts, WithWeightedNodes())
	}
	if g.weightedEdges {
		opts = append(opts, WithWeightedEdges())
	}

	return New(opts...)
}
