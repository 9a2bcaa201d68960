// SPDX-License-Identifier: MIT
// Package hypergraph_test contains fixtures shared by the hypergraph tests.
package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Common weights used across tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight7 = 7
	Weight8 = 8
)

// MissingNode is never added by any fixture.
const MissingNode hypergraph.NodeID = 99

// ids is shorthand for a NodeID slice literal.
func ids(v ...int) []hypergraph.NodeID {
	out := make([]hypergraph.NodeID, len(v))
	for i, x := range v {
		out[i] = hypergraph.NodeID(x)
	}

	return out
}

// addNodes adds n nodes with weight 0 to a Sequential graph.
func addNodes(t *testing.T, g *hypergraph.Hypergraph, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := g.AddNode(Weight0)
		require.NoError(t, err)
	}
}

// addExplicitNodes adds the given ids with weight 0 to an Explicit graph.
func addExplicitNodes(t *testing.T, g *hypergraph.Hypergraph, nodeIDs ...int) {
	t.Helper()
	for _, id := range nodeIDs {
		_, err := g.AddNode(Weight0, hypergraph.WithNodeID(hypergraph.NodeID(id)))
		require.NoError(t, err)
	}
}

// newSevenNodeGraph builds the reference fixture: nodes 0..6 and edges
// {1,2}, {2,3,4}, {5,6,4}, {1,0,5,6} on a Sequential graph.
func newSevenNodeGraph(t *testing.T, opts ...hypergraph.GraphOption) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New(opts...)
	addNodes(t, g, 7)
	for _, members := range [][]hypergraph.NodeID{ids(1, 2), ids(2, 3, 4), ids(5, 6, 4), ids(1, 0, 5, 6)} {
		_, err := g.AddEdge(members, Weight0)
		require.NoError(t, err)
	}

	return g
}
