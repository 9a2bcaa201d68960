package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

func TestClone_Independent(t *testing.T) {
	g := newSevenNodeGraph(t, hypergraph.WithWeightedEdges())
	clone := g.Clone()

	assert.Equal(t, g.Snapshot(), clone.Snapshot())
	assert.True(t, clone.WeightedEdges())
	assert.Equal(t, g.Policy(), clone.Policy())
	assert.Equal(t, g.DuplicateDetection(), clone.DuplicateDetection())

	require.NoError(t, clone.RemoveNode(4))
	assert.True(t, g.HasNode(4))
	members, err := g.NodeIDs(1)
	require.NoError(t, err)
	assert.Equal(t, ids(2, 3, 4), members)

	// the fingerprint index was copied, so dedup keeps working on the clone
	_, err = clone.AddEdge(ids(2, 1), Weight0)
	require.ErrorIs(t, err, hypergraph.ErrDuplicateEdgeContent)

	// allocators carry over
	id, err := clone.AddNode(Weight0)
	require.NoError(t, err)
	assert.Equal(t, hypergraph.NodeID(7), id)
}

func TestCloneEmpty(t *testing.T) {
	g := newSevenNodeGraph(t)
	empty := g.CloneEmpty()

	assert.Equal(t, 7, empty.NodeCount())
	assert.Zero(t, empty.EdgeCount())

	// content freed on the empty clone only
	_, err := empty.AddEdge(ids(1, 2), Weight0)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestClear(t *testing.T) {
	g := newSevenNodeGraph(t, hypergraph.WithWeightedNodes())
	g.Clear()

	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.True(t, g.WeightedNodes())

	id, err := g.AddNode(Weight0)
	require.NoError(t, err)
	assert.Equal(t, hypergraph.NodeID(0), id)
	_, ok := g.FindEdge(ids(1, 2))
	assert.False(t, ok)
}

func TestSnapshot_IsDetached(t *testing.T) {
	g := newSevenNodeGraph(t)
	s := g.Snapshot()
	require.Len(t, s.Edges, 4)
	require.Len(t, s.Nodes, 7)

	s.Edges[0].NodeIDs[0] = 6
	require.NoError(t, g.RemoveEdge(0))

	assert.Len(t, s.Edges, 4)
	assert.Equal(t, 3, g.EdgeCount())
	members, err := g.NodeIDs(1)
	require.NoError(t, err)
	assert.Equal(t, ids(2, 3, 4), members)
}
