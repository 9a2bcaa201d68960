package hmetis_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlath/hmetis"
	"github.com/katalvlaran/hyperlath/hypergraph"
)

type weightedEdge struct {
	members []hypergraph.NodeID
	weight  int64
}

func nodes(v ...hypergraph.NodeID) []hypergraph.NodeID { return v }

// build adds one node per entry of nodeWeights, then the edges in order.
func build(t *testing.T, nodeWeights []int64, edges []weightedEdge, opts ...hypergraph.GraphOption) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New(opts...)
	for _, w := range nodeWeights {
		_, err := g.AddNode(w)
		require.NoError(t, err)
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.members, e.weight)
		require.NoError(t, err)
	}

	return g
}

func zeros(n int) []int64 { return make([]int64, n) }

var (
	fixtureEdges = []weightedEdge{
		{nodes(1, 2), 0},
		{nodes(2, 3, 4), 0},
		{nodes(5, 6, 4), 0},
		{nodes(1, 0, 5, 6), 0},
	}
	weightedFixtureEdges = []weightedEdge{
		{nodes(1, 2), 2},
		{nodes(1, 0, 5, 6), 3},
		{nodes(5, 6, 4), 8},
		{nodes(2, 3, 4), 7},
	}
)

func TestWrite_Formats(t *testing.T) {
	cases := []struct {
		name  string
		nodeW []int64
		edges []weightedEdge
		opts  []hypergraph.GraphOption
		want  string
	}{
		{
			name:  "unweighted",
			nodeW: zeros(7),
			edges: fixtureEdges,
			want:  "4 7 \n1 2 \n2 3 4 \n4 5 6 \n0 1 5 6 \n",
		},
		{
			name:  "edge weights",
			nodeW: zeros(7),
			edges: weightedFixtureEdges,
			opts:  []hypergraph.GraphOption{hypergraph.WithWeightedEdges()},
			want:  "4 7 1\n2 1 2 \n3 0 1 5 6 \n8 4 5 6 \n7 2 3 4 \n",
		},
		{
			name:  "node weights",
			nodeW: []int64{3, 5, 1, 8, 7, 3, 9},
			edges: fixtureEdges,
			opts:  []hypergraph.GraphOption{hypergraph.WithWeightedNodes()},
			want:  "4 7 10\n1 2 \n2 3 4 \n4 5 6 \n0 1 5 6 \n3\n5\n1\n8\n7\n3\n9\n",
		},
		{
			name:  "both weighted",
			nodeW: []int64{3, 5, 1, 8, 7, 9, 3},
			edges: weightedFixtureEdges,
			opts:  []hypergraph.GraphOption{hypergraph.WithWeightedNodes(), hypergraph.WithWeightedEdges()},
			want:  "4 7 11\n2 1 2 \n3 0 1 5 6 \n8 4 5 6 \n7 2 3 4 \n3\n5\n1\n8\n7\n9\n3\n",
		},
		{
			name:  "weights ignored when flags are off",
			nodeW: []int64{4, 6},
			edges: []weightedEdge{{nodes(0, 1), 9}},
			want:  "1 2 \n0 1 \n",
		},
		{
			name:  "empty graph",
			want:  "0 0 \n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.nodeW, tc.edges, tc.opts...)
			var buf bytes.Buffer
			require.NoError(t, hmetis.Write(&buf, g))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWrite_ExplicitKeepsInputOrder(t *testing.T) {
	g := hypergraph.New(hypergraph.WithIDPolicy(hypergraph.Explicit))
	for i := 0; i < 7; i++ {
		_, err := g.AddNode(0, hypergraph.WithNodeID(hypergraph.NodeID(i)))
		require.NoError(t, err)
	}
	_, err := g.AddEdge(nodes(5, 6, 4), 0, hypergraph.WithEdgeID(0))
	require.NoError(t, err)

	out, err := hmetis.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, "1 7 \n5 6 4 \n", string(out))
}

func TestWrite_RemappedIDs(t *testing.T) {
	g := hypergraph.New(hypergraph.WithIDPolicy(hypergraph.Explicit))
	for _, id := range nodes(10, 20, 30) {
		_, err := g.AddNode(0, hypergraph.WithNodeID(id))
		require.NoError(t, err)
	}
	_, err := g.AddEdge(nodes(30, 10), 0, hypergraph.WithEdgeID(7))
	require.NoError(t, err)

	raw, err := hmetis.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, "1 3 \n30 10 \n", string(raw))

	oneBased, err := hmetis.Marshal(g, hmetis.WithRemappedIDs(1))
	require.NoError(t, err)
	assert.Equal(t, "1 3 \n3 1 \n", string(oneBased))

	zeroBased, err := hmetis.Marshal(g, hmetis.WithRemappedIDs(0))
	require.NoError(t, err)
	assert.Equal(t, "1 3 \n2 0 \n", string(zeroBased))
}

func TestWrite_DoesNotMutate(t *testing.T) {
	g := build(t, zeros(7), fixtureEdges)
	before := g.Snapshot()

	_, err := hmetis.Marshal(g, hmetis.WithRemappedIDs(1))
	require.NoError(t, err)
	assert.Equal(t, before, g.Snapshot())
}

var errSink = errors.New("sink closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWrite_Errors(t *testing.T) {
	g := build(t, zeros(2), []weightedEdge{{nodes(0, 1), 0}})

	require.ErrorIs(t, hmetis.Write(failingWriter{}, g), errSink)
	require.ErrorIs(t, hmetis.Write(&bytes.Buffer{}, nil), hmetis.ErrNilGraph)
	require.ErrorIs(t, hmetis.Write(nil, g), hmetis.ErrNilWriter)

	_, err := hmetis.Marshal(nil)
	require.ErrorIs(t, err, hmetis.ErrNilGraph)
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, hmetis.FormatUnweighted, hmetis.FormatCode(false, false))
	assert.Equal(t, hmetis.FormatEdgeWeights, hmetis.FormatCode(false, true))
	assert.Equal(t, hmetis.FormatNodeWeights, hmetis.FormatCode(true, false))
	assert.Equal(t, hmetis.FormatBothWeighted, hmetis.FormatCode(true, true))
}
