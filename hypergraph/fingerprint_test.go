package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

func TestFingerprint_PermutationInvariant(t *testing.T) {
	base := hypergraph.Fingerprint(ids(1, 0, 5, 6))
	for _, perm := range [][]hypergraph.NodeID{
		ids(0, 1, 5, 6),
		ids(6, 5, 1, 0),
		ids(5, 0, 6, 1),
		ids(1, 1, 0, 5, 6, 6),
	} {
		assert.Equal(t, base, hypergraph.Fingerprint(perm), "%v", perm)
	}
}

func TestFingerprint_DistinguishesSets(t *testing.T) {
	seen := map[uint64][]hypergraph.NodeID{}
	for _, set := range [][]hypergraph.NodeID{
		ids(1, 2), ids(1, 3), ids(2, 3), ids(1, 2, 3), ids(0), ids(3), ids(-1, 2),
	} {
		fp := hypergraph.Fingerprint(set)
		prev, dup := seen[fp]
		assert.False(t, dup, "%v collides with %v", set, prev)
		seen[fp] = set
	}
}

func TestFingerprint_DoesNotMutateInput(t *testing.T) {
	in := ids(3, 1, 3, 2)
	_ = hypergraph.Fingerprint(in)
	assert.Equal(t, ids(3, 1, 3, 2), in)
}
