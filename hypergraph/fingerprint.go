// File: fingerprint.go
// Role: order-independent content hash over an edge's node-id set.
//
// The fingerprint is a pre-filter only. The store keeps byFingerprint as an
// index and confirms a match with an exact set comparison, so two distinct sets
// that collide on 64 bits are still both accepted.

package hypergraph

import (
	"encoding/binary"
	"slices"

	"github.com/zeebo/xxh3"
)

// fingerprintWidth is the number of bytes each id contributes to the hash input.
const fingerprintWidth = 8

// Fingerprint returns a 64-bit hash of the set of ids in nodeIDs.
// Any permutation of the same ids, with or without repeats, yields the same value.
//
// Implementation:
//   - Stage 1: canonicalise (sorted copy, repeats dropped).
//   - Stage 2: encode each id as 8 little-endian bytes.
//   - Stage 3: xxh3-64 over the encoded buffer.
//
// Complexity: O(k log k) for k ids, O(k) extra space.
func Fingerprint(nodeIDs []NodeID) uint64 {
	return fingerprintCanonical(canonical(nodeIDs))
}

// fingerprintCanonical hashes an already canonical id list.
func fingerprintCanonical(set []NodeID) uint64 {
	buf := make([]byte, 0, len(set)*fingerprintWidth)
	for _, id := range set {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(id))
	}

	return xxh3.Hash(buf)
}

// canonical returns a sorted, repeat-free copy of ids. The input is not modified.
func canonical(ids []NodeID) []NodeID {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}

// sameSet reports whether a and b contain the same ids, ignoring order and repeats.
func sameSet(a, b []NodeID) bool {
	return slices.Equal(canonical(a), canonical(b))
}
