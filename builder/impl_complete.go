// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_complete.go: CompleteUniform(n, k): the complete k-uniform hypergraph.
//
// Contract:
//   - n ≥ 1 (ErrTooFewNodes), 1 ≤ k ≤ n (ErrBadArity), n ≤ MaxCompleteNodes (ErrTooLarge).
//   - Edges are every k-subset of the n new nodes, emitted in lexicographic
//     order of node position.
//
// Complexity: O(C(n,k)·k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

const methodCompleteUniform = "CompleteUniform"

// MaxCompleteNodes bounds CompleteUniform; C(20,10) is already 184756 edges.
const MaxCompleteNodes = 20

// CompleteUniform returns a Constructor adding n nodes and every k-subset of them as an edge.
func CompleteUniform(n, k int) Constructor {
	return func(g *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCompleteUniform, n, minNodes, ErrTooFewNodes)
		}
		if k < 1 || k > n {
			return fmt.Errorf("%s: k=%d not in [1,%d]: %w", methodCompleteUniform, k, n, ErrBadArity)
		}
		if n > MaxCompleteNodes {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodCompleteUniform, n, MaxCompleteNodes, ErrTooLarge)
		}

		ids, err := addNodes(g, n, cfg, methodCompleteUniform)
		if err != nil {
			return err
		}

		em := newEdgeEmitter(g, cfg, methodCompleteUniform)
		// idx holds the current combination as ascending positions into ids.
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		members := make([]hypergraph.NodeID, k)
		for {
			for i, p := range idx {
				members[i] = ids[p]
			}
			if _, err = em.emit(members); err != nil {
				return err
			}

			// advance to the next combination
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return nil
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
