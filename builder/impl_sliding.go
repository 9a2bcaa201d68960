// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_sliding.go: Windows(n, k), sliding windows over a node sequence; the
// hypergraph analogue of a path.
//
// Contract:
//   - n ≥ 1 (ErrTooFewNodes), 1 ≤ k ≤ n (ErrBadArity).
//   - Adds nodes v0..v(n-1), then edges {v_i, ..., v_(i+k-1)} for i = 0..n-k,
//     in increasing i.
//   - k == 1 yields n singleton edges; k == n yields one edge over every node.
//
// Complexity: O(n) nodes + O((n-k+1)·k) member writes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

const methodWindows = "Windows"

// Windows returns a Constructor building n nodes covered by sliding windows of size k.
func Windows(n, k int) Constructor {
	return func(g *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWindows, n, minNodes, ErrTooFewNodes)
		}
		if k < 1 || k > n {
			return fmt.Errorf("%s: k=%d not in [1,%d]: %w", methodWindows, k, n, ErrBadArity)
		}

		ids, err := addNodes(g, n, cfg, methodWindows)
		if err != nil {
			return err
		}

		em := newEdgeEmitter(g, cfg, methodWindows)
		for i := 0; i+k <= n; i++ {
			if _, err = em.emit(ids[i : i+k]); err != nil {
				return err
			}
		}

		return nil
	}
}
