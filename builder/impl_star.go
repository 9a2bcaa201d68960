// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_star.go: Star(n): one center joined to each leaf by a 2-node edge.
//
// Contract:
//   - n ≥ 2 (ErrTooFewNodes).
//   - The first node added is the center; edges {center, leaf_i} follow leaf order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor building a center plus n-1 leaves.
func Star(n int) Constructor {
	return func(g *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}

		ids, err := addNodes(g, n, cfg, methodStar)
		if err != nil {
			return err
		}

		em := newEdgeEmitter(g, cfg, methodStar)
		center := ids[0]
		for _, leaf := range ids[1:] {
			if _, err = em.emit([]hypergraph.NodeID{center, leaf}); err != nil {
				return err
			}
		}

		return nil
	}
}
