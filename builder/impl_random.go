// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_random.go: RandomUniform(n, m, k): m distinct random k-subsets.
//
// Contract:
//   - Requires cfg.rng (ErrNeedRandSource).
//   - n ≥ 1 (ErrTooFewNodes), 1 ≤ k ≤ n (ErrBadArity),
//     0 ≤ m ≤ min(C(n,k), MaxRandomEdges) (ErrTooLarge).
//   - Each draw is a partial Fisher–Yates shuffle of the node positions; a
//     draw whose node set already exists (FindEdge) is discarded, regardless
//     of the store's duplicate-detection setting.
//   - At most m·maxDrawFactor draws; beyond that ErrConstructFailed.
//
// Determinism: identical for the same seed, parameters and prior graph state.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

const (
	methodRandomUniform = "RandomUniform"
	maxDrawFactor       = 64
)

// MaxRandomEdges bounds m in RandomUniform; it also keeps m·maxDrawFactor far from overflow.
const MaxRandomEdges = 1 << 20

// RandomUniform returns a Constructor adding n nodes and m distinct random edges of size k.
func RandomUniform(n, m, k int) Constructor {
	return func(g *hypergraph.Hypergraph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomUniform, ErrNeedRandSource)
		}
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomUniform, n, minNodes, ErrTooFewNodes)
		}
		if k < 1 || k > n {
			return fmt.Errorf("%s: k=%d not in [1,%d]: %w", methodRandomUniform, k, n, ErrBadArity)
		}
		if m < 0 || m > MaxRandomEdges {
			return fmt.Errorf("%s: m=%d not in [0,%d]: %w", methodRandomUniform, m, MaxRandomEdges, ErrTooLarge)
		}
		if m > binomial(n, k, m) {
			return fmt.Errorf("%s: m=%d exceeds C(%d,%d): %w", methodRandomUniform, m, n, k, ErrTooLarge)
		}

		ids, err := addNodes(g, n, cfg, methodRandomUniform)
		if err != nil {
			return err
		}

		em := newEdgeEmitter(g, cfg, methodRandomUniform)
		pool := make([]hypergraph.NodeID, n)
		copy(pool, ids)
		added, draws := 0, 0
		for added < m {
			if draws >= m*maxDrawFactor {
				return fmt.Errorf("%s: %d of %d edges after %d draws: %w",
					methodRandomUniform, added, m, draws, ErrConstructFailed)
			}
			draws++

			for i := 0; i < k; i++ {
				j := i + cfg.rng.Intn(n-i)
				pool[i], pool[j] = pool[j], pool[i]
			}
			if _, dup := g.FindEdge(pool[:k]); dup {
				continue
			}
			if _, err = em.emit(pool[:k]); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}
