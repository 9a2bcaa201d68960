// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// impl_nodes.go: Nodes(n): n isolated nodes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

const (
	methodNodes = "Nodes"
	minNodes    = 1
)

// Nodes returns a Constructor adding n nodes and no edges (n ≥ 1).
func Nodes(n int) Constructor {
	return func(g *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodNodes, n, minNodes, ErrTooFewNodes)
		}
		_, err := addNodes(g, n, cfg, methodNodes)

		return err
	}
}
