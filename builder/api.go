// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// api.go: public entry point and constructor catalogue.
//
// Design contract:
//   - One orchestrator: BuildHypergraph(gopts, bopts, cons...).
//   - Constructors are declared here and implemented in impl_*.go.
//   - Same inputs, options, seed and constructor order ⇒ identical hypergraphs.
//   - Constructors add their own nodes; under the Explicit policy they take
//     node and edge ids just past the highest id already present, so several
//     constructors compose without collisions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlath/hypergraph"
)

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate their parameters first and return wrapped sentinels.
type Constructor func(g *hypergraph.Hypergraph, cfg builderConfig) error

// BuildHypergraph creates a hypergraph with gopts, resolves bopts, and applies
// cons in order. The first constructor error is returned wrapped as
// "BuildHypergraph: %w" together with a nil graph.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
func BuildHypergraph(gopts []hypergraph.GraphOption, bopts []BuilderOption, cons ...Constructor) (*hypergraph.Hypergraph, error) {
	g := hypergraph.New(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildHypergraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildHypergraph: %w", err)
		}
	}

	return g, nil
}

// Catalogue (implemented in impl_*.go):
//
//	Nodes(n)                 n isolated nodes.                         O(n)
//	Windows(n, k)            sliding windows {i..i+k-1}.               O(n·k)
//	Star(n)                  center + n-1 leaves, one edge per leaf.   O(n)
//	CompleteUniform(n, k)    every k-subset of n nodes (n ≤ 20).       O(C(n,k)·k)
//	RandomUniform(n, m, k)   m distinct random k-subsets, needs RNG.   O(m·n) expected
