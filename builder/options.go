// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil arguments; constructors themselves never panic.
//   • Randomness only through WithSeed / WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating the builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithEdgeWeightFn sets the edge weight generator. Consulted only when the
// target hypergraph exports edge weights. Panics on nil.
func WithEdgeWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeWeightFn(nil)")
	}

	return func(c *builderConfig) { c.edgeWeightFn = fn }
}

// WithNodeWeightFn sets the node weight generator. Consulted only when the
// target hypergraph exports node weights. Panics on nil.
func WithNodeWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNodeWeightFn(nil)")
	}

	return func(c *builderConfig) { c.nodeWeightFn = fn }
}
