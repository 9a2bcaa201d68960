// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// config.go: resolved builder configuration and its defaults.
//
// Defaults:
//   • rng          = nil            (pure, deterministic unless seeded)
//   • nodeWeightFn = DefaultWeightFn
//   • edgeWeightFn = DefaultWeightFn

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. Passed by value.
type builderConfig struct {
	rng          *rand.Rand
	nodeWeightFn WeightFn
	edgeWeightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeWeightFn: DefaultWeightFn,
		edgeWeightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
