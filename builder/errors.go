// SPDX-License-Identifier: MIT
// Package: hyperlath/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Constructors wrap them with the method name: "Windows: n=0 < min=1: %w".
//   • Errors coming from the hypergraph store are wrapped, never replaced,
//     so hypergraph.ErrDuplicateID and friends stay matchable.
//   • Constructors never panic; option constructors panic on nil arguments.

package builder

import "errors"

// ErrTooFewNodes indicates a node count below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrBadArity indicates an edge size k outside [1, n].
var ErrBadArity = errors.New("builder: edge arity out of range")

// ErrTooLarge indicates a request whose output would exceed the documented
// bound (CompleteUniform node cap, more distinct edges than k-subsets exist).
var ErrTooLarge = errors.New("builder: requested topology too large")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the constructor gave up (nil constructor,
// exhausted retries) without breaking store invariants.
var ErrConstructFailed = errors.New("builder: construction failed")
