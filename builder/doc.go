// Package builder provides deterministic, functional-options style
// constructors that populate a hypergraph.Hypergraph with standard topologies.
// It exists so tests, benchmarks and the hyperlath CLI can produce
// reproducible fixtures without hand-writing edge lists.
//
// The package offers the following components:
//
//   - Orchestration:
//     – Constructor:       func(*hypergraph.Hypergraph, builderConfig) error.
//     – BuildHypergraph:   New(gopts...) then each Constructor in order.
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand:             randomness for stochastic constructors.
//     – WithNodeWeightFn / WithEdgeWeightFn: weight generators.
//   - Weight distributions (WeightFn):
//     – DefaultWeightFn:   constant DefaultWeight.
//     – ConstantWeightFn:  fixed user value.
//     – UniformWeightFn:   uniform in [min,max], min on nil RNG.
//   - Topologies:
//     – Nodes, Windows, Star, CompleteUniform, RandomUniform.
//
// Guarantees:
//
//   - Same graph options, builder options, seed and constructor order produce
//     byte-identical hMETIS output.
//   - Constructors work under both id policies; under Explicit they pick ids
//     just past the highest ones present, so they compose.
//   - Weights are drawn only when the target graph exports that kind of weight.
//   - Option constructors panic on nil arguments; constructors return wrapped
//     sentinels (ErrTooFewNodes, ErrBadArity, ErrTooLarge, ErrNeedRandSource,
//     ErrConstructFailed) and never panic.
package builder
