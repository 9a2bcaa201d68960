// Package builder: weight generators for nodes and edges.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the weight every node and edge receives when no WeightFn is set.
const DefaultWeight int64 = 1

// WeightFn produces a weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields min, which keeps unseeded
// builds deterministic.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
