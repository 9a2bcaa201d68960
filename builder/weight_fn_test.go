// Package builder_test contains unit tests for the WeightFn implementations
// and the option constructors, covering behaviour and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hyperlath/builder"
)

// TestOptionConstructors_PanicOnNil verifies the documented nil-argument panics.
func TestOptionConstructors_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithNodeWeightFn(nil) })
	assert.Panics(t, func() { builder.WithEdgeWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.NotPanics(t, func() { builder.UniformWeightFn(-3, -3) })
}

// TestWeightFnBehavior covers the runtime behaviour of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(-7), builder.ConstantWeightFn(-7)(rng))
	assert.Equal(t, int64(4), builder.UniformWeightFn(4, 9)(nil), "nil rng yields min")

	fn := builder.UniformWeightFn(2, 5)
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(2))
		assert.LessOrEqual(t, w, int64(5))
		seen[w] = true
	}
	assert.Len(t, seen, 4, "every value in [2,5] should appear in 500 draws")
}
