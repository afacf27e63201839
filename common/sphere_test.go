package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSphere runs both passes over the same input set, the way callers are
// expected to drive the builder.
func buildSphere(inputs []Sphere) Sphere {
	var b SphereBuilder
	for _, s := range inputs {
		b.Include(s)
	}
	b.FinishInclude()
	for _, s := range inputs {
		b.Expand(s)
	}
	return b.Sphere()
}

func TestSphereBuilderEmpty(t *testing.T) {
	var b SphereBuilder
	b.FinishInclude()
	assert.Equal(t, Sphere{}, b.Sphere())
	assert.Zero(t, b.Count())
}

func TestSphereBuilderSingleInputIsExact(t *testing.T) {
	got := buildSphere([]Sphere{{Center: [3]float32{0, 0, 0}, Radius: 1}})
	assert.Equal(t, [3]float32{0, 0, 0}, got.Center)
	assert.InDelta(t, 1.0, got.Radius, 1e-6)
}

func TestSphereBuilderSymmetricPairIsTight(t *testing.T) {
	got := buildSphere([]Sphere{
		{Center: [3]float32{-5, 0, 0}, Radius: 1},
		{Center: [3]float32{5, 0, 0}, Radius: 1},
	})
	assert.InDelta(t, 0.0, float64(got.Center[0]), 1e-5)
	assert.InDelta(t, 0.0, float64(got.Center[1]), 1e-5)
	assert.InDelta(t, 0.0, float64(got.Center[2]), 1e-5)
	assert.InDelta(t, 6.0, float64(got.Radius), 1e-5)
}

func TestSphereBuilderContainedInputKeepsSphere(t *testing.T) {
	got := buildSphere([]Sphere{
		{Center: [3]float32{0, 0, 0}, Radius: 10},
		{Center: [3]float32{1, 0, 0}, Radius: 1},
	})
	assert.Equal(t, [3]float32{0, 0, 0}, got.Center)
	assert.InDelta(t, 10.0, float64(got.Radius), 1e-5)
}

func TestSphereBuilderEnclosingInputReplacesSphere(t *testing.T) {
	got := buildSphere([]Sphere{
		{Center: [3]float32{1, 0, 0}, Radius: 1},
		{Center: [3]float32{0, 0, 0}, Radius: 10},
	})
	assert.Equal(t, [3]float32{0, 0, 0}, got.Center)
	assert.InDelta(t, 10.0, float64(got.Radius), 1e-5)
}

func TestSphereBuilderSkipsEmptyInputs(t *testing.T) {
	got := buildSphere([]Sphere{
		{Center: [3]float32{100, 100, 100}, Radius: 0},
		{Center: [3]float32{2, 0, 0}, Radius: 1},
		{Center: [3]float32{-50, 0, 0}},
	})
	assert.Equal(t, [3]float32{2, 0, 0}, got.Center)
	assert.InDelta(t, 1.0, float64(got.Radius), 1e-5)
}

func TestSphereBuilderRadiusPassCoversAllInputs(t *testing.T) {
	// Ordering chosen so the running center drifts during the include pass;
	// the radius pass must still cover every input from the final center.
	inputs := []Sphere{
		{Center: [3]float32{0, 0, 0}, Radius: 1},
		{Center: [3]float32{10, 0, 0}, Radius: 2},
		{Center: [3]float32{-4, 3, 0}, Radius: 0.5},
		{Center: [3]float32{5, -7, 2}, Radius: 3},
	}
	got := buildSphere(inputs)
	require.False(t, got.Empty())
	for i, in := range inputs {
		d := Dist3(got.Center, in.Center)
		assert.LessOrEqual(t, float64(d+in.Radius), float64(got.Radius)+1e-4,
			"input %d not enclosed", i)
	}
}

func TestSphereBuilderResetClearsState(t *testing.T) {
	var b SphereBuilder
	b.Include(Sphere{Center: [3]float32{1, 2, 3}, Radius: 4})
	b.FinishInclude()
	b.Expand(Sphere{Center: [3]float32{1, 2, 3}, Radius: 4})
	b.Reset()
	assert.Zero(t, b.Count())
	assert.Equal(t, Sphere{}, b.Sphere())
}
