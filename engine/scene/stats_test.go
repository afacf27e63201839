package scene

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/drawable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func originSphere(radius float32) common.Sphere {
	return common.Sphere{Radius: radius}
}

func TestOpacityAverageIgnoresInvisiblePrimitives(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1)) // alpha 1, factor 1, transparency 0, no xray
	s.Add(drawable.NewDescriptor(2,
		drawable.WithVisible(false),
		drawable.WithAlpha(0.1),
		drawable.WithTransparencyAverage(0.9)))
	require.True(t, s.Commit(time.Second))

	assert.InDelta(t, 1.0, float64(s.OpacityAverage()), 1e-6)
}

func TestOpacityAverageFormula(t *testing.T) {
	s, _ := newTestScene()
	// (1 - 0.25) * clamp(0.8 * 1.0) * 1 = 0.6
	s.Add(drawable.NewDescriptor(1,
		drawable.WithAlpha(0.8),
		drawable.WithTransparencyAverage(0.25)))
	// (1 - 0) * clamp(2.0 * 1.0 -> 1) * 0.5 = 0.5
	s.Add(drawable.NewDescriptor(2,
		drawable.WithAlpha(2.0),
		drawable.WithXRayShaded(true)))
	require.True(t, s.Commit(time.Second))

	assert.InDelta(t, (0.6+0.5)/2, float64(s.OpacityAverage()), 1e-6)
}

func TestOpacityAverageClampsAlphaProduct(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1,
		drawable.WithAlpha(0.5),
		drawable.WithAlphaFactor(-2)))
	require.True(t, s.Commit(time.Second))

	assert.Zero(t, s.OpacityAverage(), "negative alpha products clamp to 0")
}

func TestVolumetricsNeverContributeToAverages(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1, drawable.WithMarkerCoverage(0.4)))
	s.Add(drawable.NewDescriptor(2,
		drawable.WithKind(drawable.KindVolumetric),
		drawable.WithMarkerCoverage(1.0),
		drawable.WithAlpha(1)))
	require.True(t, s.Commit(time.Second))

	assert.InDelta(t, 0.4, float64(s.MarkerAverage()), 1e-6)
	assert.InDelta(t, 1.0, float64(s.OpacityAverage()), 1e-6)
}

func TestAveragesAreZeroWithNoVisiblePrimitives(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1, drawable.WithVisible(false), drawable.WithMarkerCoverage(0.7)))
	s.Add(drawable.NewDescriptor(2, drawable.WithKind(drawable.KindVolumetric)))
	require.True(t, s.Commit(time.Second))

	assert.Zero(t, s.MarkerAverage())
	assert.Zero(t, s.OpacityAverage())
}

func TestMarkerAverageOverVisiblePrimitives(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1, drawable.WithMarkerCoverage(0.2)))
	s.Add(drawable.NewDescriptor(2, drawable.WithMarkerCoverage(0.6)))
	s.Add(drawable.NewDescriptor(3, drawable.WithVisible(false), drawable.WithMarkerCoverage(1.0)))
	require.True(t, s.Commit(time.Second))

	assert.InDelta(t, 0.4, float64(s.MarkerAverage()), 1e-6)
}

func TestUpdateRecomputesAveragesAfterVisibilityChange(t *testing.T) {
	desc := drawable.NewDescriptor(1, drawable.WithMarkerCoverage(0.2))
	s, _ := newTestScene()
	s.Add(desc)
	require.True(t, s.Commit(time.Second))
	assert.InDelta(t, 0.2, float64(s.MarkerAverage()), 1e-6)

	// The republish callback path is exercised by Update; the hidden
	// primitive drops out of the averages on the same call.
	desc.SetVisible(false)
	s.Update(nil, true)
	assert.Zero(t, s.MarkerAverage())
	assert.Zero(t, s.OpacityAverage())
}

func TestUpdateWithSubsetRepublishesOnlySubset(t *testing.T) {
	republished := map[uint64]int{}
	a := drawable.NewDescriptor(1, drawable.WithRepublish(func() { republished[1]++ }))
	b := drawable.NewDescriptor(2, drawable.WithRepublish(func() { republished[2]++ }))

	s, _ := newTestScene()
	s.Add(a)
	s.Add(b)
	require.True(t, s.Commit(time.Second))

	s.Update([]drawable.Descriptor{a}, true)
	assert.Equal(t, 1, republished[1])
	assert.Zero(t, republished[2])

	s.Update(nil, true)
	assert.Equal(t, 2, republished[1])
	assert.Equal(t, 1, republished[2])
}

func TestUpdateInvalidatesBoundsUnlessKept(t *testing.T) {
	grow := false
	var desc drawable.MutableDescriptor
	desc = drawable.NewDescriptor(1,
		drawable.WithRepublish(func() {
			if grow {
				desc.SetBoundingSphere(originSphere(5))
			}
		}),
		drawable.WithBoundingSphere(originSphere(1)))

	s, _ := newTestScene()
	s.Add(desc)
	require.True(t, s.Commit(time.Second))
	assert.InDelta(t, 1.0, float64(s.BoundingSphere().Radius), 1e-5)

	// keepBoundingSphere=true: the full sphere cache stays as-is even though
	// the republished radius grew.
	grow = true
	s.Update(nil, true)
	assert.InDelta(t, 1.0, float64(s.BoundingSphere().Radius), 1e-5)

	// keepBoundingSphere=false: both caches invalidate and pick up the change.
	s.Update(nil, false)
	assert.InDelta(t, 5.0, float64(s.BoundingSphere().Radius), 1e-5)
	assert.InDelta(t, 5.0, float64(s.VisibleBoundingSphere().Radius), 1e-5)
}
