package scene

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/drawable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncVisibilityReportsChangeOnce(t *testing.T) {
	s, _ := newTestScene()
	a := drawable.NewDescriptor(1)
	b := drawable.NewDescriptor(2)
	s.Add(a)
	s.Add(b)
	require.True(t, s.Commit(time.Second))

	assert.True(t, s.SyncVisibility(), "first sync establishes the fingerprint")
	assert.False(t, s.SyncVisibility(), "no change since last sync")

	b.SetVisible(false)
	assert.True(t, s.SyncVisibility())
	assert.False(t, s.SyncVisibility())
}

func TestSyncVisibilityToggleAndRevertIsUnchanged(t *testing.T) {
	s, _ := newTestScene()
	a := drawable.NewDescriptor(1)
	b := drawable.NewDescriptor(2)
	s.Add(a)
	s.Add(b)
	require.True(t, s.Commit(time.Second))
	s.SyncVisibility()

	// Toggle off and back on between syncs: the visible set is identical at
	// sync time, so no recompute is triggered.
	b.SetVisible(false)
	b.SetVisible(true)
	assert.False(t, s.SyncVisibility())
}

func TestVisibleBoundingSphereRecomputeRefreshesFingerprint(t *testing.T) {
	s, _ := newTestScene()
	a := drawable.NewDescriptor(1,
		drawable.WithBoundingSphere(common.Sphere{Radius: 1}))
	b := drawable.NewDescriptor(2,
		drawable.WithBoundingSphere(common.Sphere{Center: [3]float32{10, 0, 0}, Radius: 1}))
	s.Add(a)
	s.Add(b)
	require.True(t, s.Commit(time.Second))

	// Reading the visible sphere while dirty refreshes the fingerprint as a
	// side effect, so the following sync sees no change.
	_ = s.VisibleBoundingSphere()
	assert.False(t, s.SyncVisibility())

	b.SetVisible(false)
	assert.True(t, s.SyncVisibility())
	sphere := s.VisibleBoundingSphere()
	assert.InDelta(t, 1.0, float64(sphere.Radius), 1e-5, "invisible drawables are excluded")
	assert.InDelta(t, 0.0, float64(sphere.Center[0]), 1e-5)
}

func TestSyncVisibilityChangeInvalidatesVisibleSphereOnly(t *testing.T) {
	s, _ := newTestScene()
	a := drawable.NewDescriptor(1,
		drawable.WithBoundingSphere(common.Sphere{Radius: 1}))
	b := drawable.NewDescriptor(2,
		drawable.WithBoundingSphere(common.Sphere{Center: [3]float32{10, 0, 0}, Radius: 1}))
	s.Add(a)
	s.Add(b)
	require.True(t, s.Commit(time.Second))

	full := s.BoundingSphere()
	visible := s.VisibleBoundingSphere()
	assert.InDelta(t, float64(full.Radius), float64(visible.Radius), 1e-5)

	b.SetVisible(false)
	require.True(t, s.SyncVisibility())

	// The full sphere cache is untouched; the visible sphere shrinks.
	assert.InDelta(t, float64(full.Radius), float64(s.BoundingSphere().Radius), 1e-5)
	assert.InDelta(t, 1.0, float64(s.VisibleBoundingSphere().Radius), 1e-5)
}

func TestFingerprintFinishNeverReturnsSentinel(t *testing.T) {
	// The mix must never emit the reserved "never computed" value, whatever
	// the accumulator.
	for _, h := range []uint32{0, 1, 23, 0xffffffff, 0x85ebca6b, 48879} {
		assert.NotZero(t, fingerprintFinish(h))
	}
}

func TestFingerprintFoldUsesHighBits(t *testing.T) {
	h1 := fingerprintFold(fingerprintSeed, 1)
	h2 := fingerprintFold(fingerprintSeed, 1<<32|1)
	assert.NotEqual(t, h1, h2, "ids differing only in the high word must fold differently")
}
