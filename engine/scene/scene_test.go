package scene

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/drawable"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFactory is an in-memory drawable.Factory for tests. configure, when
// set, supplies per-descriptor builder options (programs, material ids).
type fakeFactory struct {
	created   []uint64
	disposed  []uint64
	configure func(desc drawable.Descriptor) []drawable.DrawableBuilderOption
}

var _ drawable.Factory = &fakeFactory{}

func (f *fakeFactory) Create(desc drawable.Descriptor) drawable.Drawable {
	f.created = append(f.created, desc.ID())
	var opts []drawable.DrawableBuilderOption
	if f.configure != nil {
		opts = f.configure(desc)
	}
	return drawable.NewDrawable(desc, opts...)
}

func (f *fakeFactory) Dispose(d drawable.Drawable) {
	f.disposed = append(f.disposed, d.ID())
}

func newTestScene(opts ...SceneBuilderOption) (Scene, *fakeFactory) {
	f := &fakeFactory{}
	return NewScene(f, opts...), f
}

func liveIDs(s Scene) []uint64 {
	ids := []uint64{}
	s.ForEach(func(d drawable.Drawable) {
		ids = append(ids, d.ID())
	})
	return ids
}

func TestNewSceneRequiresFactory(t *testing.T) {
	assert.Panics(t, func() { NewScene(nil) })
}

func TestAddIsDeferredUntilCommit(t *testing.T) {
	s, f := newTestScene()
	desc := drawable.NewDescriptor(1)

	s.Add(desc)
	assert.True(t, s.NeedsCommit())
	assert.False(t, s.Has(desc))
	assert.Empty(t, f.created, "Add must not create GPU resources")

	require.True(t, s.Commit(time.Second))
	assert.False(t, s.NeedsCommit())
	assert.True(t, s.Has(desc))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, []uint64{1}, f.created)
}

func TestRemoveDisposesOnCommit(t *testing.T) {
	s, f := newTestScene()
	desc := drawable.NewDescriptor(1)
	s.Add(desc)
	require.True(t, s.Commit(time.Second))

	s.Remove(desc)
	assert.True(t, s.Has(desc), "removal is deferred until commit")
	require.True(t, s.Commit(time.Second))

	assert.False(t, s.Has(desc))
	assert.Zero(t, s.Count())
	assert.Equal(t, []uint64{1}, f.disposed)
}

func TestRemoveUnknownIsNoOp(t *testing.T) {
	s, f := newTestScene()
	s.Remove(drawable.NewDescriptor(99))
	require.True(t, s.Commit(time.Second))
	assert.Zero(t, s.Count())
	assert.Empty(t, f.disposed)
}

func TestDuplicateAddKeepsExistingInstance(t *testing.T) {
	s, f := newTestScene()
	desc := drawable.NewDescriptor(1, drawable.WithAlpha(0.25))
	s.Add(desc)
	require.True(t, s.Commit(time.Second))
	existing := s.Get(1)
	require.NotNil(t, existing)

	replacement := drawable.NewDescriptor(1, drawable.WithAlpha(0.75))
	s.Add(replacement)
	require.True(t, s.Commit(time.Second))

	assert.Equal(t, 1, s.Count())
	assert.Same(t, existing, s.Get(1), "duplicate add must keep the original instance")
	assert.InDelta(t, 0.25, float64(s.Get(1).Descriptor().Alpha()), 1e-6,
		"duplicate add must not refresh published values")
	assert.Equal(t, []uint64{1}, f.created, "duplicate add must not create a second instance")
}

func TestInterleavedAddRemoveNetsOut(t *testing.T) {
	s, _ := newTestScene()
	a := drawable.NewDescriptor(1)
	b := drawable.NewDescriptor(2)
	c := drawable.NewDescriptor(3)

	s.Add(a)
	s.Add(b)
	s.Remove(a) // cancels the pending add
	s.Add(c)
	s.Remove(c) // cancels the pending add
	s.Add(c)

	require.True(t, s.Commit(time.Second))
	assert.ElementsMatch(t, []uint64{2, 3}, liveIDs(s))
}

func TestCommitZeroBudgetIsIncomplete(t *testing.T) {
	s, _ := newTestScene(WithCommitBatchSize(1))
	for id := uint64(1); id <= 10; id++ {
		s.Add(drawable.NewDescriptor(id))
	}

	complete := s.Commit(0)
	assert.False(t, complete)
	assert.True(t, s.NeedsCommit(), "remaining work must stay queued")
	adds, _ := s.Pending()
	assert.GreaterOrEqual(t, adds, 1)
}

func TestCommitIsResumable(t *testing.T) {
	s, _ := newTestScene(WithCommitBatchSize(1))
	for id := uint64(1); id <= 25; id++ {
		s.Add(drawable.NewDescriptor(id))
	}

	calls := 0
	for !s.Commit(0) {
		calls++
		require.Less(t, calls, 100, "commit must make progress every call")
	}

	assert.False(t, s.NeedsCommit())
	assert.Equal(t, 25, s.Count())

	// The live set is identical to a single unbudgeted commit.
	single, _ := newTestScene()
	for id := uint64(1); id <= 25; id++ {
		single.Add(drawable.NewDescriptor(id))
	}
	require.True(t, single.Commit(time.Second))
	assert.ElementsMatch(t, liveIDs(single), liveIDs(s))
}

func TestCommitDrainsRemovalsBeforeAdditions(t *testing.T) {
	s, f := newTestScene(WithCommitBatchSize(1))
	old := drawable.NewDescriptor(1)
	s.Add(old)
	require.True(t, s.Commit(time.Second))

	s.Remove(old)
	s.Add(drawable.NewDescriptor(2))

	// One op per call: the removal must be applied first.
	assert.False(t, s.Commit(0))
	assert.Equal(t, []uint64{1}, f.disposed)
	assert.False(t, s.Has(old))

	for !s.Commit(0) {
	}
	assert.Equal(t, []uint64{2}, liveIDs(s))
}

func TestCommitOnEmptyQueueCompletes(t *testing.T) {
	s, _ := newTestScene()
	assert.False(t, s.NeedsCommit())
	assert.True(t, s.Commit(0))
}

func TestPartitionsByKind(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1))
	s.Add(drawable.NewDescriptor(2, drawable.WithKind(drawable.KindVolumetric)))
	s.Add(drawable.NewDescriptor(3))
	require.True(t, s.Commit(time.Second))

	require.Len(t, s.Primitives(), 2)
	require.Len(t, s.Volumetrics(), 1)
	assert.Equal(t, uint64(2), s.Volumetrics()[0].ID())
	assert.Equal(t, 3, s.Count())
}

func TestClearDisposesAndZeroesDerivedState(t *testing.T) {
	s, f := newTestScene()
	s.Add(drawable.NewDescriptor(1,
		drawable.WithBoundingSphere(common.Sphere{Center: [3]float32{1, 2, 3}, Radius: 4}),
		drawable.WithMarkerCoverage(0.5)))
	s.Add(drawable.NewDescriptor(2, drawable.WithKind(drawable.KindVolumetric)))
	require.True(t, s.Commit(time.Second))
	require.False(t, s.BoundingSphere().Empty())

	s.Clear()

	assert.Zero(t, s.Count())
	assert.Empty(t, s.Primitives())
	assert.Empty(t, s.Volumetrics())
	assert.True(t, s.BoundingSphere().Empty())
	assert.True(t, s.VisibleBoundingSphere().Empty())
	assert.Zero(t, s.MarkerAverage())
	assert.Zero(t, s.OpacityAverage())
	assert.ElementsMatch(t, []uint64{1, 2}, f.disposed)
}

func TestClearLeavesCommitQueueIntact(t *testing.T) {
	s, _ := newTestScene()
	s.Add(drawable.NewDescriptor(1))
	require.True(t, s.Commit(time.Second))

	s.Add(drawable.NewDescriptor(2))
	s.Clear()

	assert.True(t, s.NeedsCommit(), "pending entries survive a clear")
	require.True(t, s.Commit(time.Second))
	assert.Equal(t, []uint64{2}, liveIDs(s))
}

func TestSortOrderAfterCommit(t *testing.T) {
	f := &fakeFactory{}
	f.configure = func(desc drawable.Descriptor) []drawable.DrawableBuilderOption {
		switch desc.ID() {
		case 1:
			return []drawable.DrawableBuilderOption{
				drawable.WithProgram(pipeline.VariantColorOpaque, 2),
				drawable.WithMaterialID(5),
			}
		case 2:
			return []drawable.DrawableBuilderOption{
				drawable.WithProgram(pipeline.VariantColorOpaque, 1),
				drawable.WithMaterialID(9),
			}
		case 3:
			return []drawable.DrawableBuilderOption{
				drawable.WithProgram(pipeline.VariantColorOpaque, 2),
				drawable.WithMaterialID(3),
			}
		case 4:
			// No opaque program: sorts by the translucent fallback.
			return []drawable.DrawableBuilderOption{
				drawable.WithProgram(pipeline.VariantColorTranslucent, 1),
				drawable.WithMaterialID(9),
			}
		default:
			return nil
		}
	}
	s := NewScene(f)
	for id := uint64(1); id <= 4; id++ {
		s.Add(drawable.NewDescriptor(id))
	}
	require.True(t, s.Commit(time.Second))

	// program 1 first (ids 2 and 4 share program and material, id breaks the
	// tie), then program 2 ordered by material.
	assert.Equal(t, []uint64{2, 4, 3, 1}, liveIDs(s))
}

func TestSortKeysAreNonDecreasing(t *testing.T) {
	f := &fakeFactory{}
	f.configure = func(desc drawable.Descriptor) []drawable.DrawableBuilderOption {
		return []drawable.DrawableBuilderOption{
			drawable.WithProgram(pipeline.VariantColorOpaque, pipeline.ProgramID(desc.ID()%3+1)),
			drawable.WithMaterialID(uint32(desc.ID() % 4)),
		}
	}
	s := NewScene(f)
	for id := uint64(1); id <= 20; id++ {
		s.Add(drawable.NewDescriptor(id))
	}
	require.True(t, s.Commit(time.Second))

	var prev drawable.Drawable
	s.ForEach(func(d drawable.Drawable) {
		if prev != nil {
			pp, pc := prev.SortProgram(), d.SortProgram()
			require.LessOrEqual(t, pp, pc)
			if pp == pc {
				require.LessOrEqual(t, prev.MaterialID(), d.MaterialID())
				if prev.MaterialID() == d.MaterialID() {
					require.Less(t, prev.ID(), d.ID())
				}
			}
		}
		prev = d
	})
}

func TestGetReturnsNilForUnknown(t *testing.T) {
	s, _ := newTestScene()
	assert.Nil(t, s.Get(42))
}
