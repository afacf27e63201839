package scene

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/prism-go/common"
	"github.com/Carmen-Shannon/prism-go/engine/camera"
	"github.com/Carmen-Shannon/prism-go/engine/drawable"
)

// defaultCommitBatchSize is how many queued operations Commit applies between
// budget checks. Checking elapsed time per operation would dominate the cost
// of cheap removals.
const defaultCommitBatchSize = 100

// sphereCache is one lazily recomputed bounding sphere with its dirty flag.
type sphereCache struct {
	sphere common.Sphere
	dirty  bool
}

type scene struct {
	factory drawable.Factory
	cam     camera.Camera

	queue     commitQueue
	batchSize int

	byID        map[uint64]drawable.Drawable
	drawables   []drawable.Drawable
	primitives  []drawable.Drawable
	volumetrics []drawable.Drawable

	fullBounds    sphereCache
	visibleBounds sphereCache
	builder       common.SphereBuilder

	// visibleFingerprint summarizes the visible set as of the last sync or
	// visible-bounds recompute. 0 means never computed.
	visibleFingerprint uint32

	markerAverage  float32
	opacityAverage float32
}

// Scene owns the live set of drawable instances for a viewer: it buffers
// add/remove requests, applies them under a time budget, maintains cached
// bounding volumes and per-object statistic averages, and keeps the live list
// in an order that minimizes GPU state transitions.
//
// The scene has exactly one logical driver (the render/update loop) and does
// no internal locking; callers must serialize Add/Remove/Commit/Update calls
// on that single driving goroutine.
type Scene interface {
	// Add enqueues a pending addition for the descriptor. No GPU resources
	// are created until Commit; if the identity has a pending removal, that
	// removal is cancelled instead and the live instance is kept.
	//
	// Parameters:
	//   - desc: the descriptor to add
	Add(desc drawable.Descriptor)

	// Remove enqueues a pending removal for the descriptor's identity. No
	// GPU resources are released until Commit; if the identity has a pending
	// addition, that addition is cancelled instead.
	//
	// Parameters:
	//   - desc: the descriptor to remove
	Remove(desc drawable.Descriptor)

	// Commit applies queued operations under the given time budget. Pending
	// removals are always drained before any addition is applied. The
	// elapsed time is checked after every batch of operations; when the
	// budget is exceeded Commit returns false immediately, leaving the
	// remaining queue intact for the next call. When both queues drain
	// within budget, the live list is re-sorted for draw order, the
	// aggregate averages are recomputed, and Commit returns true.
	//
	// Callers should check NeedsCommit first to avoid redundant sort passes:
	// Commit on an empty queue still runs the sort and recompute path.
	//
	// Parameters:
	//   - budget: the maximum time to spend applying operations
	//
	// Returns:
	//   - bool: true if the queue fully drained, false if work remains
	Commit(budget time.Duration) bool

	// NeedsCommit reports whether any add/remove operations are pending.
	//
	// Returns:
	//   - bool: true if the commit queue is non-empty
	NeedsCommit() bool

	// Update refreshes the scene's camera matrices, then asks each affected
	// descriptor (the given subset, or every live drawable when subset is
	// nil) to republish its derived per-frame values. When
	// keepBoundingSphere is false both bounding sphere caches are
	// invalidated; when true SyncVisibility runs instead, invalidating the
	// visible-only cache only if the visible set actually changed. The
	// marker and opacity averages are recomputed in both cases.
	//
	// Parameters:
	//   - subset: the descriptors to republish, or nil for all live drawables
	//   - keepBoundingSphere: true to skip unconditional cache invalidation
	Update(subset []drawable.Descriptor, keepBoundingSphere bool)

	// SyncVisibility recomputes the visibility fingerprint over the live
	// list and compares it to the last synced value. On change it
	// invalidates the visible-only bounding sphere, recomputes the
	// aggregate averages, and returns true. When the visible set is
	// unchanged nothing is invalidated and it returns false.
	//
	// Returns:
	//   - bool: true if the visible set changed since the last sync
	SyncVisibility() bool

	// Has reports whether a live instance exists for the descriptor's
	// identity. Pending queue entries do not count.
	//
	// Parameters:
	//   - desc: the descriptor to test
	//
	// Returns:
	//   - bool: true if a live instance exists
	Has(desc drawable.Descriptor) bool

	// Get retrieves the live instance for an identity, or nil if none.
	//
	// Parameters:
	//   - id: the descriptor identity
	//
	// Returns:
	//   - drawable.Drawable: the live instance or nil
	Get(id uint64) drawable.Drawable

	// Clear disposes every live instance and empties all collections and
	// caches. The commit queue is left untouched: pending additions create
	// fresh instances on the next Commit and pending removals no-op.
	Clear()

	// ForEach visits every live instance in current draw order.
	//
	// Parameters:
	//   - visit: the visitor invoked once per live instance
	ForEach(visit func(d drawable.Drawable))

	// Count returns the number of live instances.
	//
	// Returns:
	//   - int: the live instance count
	Count() int

	// Pending returns the number of queued additions and removals.
	//
	// Returns:
	//   - adds: pending addition count
	//   - removes: pending removal count
	Pending() (adds, removes int)

	// BoundingSphere returns the bounding sphere over all live drawables,
	// recomputing it first if an add/remove/update invalidated the cache.
	//
	// Returns:
	//   - common.Sphere: the full bounding sphere (empty when no geometry)
	BoundingSphere() common.Sphere

	// VisibleBoundingSphere returns the bounding sphere over the currently
	// visible drawables, recomputing it first if the cache is dirty. The
	// recompute also refreshes the visibility fingerprint, since both
	// derive from the same visible-subset scan.
	//
	// Returns:
	//   - common.Sphere: the visible-only bounding sphere (empty when none)
	VisibleBoundingSphere() common.Sphere

	// MarkerAverage returns the mean marker coverage over visible
	// primitives, or 0 when no primitive is visible.
	//
	// Returns:
	//   - float32: the marker average
	MarkerAverage() float32

	// OpacityAverage returns the mean effective opacity over visible
	// primitives, or 0 when no primitive is visible. Volumetrics never
	// contribute.
	//
	// Returns:
	//   - float32: the opacity average
	OpacityAverage() float32

	// Primitives returns the live primitive partition. The returned slice
	// is the scene's own and must not be mutated.
	//
	// Returns:
	//   - []drawable.Drawable: the primitive partition
	Primitives() []drawable.Drawable

	// Volumetrics returns the live volumetric partition. The returned slice
	// is the scene's own and must not be mutated.
	//
	// Returns:
	//   - []drawable.Drawable: the volumetric partition
	Volumetrics() []drawable.Drawable

	// Camera returns the scene's camera, or nil if none is attached.
	//
	// Returns:
	//   - camera.Camera: the camera or nil
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera, or nil to detach
	SetCamera(cam camera.Camera)
}

var _ Scene = &scene{}

// NewScene creates a Scene backed by the given drawable factory. The factory
// is required and NewScene panics if it is nil.
//
// Parameters:
//   - factory: the factory that creates and disposes drawable instances
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(factory drawable.Factory, options ...SceneBuilderOption) Scene {
	if factory == nil {
		panic("scene: NewScene requires a non-nil drawable Factory")
	}

	s := &scene{
		factory:   factory,
		queue:     newCommitQueue(),
		batchSize: defaultCommitBatchSize,
		byID:      make(map[uint64]drawable.Drawable),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Add(desc drawable.Descriptor) {
	s.queue.enqueueAdd(desc)
}

func (s *scene) Remove(desc drawable.Descriptor) {
	s.queue.enqueueRemove(desc)
}

func (s *scene) NeedsCommit() bool {
	return !s.queue.empty()
}

func (s *scene) Commit(budget time.Duration) bool {
	start := time.Now()
	ops := 0

	// Removals drain first so freed GPU resources are returned before new
	// instances allocate, and so a remove+add of different identities within
	// one commit never transiently doubles resource usage.
	for {
		desc, ok := s.queue.takeRemoval()
		if !ok {
			break
		}
		s.removeNow(desc.ID())
		ops++
		if ops%s.batchSize == 0 && time.Since(start) > budget {
			return false
		}
	}

	for {
		desc, ok := s.queue.takeAddition()
		if !ok {
			break
		}
		s.addNow(desc)
		ops++
		if ops%s.batchSize == 0 && time.Since(start) > budget {
			return false
		}
	}

	s.sortDrawables()
	s.recomputeStats()
	return true
}

// addNow applies one addition immediately. Duplicate identities are a
// non-fatal caller error: the existing instance is kept unchanged, new
// descriptor values are not applied.
func (s *scene) addNow(desc drawable.Descriptor) drawable.Drawable {
	id := desc.ID()
	if existing, ok := s.byID[id]; ok {
		log.Printf("[Scene] drawable %d is already registered, keeping the existing instance", id)
		return existing
	}

	d := s.factory.Create(desc)
	s.byID[id] = d
	s.drawables = append(s.drawables, d)
	switch desc.Kind() {
	case drawable.KindVolumetric:
		s.volumetrics = append(s.volumetrics, d)
	default:
		s.primitives = append(s.primitives, d)
	}

	s.fullBounds.dirty = true
	s.visibleBounds.dirty = true
	return d
}

// removeNow applies one removal immediately. Unknown identities are a
// silent no-op.
func (s *scene) removeNow(id uint64) {
	d, ok := s.byID[id]
	if !ok {
		return
	}

	s.factory.Dispose(d)
	delete(s.byID, id)
	s.drawables = removeInstance(s.drawables, d)
	switch d.Kind() {
	case drawable.KindVolumetric:
		s.volumetrics = removeInstance(s.volumetrics, d)
	default:
		s.primitives = removeInstance(s.primitives, d)
	}

	s.fullBounds.dirty = true
	s.visibleBounds.dirty = true
}

// removeInstance deletes d from list preserving order. Iteration order feeds
// the visibility fingerprint, so removal must not reshuffle survivors.
func removeInstance(list []drawable.Drawable, d drawable.Drawable) []drawable.Drawable {
	for i, existing := range list {
		if existing == d {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func (s *scene) Update(subset []drawable.Descriptor, keepBoundingSphere bool) {
	if s.cam != nil {
		s.cam.Update()
	}

	if subset == nil {
		for _, d := range s.drawables {
			d.Descriptor().Republish()
		}
	} else {
		for _, desc := range subset {
			desc.Republish()
		}
	}

	if keepBoundingSphere {
		s.SyncVisibility()
	} else {
		s.fullBounds.dirty = true
		s.visibleBounds.dirty = true
	}

	// Republishing can change the averages' inputs even when visibility did
	// not, so these always recompute.
	s.recomputeStats()
}

func (s *scene) SyncVisibility() bool {
	h := fingerprintSeed
	for _, d := range s.drawables {
		if !d.Descriptor().Visible() {
			continue
		}
		h = fingerprintFold(h, d.ID())
	}
	fp := fingerprintFinish(h)

	if fp == s.visibleFingerprint {
		return false
	}
	s.visibleFingerprint = fp
	s.visibleBounds.dirty = true
	s.recomputeStats()
	return true
}

func (s *scene) Has(desc drawable.Descriptor) bool {
	_, ok := s.byID[desc.ID()]
	return ok
}

func (s *scene) Get(id uint64) drawable.Drawable {
	return s.byID[id]
}

func (s *scene) Clear() {
	for _, d := range s.drawables {
		s.factory.Dispose(d)
	}
	s.byID = make(map[uint64]drawable.Drawable)
	s.drawables = nil
	s.primitives = nil
	s.volumetrics = nil

	s.fullBounds = sphereCache{}
	s.visibleBounds = sphereCache{}
	s.markerAverage = 0
	s.opacityAverage = 0
	// The fingerprint is deliberately kept: the next SyncVisibility compares
	// the now-empty visible set against the pre-clear one and reports the
	// change.
}

func (s *scene) ForEach(visit func(d drawable.Drawable)) {
	for _, d := range s.drawables {
		visit(d)
	}
}

func (s *scene) Count() int {
	return len(s.drawables)
}

func (s *scene) Pending() (adds, removes int) {
	return s.queue.pending()
}

func (s *scene) BoundingSphere() common.Sphere {
	if s.fullBounds.dirty {
		s.builder.Reset()
		for _, d := range s.drawables {
			s.builder.Include(d.Descriptor().BoundingSphere())
		}
		s.builder.FinishInclude()
		for _, d := range s.drawables {
			s.builder.Expand(d.Descriptor().BoundingSphere())
		}
		s.fullBounds.sphere = s.builder.Sphere()
		s.fullBounds.dirty = false
	}
	return s.fullBounds.sphere
}

func (s *scene) VisibleBoundingSphere() common.Sphere {
	if s.visibleBounds.dirty {
		// The include pass and the fingerprint both walk the visible subset
		// in list order, so they share one scan.
		h := fingerprintSeed
		s.builder.Reset()
		for _, d := range s.drawables {
			desc := d.Descriptor()
			if !desc.Visible() {
				continue
			}
			h = fingerprintFold(h, d.ID())
			s.builder.Include(desc.BoundingSphere())
		}
		s.builder.FinishInclude()
		for _, d := range s.drawables {
			desc := d.Descriptor()
			if !desc.Visible() {
				continue
			}
			s.builder.Expand(desc.BoundingSphere())
		}
		s.visibleBounds.sphere = s.builder.Sphere()
		s.visibleBounds.dirty = false
		s.visibleFingerprint = fingerprintFinish(h)
	}
	return s.visibleBounds.sphere
}

func (s *scene) MarkerAverage() float32 {
	return s.markerAverage
}

func (s *scene) OpacityAverage() float32 {
	return s.opacityAverage
}

func (s *scene) Primitives() []drawable.Drawable {
	return s.primitives
}

func (s *scene) Volumetrics() []drawable.Drawable {
	return s.volumetrics
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.cam = cam
}
