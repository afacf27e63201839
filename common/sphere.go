package common

import (
	"github.com/chewxy/math32"
)

// Sphere is a world-space bounding sphere. A Radius of zero means the sphere
// encloses no geometry and is skipped by bounding volume accumulation.
type Sphere struct {
	// Center is the sphere's center position in world space.
	Center [3]float32
	// Radius is the sphere's radius in world units. Zero means "no geometry".
	Radius float32
}

// Empty reports whether the sphere encloses no geometry.
//
// Returns:
//   - bool: true if the sphere has no extent
func (s Sphere) Empty() bool {
	return s.Radius <= 0
}

// Dist3 returns the euclidean distance between two 3D points.
//
// Parameters:
//   - a: first point
//   - b: second point
//
// Returns:
//   - float32: the distance between a and b
func Dist3(a, b [3]float32) float32 {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// SphereBuilder accumulates the enclosing sphere of an unordered stream of
// input spheres in two linear passes, without storing the inputs:
//
//  1. Include pass: each input is merged into a running enclosing sphere
//     whose center and radius both adapt. FinishInclude fixes the center.
//  2. Radius pass: with the center fixed, Expand grows the radius to the
//     minimum value that covers every input sphere's full extent from that
//     center.
//
// A single running merge overshoots the radius whenever the center drifts
// after inputs have already been accepted; the second pass re-derives the
// radius against the final center, so the result is never looser than one
// extra linear scan can make it.
//
// The zero value is ready to use. Inputs with Radius <= 0 are ignored in
// both passes.
type SphereBuilder struct {
	sphere   Sphere
	count    int
	finished bool
}

// Reset returns the builder to its initial empty state for reuse.
func (b *SphereBuilder) Reset() {
	b.sphere = Sphere{}
	b.count = 0
	b.finished = false
}

// Include merges one input sphere into the running enclosing sphere.
// Must not be called after FinishInclude until the builder is Reset.
//
// Parameters:
//   - s: the input sphere to incorporate (ignored when empty)
func (b *SphereBuilder) Include(s Sphere) {
	if s.Empty() {
		return
	}
	if b.count == 0 {
		b.sphere = s
		b.count = 1
		return
	}
	b.count++

	d := Dist3(b.sphere.Center, s.Center)
	if d+s.Radius <= b.sphere.Radius {
		// Input is already enclosed.
		return
	}
	if d+b.sphere.Radius <= s.Radius {
		// Input encloses the running sphere.
		b.sphere = s
		return
	}

	// Partial overlap or disjoint: the enclosing sphere of two spheres has
	// its center on the line between both centers.
	radius := (d + b.sphere.Radius + s.Radius) / 2
	t := (radius - b.sphere.Radius) / d
	b.sphere.Center[0] += (s.Center[0] - b.sphere.Center[0]) * t
	b.sphere.Center[1] += (s.Center[1] - b.sphere.Center[1]) * t
	b.sphere.Center[2] += (s.Center[2] - b.sphere.Center[2]) * t
	b.sphere.Radius = radius
}

// FinishInclude fixes the merged center and resets the radius so the radius
// pass can re-derive the tight value. Call once after all Include calls and
// before any Expand calls.
func (b *SphereBuilder) FinishInclude() {
	b.finished = true
	if b.count > 0 {
		b.sphere.Radius = 0
	}
}

// Expand grows the radius to cover the input sphere's full extent from the
// fixed center. Must be called only after FinishInclude, once per input that
// was previously passed to Include.
//
// Parameters:
//   - s: the input sphere to cover (ignored when empty)
func (b *SphereBuilder) Expand(s Sphere) {
	if s.Empty() || b.count == 0 {
		return
	}
	r := Dist3(b.sphere.Center, s.Center) + s.Radius
	if r > b.sphere.Radius {
		b.sphere.Radius = r
	}
}

// Count returns the number of non-empty inputs seen by the include pass.
//
// Returns:
//   - int: the qualifying input count
func (b *SphereBuilder) Count() int {
	return b.count
}

// Sphere returns the accumulated enclosing sphere. With no qualifying
// inputs the zero (empty) sphere is returned.
//
// Returns:
//   - Sphere: the enclosing sphere
func (b *SphereBuilder) Sphere() Sphere {
	if b.count == 0 {
		return Sphere{}
	}
	return b.sphere
}
