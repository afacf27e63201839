package drawable

import (
	"github.com/Carmen-Shannon/prism-go/common"
)

// Kind routes a drawable into one of the scene's two partitions. The set is
// closed: every drawable is either a primitive or a volumetric, decided once
// at creation and never reassigned.
type Kind int

const (
	// KindPrimitive covers meshes, lines, points and every other surface-style
	// drawable. Primitives contribute to the scene's aggregate statistics.
	KindPrimitive Kind = iota

	// KindVolumetric covers volume-rendered drawables. Volumetrics are kept in
	// their own partition and never contribute to aggregate statistics.
	KindVolumetric
)

// Descriptor is the externally owned record describing one drawable object.
// Its identity and kind are immutable; the published values (bounding sphere,
// visibility, opacity inputs, marker coverage) are mutable by the owner and
// only ever read by the scene. The scene never destroys a Descriptor.
type Descriptor interface {
	// ID returns the descriptor's stable unique identity.
	//
	// Returns:
	//   - uint64: the identity
	ID() uint64

	// Kind returns the partition this descriptor's drawable belongs to.
	//
	// Returns:
	//   - Kind: KindPrimitive or KindVolumetric
	Kind() Kind

	// BoundingSphere returns the currently published world-space bounding
	// sphere. A zero radius means the object has no geometry and is excluded
	// from bounding volume accumulation.
	//
	// Returns:
	//   - common.Sphere: the published bounding sphere
	BoundingSphere() common.Sphere

	// Visible returns the currently published visibility flag.
	//
	// Returns:
	//   - bool: true if the object should be considered visible
	Visible() bool

	// Alpha returns the opacity-contributing scalar.
	//
	// Returns:
	//   - float32: the alpha value
	Alpha() float32

	// AlphaFactor returns the opacity scale factor applied to Alpha.
	//
	// Returns:
	//   - float32: the alpha factor
	AlphaFactor() float32

	// TransparencyAverage returns the published mean transparency of the
	// object's surfaces, in [0, 1].
	//
	// Returns:
	//   - float32: the transparency average
	TransparencyAverage() float32

	// XRayShaded returns whether the object is rendered with x-ray shading.
	// X-ray shaded objects contribute at half weight to the opacity average.
	//
	// Returns:
	//   - bool: true if x-ray shaded
	XRayShaded() bool

	// MarkerCoverage returns the published marker-coverage scalar.
	//
	// Returns:
	//   - float32: the marker coverage
	MarkerCoverage() float32

	// Republish asks the owner to recompute and republish the descriptor's
	// derived per-frame values. Called by the scene during Update.
	Republish()
}

// descriptor is a plain mutable Descriptor implementation for callers that do
// not have their own descriptor source.
type descriptor struct {
	id                  uint64
	kind                Kind
	boundingSphere      common.Sphere
	visible             bool
	alpha               float32
	alphaFactor         float32
	transparencyAverage float32
	xrayShaded          bool
	markerCoverage      float32
	republish           func()
}

var _ Descriptor = &descriptor{}

// NewDescriptor creates a Descriptor configured with the given options.
// Defaults: visible, alpha 1, alpha factor 1, primitive kind.
//
// Parameters:
//   - id: the stable unique identity
//   - options: functional options to configure the descriptor
//
// Returns:
//   - MutableDescriptor: the newly created descriptor
func NewDescriptor(id uint64, options ...DescriptorBuilderOption) MutableDescriptor {
	d := &descriptor{
		id:          id,
		visible:     true,
		alpha:       1,
		alphaFactor: 1,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

func (d *descriptor) ID() uint64 {
	return d.id
}

func (d *descriptor) Kind() Kind {
	return d.kind
}

func (d *descriptor) BoundingSphere() common.Sphere {
	return d.boundingSphere
}

func (d *descriptor) Visible() bool {
	return d.visible
}

func (d *descriptor) Alpha() float32 {
	return d.alpha
}

func (d *descriptor) AlphaFactor() float32 {
	return d.alphaFactor
}

func (d *descriptor) TransparencyAverage() float32 {
	return d.transparencyAverage
}

func (d *descriptor) XRayShaded() bool {
	return d.xrayShaded
}

func (d *descriptor) MarkerCoverage() float32 {
	return d.markerCoverage
}

func (d *descriptor) Republish() {
	if d.republish != nil {
		d.republish()
	}
}

// SetBoundingSphere updates the published bounding sphere.
//
// Parameters:
//   - s: the new bounding sphere
func (d *descriptor) SetBoundingSphere(s common.Sphere) {
	d.boundingSphere = s
}

// SetVisible updates the published visibility flag.
//
// Parameters:
//   - visible: the new visibility state
func (d *descriptor) SetVisible(visible bool) {
	d.visible = visible
}

// MutableDescriptor is the write side of the plain descriptor implementation,
// for owners that drive published values through prism rather than their own
// descriptor source.
type MutableDescriptor interface {
	Descriptor

	// SetBoundingSphere updates the published bounding sphere.
	//
	// Parameters:
	//   - s: the new bounding sphere
	SetBoundingSphere(s common.Sphere)

	// SetVisible updates the published visibility flag.
	//
	// Parameters:
	//   - visible: the new visibility state
	SetVisible(visible bool)
}

var _ MutableDescriptor = &descriptor{}
