package drawable

import (
	"github.com/Carmen-Shannon/prism-go/common"
)

// DescriptorBuilderOption is a functional option for configuring a Descriptor during construction.
type DescriptorBuilderOption func(*descriptor)

// WithKind sets the partition kind of the Descriptor.
//
// Parameters:
//   - kind: KindPrimitive or KindVolumetric
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the kind
func WithKind(kind Kind) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.kind = kind
	}
}

// WithBoundingSphere sets the initial published bounding sphere.
//
// Parameters:
//   - s: the bounding sphere
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the bounding sphere
func WithBoundingSphere(s common.Sphere) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.boundingSphere = s
	}
}

// WithVisible sets the initial published visibility flag.
//
// Parameters:
//   - visible: true to mark the object visible
//
// Returns:
//   - DescriptorBuilderOption: functional option to set visibility
func WithVisible(visible bool) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.visible = visible
	}
}

// WithAlpha sets the opacity-contributing scalar.
//
// Parameters:
//   - alpha: the alpha value
//
// Returns:
//   - DescriptorBuilderOption: functional option to set alpha
func WithAlpha(alpha float32) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.alpha = alpha
	}
}

// WithAlphaFactor sets the opacity scale factor applied to alpha.
//
// Parameters:
//   - factor: the alpha factor
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the alpha factor
func WithAlphaFactor(factor float32) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.alphaFactor = factor
	}
}

// WithTransparencyAverage sets the published mean surface transparency.
//
// Parameters:
//   - avg: the transparency average in [0, 1]
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the transparency average
func WithTransparencyAverage(avg float32) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.transparencyAverage = avg
	}
}

// WithXRayShaded marks the object as x-ray shaded.
//
// Parameters:
//   - xray: true to enable x-ray shading
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the x-ray flag
func WithXRayShaded(xray bool) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.xrayShaded = xray
	}
}

// WithMarkerCoverage sets the published marker-coverage scalar.
//
// Parameters:
//   - coverage: the marker coverage
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the marker coverage
func WithMarkerCoverage(coverage float32) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.markerCoverage = coverage
	}
}

// WithRepublish sets the callback invoked when the scene asks the descriptor
// to recompute its derived per-frame values.
//
// Parameters:
//   - republish: the recompute callback
//
// Returns:
//   - DescriptorBuilderOption: functional option to set the republish callback
func WithRepublish(republish func()) DescriptorBuilderOption {
	return func(d *descriptor) {
		d.republish = republish
	}
}
