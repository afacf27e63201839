package drawable

import (
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/pipeline"
)

// DrawableBuilderOption is a functional option for configuring a Drawable during construction.
type DrawableBuilderOption func(*drawable)

// WithProgram assigns a render program for the given variant.
//
// Parameters:
//   - variant: the render variant
//   - program: the program to assign
//
// Returns:
//   - DrawableBuilderOption: functional option to set the program
func WithProgram(variant pipeline.RenderVariant, program pipeline.ProgramID) DrawableBuilderOption {
	return func(d *drawable) {
		if int(variant) < 0 || int(variant) >= len(d.programs) {
			return
		}
		d.programs[variant] = program
	}
}

// WithMaterialID sets the material identity used as the secondary draw-order
// sort key.
//
// Parameters:
//   - id: the material identity
//
// Returns:
//   - DrawableBuilderOption: functional option to set the material identity
func WithMaterialID(id uint32) DrawableBuilderOption {
	return func(d *drawable) {
		d.materialID = id
	}
}

// WithBindGroupProvider sets the GPU resources bound to the drawable.
//
// Parameters:
//   - provider: the bind group provider holding GPU resources
//
// Returns:
//   - DrawableBuilderOption: functional option to set the bind group provider
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) DrawableBuilderOption {
	return func(d *drawable) {
		d.provider = provider
	}
}
