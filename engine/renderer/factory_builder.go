package renderer

import (
	"github.com/Carmen-Shannon/prism-go/engine/drawable"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// DrawableFactoryOption is a functional option applied to a drawable factory during construction.
type DrawableFactoryOption func(*drawableFactory)

// WithVariantProgram assigns the program identity used for a render variant on
// every drawable the factory creates. Call once per variant the renderer draws.
//
// Parameters:
//   - variant: the render variant to assign the program to
//   - program: the program identity of a registered pipeline
//
// Returns:
//   - DrawableFactoryOption: a function that applies the variant program option to a factory
func WithVariantProgram(variant pipeline.RenderVariant, program pipeline.ProgramID) DrawableFactoryOption {
	return func(f *drawableFactory) {
		f.programs[variant] = program
	}
}

// WithUniformLayout sets the per-drawable uniform bind group layout. All entries
// must be buffer bindings.
//
// Parameters:
//   - descriptor: the bind group layout descriptor for per-drawable uniforms
//
// Returns:
//   - DrawableFactoryOption: a function that applies the uniform layout option to a factory
func WithUniformLayout(descriptor wgpu.BindGroupLayoutDescriptor) DrawableFactoryOption {
	return func(f *drawableFactory) {
		f.uniformLayout = descriptor
	}
}

// WithUniformSizeOverrides sets custom buffer sizes per binding index, used
// instead of the layout's MinBindingSize when creating uniform buffers.
//
// Parameters:
//   - sizes: buffer sizes keyed by binding index
//
// Returns:
//   - DrawableFactoryOption: a function that applies the size override option to a factory
func WithUniformSizeOverrides(sizes map[int]uint64) DrawableFactoryOption {
	return func(f *drawableFactory) {
		f.uniformSizeOverride = sizes
	}
}

// WithMaterialAssigner sets the function deriving each drawable's material
// identity from its descriptor.
//
// Parameters:
//   - assign: the material assignment function
//
// Returns:
//   - DrawableFactoryOption: a function that applies the material assigner option to a factory
func WithMaterialAssigner(assign func(desc drawable.Descriptor) uint32) DrawableFactoryOption {
	return func(f *drawableFactory) {
		f.assignMaterial = assign
	}
}

// WithMeshSource sets the function supplying vertex and index data for each
// created drawable. Descriptors for which the source returns no vertex data
// get no mesh buffers of their own.
//
// Parameters:
//   - source: the mesh data source function
//
// Returns:
//   - DrawableFactoryOption: a function that applies the mesh source option to a factory
func WithMeshSource(source func(desc drawable.Descriptor) (vertexData, indexData []byte, indexCount int)) DrawableFactoryOption {
	return func(f *drawableFactory) {
		f.meshSource = source
	}
}
