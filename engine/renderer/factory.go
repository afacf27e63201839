package renderer

import (
	"log"
	"strconv"

	"github.com/Carmen-Shannon/prism-go/engine/drawable"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// drawableFactory is the renderer-backed implementation of drawable.Factory.
// The scene calls it during commit to turn registered descriptors into live
// drawables with GPU resources, and to release those resources on removal.
type drawableFactory struct {
	r Renderer

	// uniformLayout describes the per-drawable uniform bind group. Empty
	// layouts skip bind group creation entirely.
	uniformLayout       wgpu.BindGroupLayoutDescriptor
	uniformSizeOverride map[int]uint64

	// programs holds the registered program identity per render variant.
	// ProgramNone slots leave the corresponding variant unassigned.
	programs [pipeline.RenderVariantCount]pipeline.ProgramID

	// assignMaterial derives the material identity for a descriptor.
	// Nil leaves drawables with material identity 0.
	assignMaterial func(desc drawable.Descriptor) uint32

	// meshSource supplies vertex/index data for a descriptor. Nil skips mesh
	// buffer creation (the drawable shares a mesh bound elsewhere).
	meshSource func(desc drawable.Descriptor) (vertexData, indexData []byte, indexCount int)
}

var _ drawable.Factory = &drawableFactory{}

// NewDrawableFactory creates a drawable.Factory that allocates GPU resources
// through the given Renderer. GPU failures during creation are absorbed with a
// warning log; the resulting drawable stays registered with whatever resources
// did initialize.
//
// Parameters:
//   - r: the renderer used to allocate GPU resources (must not be nil)
//   - options: functional options to configure the factory
//
// Returns:
//   - drawable.Factory: the newly created factory
func NewDrawableFactory(r Renderer, options ...DrawableFactoryOption) drawable.Factory {
	if r == nil {
		panic("renderer: NewDrawableFactory requires a non-nil Renderer")
	}
	f := &drawableFactory{r: r}
	for _, option := range options {
		option(f)
	}
	return f
}

func (f *drawableFactory) Create(desc drawable.Descriptor) drawable.Drawable {
	provider := bind_group_provider.NewBindGroupProvider(
		"drawable_" + strconv.FormatUint(desc.ID(), 10),
	)

	if len(f.uniformLayout.Entries) > 0 {
		if err := f.r.InitBindGroup(provider, f.uniformLayout, nil, f.uniformSizeOverride); err != nil {
			log.Printf("[Renderer] drawable %d: bind group init failed: %v", desc.ID(), err)
		}
	}

	if f.meshSource != nil {
		vertexData, indexData, indexCount := f.meshSource(desc)
		if len(vertexData) > 0 {
			if err := f.r.InitMeshBuffers(provider, vertexData, indexData, indexCount); err != nil {
				log.Printf("[Renderer] drawable %d: mesh buffer init failed: %v", desc.ID(), err)
			}
		}
	}

	opts := []drawable.DrawableBuilderOption{
		drawable.WithBindGroupProvider(provider),
	}
	for v := pipeline.VariantColorOpaque; v < pipeline.RenderVariantCount; v++ {
		if f.programs[v] != pipeline.ProgramNone {
			opts = append(opts, drawable.WithProgram(v, f.programs[v]))
		}
	}
	if f.assignMaterial != nil {
		opts = append(opts, drawable.WithMaterialID(f.assignMaterial(desc)))
	}

	return drawable.NewDrawable(desc, opts...)
}

func (f *drawableFactory) Dispose(d drawable.Drawable) {
	if d == nil {
		return
	}
	if provider := d.BindGroupProvider(); provider != nil {
		provider.Release()
	}
}
