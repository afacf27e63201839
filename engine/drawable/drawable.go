package drawable

import (
	"github.com/Carmen-Shannon/prism-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/prism-go/engine/renderer/pipeline"
)

// drawable is the implementation of the Drawable interface.
type drawable struct {
	desc       Descriptor
	programs   [pipeline.RenderVariantCount]pipeline.ProgramID
	materialID uint32
	provider   bind_group_provider.BindGroupProvider
}

// Drawable is the scene-owned instance created for one Descriptor. It carries
// the GPU-bound resources and render program assignments whose lifetime the
// scene controls: created by a Factory on commit of an addition, disposed on
// removal or clear. At most one Drawable exists per Descriptor identity.
type Drawable interface {
	// ID returns the identity of the wrapped Descriptor.
	//
	// Returns:
	//   - uint64: the descriptor identity
	ID() uint64

	// Kind returns the partition kind of the wrapped Descriptor.
	//
	// Returns:
	//   - Kind: KindPrimitive or KindVolumetric
	Kind() Kind

	// Descriptor returns the externally owned descriptor this instance wraps.
	//
	// Returns:
	//   - Descriptor: the wrapped descriptor
	Descriptor() Descriptor

	// Program returns the render program assigned for the given variant, or
	// pipeline.ProgramNone if the variant has no program.
	//
	// Parameters:
	//   - variant: the render variant to look up
	//
	// Returns:
	//   - pipeline.ProgramID: the assigned program, or ProgramNone
	Program(variant pipeline.RenderVariant) pipeline.ProgramID

	// SortProgram returns the program identity used for draw-order sorting:
	// the opaque color variant's program when assigned, otherwise the
	// translucent color variant's.
	//
	// Returns:
	//   - pipeline.ProgramID: the sort program, or ProgramNone
	SortProgram() pipeline.ProgramID

	// MaterialID returns the material identity used as the secondary
	// draw-order sort key.
	//
	// Returns:
	//   - uint32: the material identity
	MaterialID() uint32

	// BindGroupProvider returns the GPU resources bound to this instance, or
	// nil if none were created.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the GPU resources, or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetProgram assigns a render program for the given variant.
	//
	// Parameters:
	//   - variant: the render variant
	//   - program: the program to assign
	SetProgram(variant pipeline.RenderVariant, program pipeline.ProgramID)

	// SetMaterialID sets the material identity.
	//
	// Parameters:
	//   - id: the material identity
	SetMaterialID(id uint32)

	// SetBindGroupProvider sets the GPU resources bound to this instance.
	//
	// Parameters:
	//   - provider: the bind group provider holding GPU resources
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Drawable = &drawable{}

// NewDrawable creates a Drawable wrapping the given descriptor, configured
// with the provided options. Panics if desc is nil.
//
// Parameters:
//   - desc: the descriptor to wrap
//   - options: functional options to configure the drawable
//
// Returns:
//   - Drawable: the newly created drawable
func NewDrawable(desc Descriptor, options ...DrawableBuilderOption) Drawable {
	if desc == nil {
		panic("drawable: descriptor must not be nil")
	}
	d := &drawable{desc: desc}
	for _, option := range options {
		option(d)
	}
	return d
}

func (d *drawable) ID() uint64 {
	return d.desc.ID()
}

func (d *drawable) Kind() Kind {
	return d.desc.Kind()
}

func (d *drawable) Descriptor() Descriptor {
	return d.desc
}

func (d *drawable) Program(variant pipeline.RenderVariant) pipeline.ProgramID {
	if int(variant) < 0 || int(variant) >= len(d.programs) {
		return pipeline.ProgramNone
	}
	return d.programs[variant]
}

func (d *drawable) SortProgram() pipeline.ProgramID {
	if p := d.programs[pipeline.VariantColorOpaque]; p != pipeline.ProgramNone {
		return p
	}
	return d.programs[pipeline.VariantColorTranslucent]
}

func (d *drawable) MaterialID() uint32 {
	return d.materialID
}

func (d *drawable) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return d.provider
}

func (d *drawable) SetProgram(variant pipeline.RenderVariant, program pipeline.ProgramID) {
	if int(variant) < 0 || int(variant) >= len(d.programs) {
		return
	}
	d.programs[variant] = program
}

func (d *drawable) SetMaterialID(id uint32) {
	d.materialID = id
}

func (d *drawable) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	d.provider = provider
}
