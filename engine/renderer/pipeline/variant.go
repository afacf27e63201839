package pipeline

// ProgramID is the renderer-assigned identity of a registered render pipeline.
// IDs are assigned monotonically starting at 1; the zero value means "no
// program". Draw-order sorting compares these directly, so pipelines
// registered together stay adjacent in sorted draw lists.
type ProgramID uint32

// ProgramNone is the ProgramID zero value, meaning no pipeline is assigned.
const ProgramNone ProgramID = 0

// RenderVariant selects which rendering flavor of a drawable a pipeline
// serves. A drawable may carry a different program per variant.
type RenderVariant int

const (
	// VariantColorOpaque is the standard opaque color pass.
	VariantColorOpaque RenderVariant = iota

	// VariantColorTranslucent is the blended color pass for transparent surfaces.
	VariantColorTranslucent

	// VariantDepth is the depth-only pass (pre-pass or shadow rendering).
	VariantDepth

	// VariantPick is the object-picking pass rendering identities instead of color.
	VariantPick

	// RenderVariantCount is the number of defined render variants; used for
	// per-variant array sizing.
	RenderVariantCount
)
