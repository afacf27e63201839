package drawable

// Factory constructs and disposes Drawable instances on behalf of the scene.
// The renderer implements this to bind GPU resources on creation and release
// them on disposal; GPU failures are handled inside the factory and never
// surface to the scene.
type Factory interface {
	// Create constructs a Drawable for the given descriptor, allocating any
	// GPU-bound resources the renderer needs to draw it.
	//
	// Parameters:
	//   - desc: the descriptor to create an instance for
	//
	// Returns:
	//   - Drawable: the newly created instance
	Create(desc Descriptor) Drawable

	// Dispose releases the GPU-bound resources of a Drawable previously
	// returned by Create. The instance must not be used afterwards.
	//
	// Parameters:
	//   - d: the drawable to dispose
	Dispose(d Drawable)
}
