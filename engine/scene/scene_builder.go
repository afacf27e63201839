package scene

import (
	"github.com/Carmen-Shannon/prism-go/engine/camera"
)

// SceneBuilderOption is a functional option for configuring a Scene during construction.
type SceneBuilderOption func(*scene)

// WithCamera attaches a camera whose matrices the scene refreshes during
// Update.
//
// Parameters:
//   - cam: the camera to attach
//
// Returns:
//   - SceneBuilderOption: functional option to set the camera
func WithCamera(cam camera.Camera) SceneBuilderOption {
	return func(s *scene) {
		s.cam = cam
	}
}

// WithCommitBatchSize sets how many queued operations Commit applies between
// elapsed-time checks. Values below 1 are ignored.
//
// Parameters:
//   - size: the batch size (default 100)
//
// Returns:
//   - SceneBuilderOption: functional option to set the commit batch size
func WithCommitBatchSize(size int) SceneBuilderOption {
	return func(s *scene) {
		if size >= 1 {
			s.batchSize = size
		}
	}
}
