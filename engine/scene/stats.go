package scene

import (
	"github.com/Carmen-Shannon/prism-go/common"
)

// recomputeStats refreshes the marker and opacity averages over the visible
// primitive partition. Volumetrics never contribute. With no visible
// primitives both averages are 0.
func (s *scene) recomputeStats() {
	var markerSum, opacitySum float32
	count := 0

	for _, d := range s.primitives {
		desc := d.Descriptor()
		if !desc.Visible() {
			continue
		}
		count++
		markerSum += desc.MarkerCoverage()

		xrayDiscount := float32(1)
		if desc.XRayShaded() {
			xrayDiscount = 0.5
		}
		opacitySum += (1 - desc.TransparencyAverage()) *
			common.Clamp(desc.Alpha()*desc.AlphaFactor(), 0, 1) *
			xrayDiscount
	}

	if count == 0 {
		s.markerAverage = 0
		s.opacityAverage = 0
		return
	}
	s.markerAverage = markerSum / float32(count)
	s.opacityAverage = opacitySum / float32(count)
}
