package scene

import (
	"sort"
)

// sortDrawables stably orders the live list to minimize GPU state changes
// during draw traversal: ascending program identity first (the costliest
// switch), then material identity, then drawable identity as a deterministic
// tie-break. Runs once per completed commit, not per frame.
func (s *scene) sortDrawables() {
	sort.SliceStable(s.drawables, func(i, j int) bool {
		a, b := s.drawables[i], s.drawables[j]
		if pa, pb := a.SortProgram(), b.SortProgram(); pa != pb {
			return pa < pb
		}
		if ma, mb := a.MaterialID(), b.MaterialID(); ma != mb {
			return ma < mb
		}
		return a.ID() < b.ID()
	})
}
