/*Package los implements the affine-invariant ensemble sampler used to infer
a line-of-sight reddening profile from a stack of per-star probability
surfaces.
*/
package los

import (
	"fmt"

	"github.com/albertlee-physics/bayestar/los/geom"
)

// ImgStack holds an ordered sequence of probability surfaces, each a
// flattened (N_bins[0] x N_bins[1]) grid of densities, together with the
// single Rect2D shared by all of them. Axis 0 is distance modulus, axis 1
// is reddening. ImgStack exclusively owns its surfaces and its Rect2D.
type ImgStack struct {
	rect     *geom.Rect2D
	surfaces [][]float64
}

// NewImgStack allocates an ImgStack with n empty (nil) surface slots and no
// Rect2D.
func NewImgStack(n int) *ImgStack {
	s := &ImgStack{}
	s.surfaces = make([][]float64, n)
	return s
}

// NewImgStackWithRect allocates an ImgStack with n empty surface slots and
// takes ownership of a copy of rect.
func NewImgStackWithRect(n int, rect *geom.Rect2D) *ImgStack {
	s := NewImgStack(n)
	s.SetRect(rect)
	return s
}

// SetRect assigns (or overwrites) the stack's stored Rect2D. The stack
// takes a copy, not a reference, of rect.
func (s *ImgStack) SetRect(rect *geom.Rect2D) {
	r := *rect
	s.rect = &r
}

// Rect returns the stack's Rect2D, or nil if none has been set.
func (s *ImgStack) Rect() *geom.Rect2D { return s.rect }

// N returns the number of surfaces currently owned by the stack.
func (s *ImgStack) N() int { return len(s.surfaces) }

// Surface returns surface i. The caller is responsible for populating it
// with the right shape; ImgStack performs no dimension checks against
// Rect, since those checks belong at population time, not lookup time.
func (s *ImgStack) Surface(i int) []float64 { return s.surfaces[i] }

// SetSurface installs img as surface i.
func (s *ImgStack) SetSurface(i int, img []float64) { s.surfaces[i] = img }

// Resize drops every surface and Rect2D the stack owns and allocates n'
// empty surface slots.
func (s *ImgStack) Resize(n int) {
	s.surfaces = make([][]float64, n)
	s.rect = nil
}

// Cull retains surfaces whose entry in keep is true, preserving relative
// order, and drops the rest. len(keep) must equal s.N(); a mismatch is a
// programmer error, not a recoverable condition, so Cull panics.
func (s *ImgStack) Cull(keep []bool) {
	if len(keep) != len(s.surfaces) {
		panic(fmt.Sprintf(
			"ImgStack.Cull: len(keep) = %d, but N_images = %d",
			len(keep), len(s.surfaces),
		))
	}

	kept := s.surfaces[:0]
	for i, k := range keep {
		if k {
			kept = append(kept, s.surfaces[i])
		}
	}
	s.surfaces = kept
}
