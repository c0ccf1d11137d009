/*package geom contains the axis-aligned binning descriptors shared by every
surface in an ImgStack.
*/
package geom

// Rect2D describes a 2-D Cartesian grid: for each axis, a lower bound, an
// upper bound, and a bin count. It is immutable once constructed.
type Rect2D struct {
	min, max [2]float64
	nBins    [2]int
	dx       [2]float64
}

// NewRect2D constructs a Rect2D from the given per-axis bounds and bin
// counts. Panics if any nBins[a] < 1 or max[a] <= min[a], since those are
// the caller's contract to uphold, not a recoverable runtime condition.
func NewRect2D(min, max [2]float64, nBins [2]int) *Rect2D {
	r := &Rect2D{}
	r.Init(min, max, nBins)
	return r
}

// Init initializes a Rect2D in place.
func (r *Rect2D) Init(min, max [2]float64, nBins [2]int) {
	for a := 0; a < 2; a++ {
		if nBins[a] < 1 {
			panic("Rect2D: N_bins must be at least 1 on every axis.")
		} else if max[a] <= min[a] {
			panic("Rect2D: max must be greater than min on every axis.")
		}
	}

	r.min, r.max, r.nBins = min, max, nBins
	for a := 0; a < 2; a++ {
		r.dx[a] = (max[a] - min[a]) / float64(nBins[a])
	}
}

// Min returns the lower bound on axis a.
func (r *Rect2D) Min(a int) float64 { return r.min[a] }

// Max returns the upper bound on axis a.
func (r *Rect2D) Max(a int) float64 { return r.max[a] }

// NBins returns the number of bins on axis a.
func (r *Rect2D) NBins(a int) int { return r.nBins[a] }

// Dx returns the bin width on axis a.
func (r *Rect2D) Dx(a int) float64 { return r.dx[a] }

// Index maps a continuous coordinate v on axis a to a fractional bin
// index, (v - min[a]) / dx[a]. Out-of-range values are not clamped: it is
// the caller's job (see LineIntegral) to check bounds before using the
// result to look up a bin.
func (r *Rect2D) Index(a int, v float64) float64 {
	return (v - r.min[a]) / r.dx[a]
}

// Coord is the inverse of Index: it maps a bin index on axis a back to the
// coordinate at the bin's lower edge.
func (r *Rect2D) Coord(a int, i int) float64 {
	return r.min[a] + float64(i)*r.dx[a]
}
