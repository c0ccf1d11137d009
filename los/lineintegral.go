package los

import "math"

// LineIntegral computes, for every surface in stack, the line integral of
// that surface's density along the piecewise-linear reddening profile
// implied by E over N_regions equal-width distance regions.
//
// Precondition: N_bins[0] must be evenly divisible by N_regions; nRegions
// must be > 0. Violating either is a programmer error and panics.
//
// The result is the raw (non-log) line integral: a sum of nonnegative
// bilinear samples. If, while advancing along axis 0, the implied y leaves
// the grid, the sum for that surface halts there. Going off the grid is
// an intentional termination, not an error.
func LineIntegral(stack *ImgStack, e []float64, nRegions int, out []float64) []float64 {
	rect := stack.Rect()
	nx := rect.NBins(0)
	ny := rect.NBins(1)

	if nRegions <= 0 {
		panic("LineIntegral: N_regions must be positive.")
	}
	if nx%nRegions != 0 {
		panic("LineIntegral: N_bins[0] must be divisible by N_regions.")
	}
	if len(e) != nRegions+1 {
		panic("LineIntegral: len(E) must equal N_regions + 1.")
	}

	s := nx / nRegions
	dx1 := rect.Dx(1)
	minY := rect.Min(1)

	if out == nil {
		out = make([]float64, stack.N())
	}

	for i := 0; i < stack.N(); i++ {
		img := stack.Surface(i)
		var sum float64

	xloop:
		for r := 0; r < nRegions; r++ {
			slope := (e[r+1] - e[r]) / float64(s)
			for j := 0; j < s; j++ {
				x := r*s + j
				yHat := e[r] + slope*float64(j)

				y := (yHat-minY)/dx1
				yf := int(math.Floor(y))
				yc := yf + 1

				if yf < 0 || yc >= ny {
					break xloop
				}

				frac := y - float64(yf)
				v1, v2 := img[x+yf*nx], img[x+yc*nx]
				sum += (1-frac)*v1 + frac*v2
			}
		}

		out[i] = sum
	}

	return out
}
