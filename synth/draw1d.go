/*Package synth builds synthetic stellar catalogs by composing arbitrary
1-D priors, stellar models, and extinction models supplied by the caller.
*/
package synth

import (
	"math"

	"github.com/albertlee-physics/bayestar/math/interpolate"
	"github.com/albertlee-physics/bayestar/math/rand"
)

// Draw1D samples from an arbitrary 1-D probability density via an inverse
// CDF table.
type Draw1D struct {
	xMin, xMax float64
	inverse    *interpolate.Linear
}

// NewDraw1D builds a Draw1D for the density f (or its log, if isLog) on
// [xMin, xMax], tabulated with the given number of knots.
//
// f being zero everywhere makes the normalization singular; NewDraw1D
// panics in that case.
func NewDraw1D(f func(x float64) float64, xMin, xMax float64, samples int, isLog bool) *Draw1D {
	if samples < 2 {
		panic("synth: Draw1D needs at least 2 samples.")
	}

	dx := (xMax - xMin) / float64(samples-1)
	xs := make([]float64, samples)
	cum := make([]float64, samples)

	for k := 0; k < samples; k++ {
		xs[k] = xMin + float64(k)*dx
	}

	running := 0.0
	for k := 0; k < samples; k++ {
		cum[k] = running
		v := f(xs[k])
		if isLog {
			v = math.Exp(v)
		}
		running += dx * v
	}

	norm := cum[samples-1]
	if norm == 0 {
		panic("synth: Draw1D density integrates to zero over the given range.")
	}
	for k := range cum {
		cum[k] /= norm
	}

	dp := 1 / float64(samples-1)
	xInverse := make([]float64, samples)
	for i := 0; i < samples; i++ {
		p := float64(i) * dp

		k := 0
		for k < samples && cum[k] < p {
			k++
		}
		if k == 0 {
			xInverse[i] = xs[0]
		} else if k >= samples {
			xInverse[i] = xMax
		} else {
			x1, x2 := xs[k-1], xs[k]
			p1, p2 := cum[k-1], cum[k]
			if p2 == p1 {
				xInverse[i] = x2
			} else {
				xInverse[i] = x1 + (p-p1)/(p2-p1)*(x2-x1)
			}
		}
	}
	xInverse[samples-1] = xMax

	return &Draw1D{
		xMin:    xMin,
		xMax:    xMax,
		inverse: interpolate.NewUniformLinear(0, dp, xInverse),
	}
}

// Sample draws a single value from the density using gen as its source of
// randomness.
func (d *Draw1D) Sample(gen *rand.Generator) float64 {
	u := gen.Uniform(0, 1)
	return d.inverse.Eval(u)
}
