package los

import (
	"math"

	"github.com/albertlee-physics/bayestar/math/rand"
)

// LosPosterior evaluates the log-posterior of a reddening profile and
// generates random initial states, given a fixed set of LOSParams.
type LosPosterior struct {
	params *LOSParams
	// line is scratch space reused across calls to LnP to avoid an
	// allocation per evaluation.
	line []float64
}

// NewLosPosterior builds a LosPosterior over params.
func NewLosPosterior(params *LOSParams) *LosPosterior {
	return &LosPosterior{
		params: params,
		line:   make([]float64, params.Stack.N()),
	}
}

// LnP evaluates the log-posterior of the profile vector e (length D =
// N_regions+1). Returns negative infinity for any state violating the
// profile invariants (monotonicity, in-grid, nonnegativity).
func (lp *LosPosterior) LnP(e []float64, nRegions int) float64 {
	stack := lp.params.Stack
	rect := stack.Rect()

	if e[len(e)-1] >= rect.Max(1) {
		return math.Inf(-1)
	}
	if e[0] < 0 {
		return math.Inf(-1)
	}
	for i := 1; i < len(e); i++ {
		if e[i] < e[i-1] {
			return math.Inf(-1)
		}
	}

	line := LineIntegral(stack, e, nRegions, lp.line)

	p0 := lp.params.P0
	lnP := 0.0
	for _, v := range line {
		if v < 1e5*p0 {
			v += p0 * math.Exp(-v/p0)
		}
		lnP += math.Log(v)
	}

	if lp.params.EBVMax > 0 && e[len(e)-1] > lp.params.EBVMax {
		d := (e[len(e)-1] - lp.params.EBVMax) / lp.params.EBVMax
		lnP -= 0.5 * d * d
	}

	return lnP
}

// GenState draws a random monotone nonnegative initial profile of length
// D into eOut, using gen as its source of randomness.
func (lp *LosPosterior) GenState(eOut []float64, gen *rand.Generator) {
	rect := lp.params.Stack.Rect()
	d := len(eOut)
	mu := rect.Max(1) / float64(d)

	for i := 0; i < d; i++ {
		eOut[i] = 0.5 * mu * gen.Uniform(0, 1)
		if i >= 1 {
			eOut[i] += eOut[i-1]
		}
	}

	if eOut[d-1] >= 0.95*rect.Max(1) {
		scale := 0.9 * rect.Max(1) / eOut[d-1]
		for i := range eOut {
			eOut[i] *= scale
		}
	}
}
