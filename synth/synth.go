package synth

import (
	"math"

	"github.com/albertlee-physics/bayestar/math/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NBands is the compile-time photometric band count. A runtime-variable
// band count is out of scope.
const NBands = 5

// StellarParams holds the physical parameters drawn for one synthetic
// star (mass, age, metallicity, or whatever a StellarModel chooses to
// sample); its interpretation is opaque to synth itself.
type StellarParams struct {
	Values []float64
}

// Density1D describes a 1-D prior density suitable for building a Draw1D:
// its evaluator, whether that evaluator returns a log-density, and its
// support.
type Density1D interface {
	Evaluate(x float64) float64
	IsLog() bool
	Bounds() (lo, hi float64)
}

// GalacticLOSModel supplies the distance-modulus prior and halo/disk
// mixture weight along a line of sight.
type GalacticLOSModel interface {
	DMPrior() Density1D
	FHalo(dm float64) float64
}

// StellarModel draws stellar parameters from the halo or disk population.
type StellarModel interface {
	Sample(gen *rand.Generator, halo bool) StellarParams
}

// SyntheticStellarModel maps stellar parameters to absolute magnitudes via
// an SED library. ok is false if the library has no matching SED, in
// which case the caller must reject and resample.
type SyntheticStellarModel interface {
	AbsMags(p StellarParams) (mags [NBands]float64, ok bool)
}

// ExtinctionModel supplies the per-band extinction coefficient for a given
// R_V.
type ExtinctionModel interface {
	A(rv float64, band int) float64
}

// StellarData is the detected-star catalog produced by SyntheticDraw.
type StellarData struct {
	DM     []float64
	EBV    []float64
	Mags   [][NBands]float64
	Params []StellarParams
}

// buildDraw1D constructs a Draw1D over prior's density.
func buildDraw1D(prior Density1D, samples int) *Draw1D {
	lo, hi := prior.Bounds()
	return NewDraw1D(prior.Evaluate, lo, hi, samples, prior.IsLog())
}

// EBVMode selects how SyntheticDraw draws the reddening along each
// simulated star's line of sight.
type EBVMode int

const (
	// ChiSquaredEBV draws E(B-V) from a chi-squared(1) distribution.
	ChiSquaredEBV EBVMode = iota
	// EmpiricalStepEBV draws E(B-V) from the fixed distance-modulus step
	// function of the empirical variant: 0 out to DM=5, +0.5 out to
	// DM=10, +3.5 beyond that. It also caps photometric noise stddev at
	// 1.5, matching that variant's library-lookup SED source.
	EmpiricalStepEBV
)

// SyntheticDraw generates nStars detected synthetic stars along a line of
// sight, per spec: a star is "detected" when its first band is below its
// magnitude limit and no more than one other band exceeds its limit.
func SyntheticDraw(
	gen *rand.Generator,
	nStars int,
	rv float64,
	prior GalacticLOSModel,
	stellar StellarModel,
	sed SyntheticStellarModel,
	extinction ExtinctionModel,
	magLimit [NBands]float64,
	mode EBVMode,
) StellarData {
	dmDraw := buildDraw1D(prior.DMPrior(), 1001)

	out := StellarData{}

	for len(out.DM) < nStars {
		dm := dmDraw.Sample(gen)
		e := drawEBV(mode, dm, gen)

		halo := gen.Uniform(0, 1) < prior.FHalo(dm)
		params := stellar.Sample(gen, halo)

		absMags, ok := sed.AbsMags(params)
		if !ok {
			continue
		}

		var mags [NBands]float64
		for k := 0; k < NBands; k++ {
			noise := observationNoise(magLimit, absMags, dm, e, rv, extinction, k, gen, mode)
			mags[k] = absMags[k] + dm + e*extinction.A(rv, k) + noise
		}

		if !detected(mags, magLimit) {
			continue
		}

		out.DM = append(out.DM, dm)
		out.EBV = append(out.EBV, e)
		out.Mags = append(out.Mags, mags)
		out.Params = append(out.Params, params)
	}

	return out
}

// drawEBV draws a single E(B-V) value at distance modulus dm under mode.
func drawEBV(mode EBVMode, dm float64, gen *rand.Generator) float64 {
	if mode == EmpiricalStepEBV {
		e := 0.0
		if dm > 5 {
			e += 0.5
		}
		if dm > 10 {
			e += 3.5
		}
		return e
	}
	return distuv.ChiSquared{K: 1}.Quantile(gen.Uniform(0, 1))
}

// observationNoise draws Gaussian photometric noise for band k, with
// stddev 0.02 + 0.1*exp(mag[k] - mag_limit[k] - 1.5), capped at 1.5 under
// EmpiricalStepEBV.
//
// The source this was distilled from computes the exponent using the
// outer loop's star index rather than the band index k; that is treated
// here as an unintended bug and corrected to use k consistently.
func observationNoise(
	magLimit [NBands]float64, absMags [NBands]float64, dm, ebv, rv float64,
	extinction ExtinctionModel, k int, gen *rand.Generator, mode EBVMode,
) float64 {
	mag := absMags[k] + dm + ebv*extinction.A(rv, k)
	sigma := 0.02 + 0.1*math.Exp(mag-magLimit[k]-1.5)
	if mode == EmpiricalStepEBV && sigma > 1.5 {
		sigma = 1.5
	}
	norm := distuv.Normal{Mu: 0, Sigma: sigma}
	return norm.Quantile(gen.Uniform(0, 1))
}

// detected reports whether a star's observed magnitudes pass the
// detection cut: the first band under its limit, and no more than one
// other band over its limit.
func detected(mags, magLimit [NBands]float64) bool {
	if mags[0] >= magLimit[0] {
		return false
	}
	overLimit := 0
	for k := 1; k < NBands; k++ {
		if mags[k] >= magLimit[k] {
			overLimit++
		}
	}
	return overLimit <= 1
}
