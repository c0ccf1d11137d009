package synth

import (
	"math"

	"github.com/albertlee-physics/bayestar/math/rand"
)

// ExponentialDiskPrior is a simple GalacticLOSModel: an exponential
// distance-modulus prior weighted by a fixed halo fraction, useful as a
// smoke-test collaborator and a starting point for a real galactic model.
type ExponentialDiskPrior struct {
	DMMin, DMMax float64
	ScaleHeight  float64 // in DM units, purely for shaping the prior
	HaloFraction float64
}

func (p ExponentialDiskPrior) DMPrior() Density1D {
	return expDiskDensity{p.DMMin, p.DMMax, p.ScaleHeight}
}

func (p ExponentialDiskPrior) FHalo(dm float64) float64 {
	return p.HaloFraction
}

type expDiskDensity struct {
	lo, hi, scale float64
}

func (d expDiskDensity) Evaluate(x float64) float64 {
	return math.Exp(-x / d.scale)
}
func (d expDiskDensity) IsLog() bool                { return false }
func (d expDiskDensity) Bounds() (float64, float64) { return d.lo, d.hi }

// SimpleStellarModel draws a single "mass" parameter from a flat range,
// with disk and halo populations differing only in their range.
type SimpleStellarModel struct {
	DiskMassLo, DiskMassHi float64
	HaloMassLo, HaloMassHi float64
}

func (m SimpleStellarModel) Sample(gen *rand.Generator, halo bool) StellarParams {
	if halo {
		return StellarParams{Values: []float64{gen.Uniform(m.HaloMassLo, m.HaloMassHi)}}
	}
	return StellarParams{Values: []float64{gen.Uniform(m.DiskMassLo, m.DiskMassHi)}}
}

// LinearSED is a toy SyntheticStellarModel: absolute magnitude in band k
// is a linear function of the sampled mass, offset per band.
type LinearSED struct {
	Slope   float64
	Offsets [NBands]float64
}

func (s LinearSED) AbsMags(p StellarParams) (mags [NBands]float64, ok bool) {
	if len(p.Values) == 0 {
		return mags, false
	}
	mass := p.Values[0]
	for k := range mags {
		mags[k] = s.Offsets[k] + s.Slope*mass
	}
	return mags, true
}

// FitzpatrickExtinction is a toy ExtinctionModel using a fixed per-band
// extinction-to-A_V ratio, scaled linearly by R_V / 3.1.
type FitzpatrickExtinction struct {
	ARatio [NBands]float64
}

func (f FitzpatrickExtinction) A(rv float64, band int) float64 {
	return f.ARatio[band] * rv / 3.1
}
