package synth

import (
	"testing"

	"github.com/albertlee-physics/bayestar/math/rand"
)

type uniformDM struct{ lo, hi float64 }

func (u uniformDM) Evaluate(x float64) float64 { return 1 }
func (u uniformDM) IsLog() bool                { return false }
func (u uniformDM) Bounds() (float64, float64) { return u.lo, u.hi }

type fakeGalaxy struct{ dm uniformDM }

func (g fakeGalaxy) DMPrior() Density1D       { return g.dm }
func (g fakeGalaxy) FHalo(dm float64) float64 { return 0.1 }

type fakeStellar struct{}

func (fakeStellar) Sample(gen *rand.Generator, halo bool) StellarParams {
	return StellarParams{Values: []float64{gen.Uniform(0.1, 2)}}
}

type fakeSED struct{}

func (fakeSED) AbsMags(p StellarParams) (mags [NBands]float64, ok bool) {
	for k := range mags {
		mags[k] = 4 + float64(k)*0.1
	}
	return mags, true
}

type fakeExtinction struct{}

func (fakeExtinction) A(rv float64, band int) float64 {
	return 1.0 / (1.0 + float64(band))
}

func TestDrawEBVStepFunction(t *testing.T) {
	gen := rand.New(rand.Xorshift, 9)
	tests := []struct {
		dm   float64
		want float64
	}{
		{dm: 0, want: 0},
		{dm: 5, want: 0},
		{dm: 7, want: 0.5},
		{dm: 10, want: 0.5},
		{dm: 15, want: 4.0},
	}
	for _, tt := range tests {
		if got := drawEBV(EmpiricalStepEBV, tt.dm, gen); got != tt.want {
			t.Errorf("drawEBV(EmpiricalStepEBV, %g) = %g, want %g", tt.dm, got, tt.want)
		}
	}
}

func TestObservationNoiseCappedUnderEmpiricalStepEBV(t *testing.T) {
	gen := rand.New(rand.Xorshift, 3)
	var magLimit, absMags [NBands]float64
	for k := range magLimit {
		magLimit[k] = 10
		absMags[k] = 30 // pushes mag far past the limit, driving sigma above 1.5
	}
	for i := 0; i < 100; i++ {
		noise := observationNoise(magLimit, absMags, 0, 0, 3.1, fakeExtinction{}, 0, gen, EmpiricalStepEBV)
		if noise > 10*1.5 || noise < -10*1.5 {
			t.Fatalf("observationNoise = %g, implausible for a capped sigma of 1.5", noise)
		}
	}
}

func TestSyntheticDrawProducesRequestedCount(t *testing.T) {
	gen := rand.New(rand.Xorshift, 5)
	galaxy := fakeGalaxy{dm: uniformDM{lo: 10, hi: 14}}
	var limit [NBands]float64
	for i := range limit {
		limit[i] = 22
	}

	data := SyntheticDraw(gen, 50, 3.1, galaxy, fakeStellar{}, fakeSED{}, fakeExtinction{}, limit, ChiSquaredEBV)

	if len(data.DM) != 50 {
		t.Fatalf("len(data.DM) = %d, want 50", len(data.DM))
	}
	if len(data.Mags) != 50 || len(data.EBV) != 50 || len(data.Params) != 50 {
		t.Fatalf("mismatched output slice lengths: %+v", data)
	}
	for _, mags := range data.Mags {
		if mags[0] >= limit[0] {
			t.Errorf("detected star has first band %g >= limit %g", mags[0], limit[0])
		}
	}
}
