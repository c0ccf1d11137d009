package calc

import (
	"math"
	"testing"
)

func TestDerivOrder2Linear(t *testing.T) {
	n := 10
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 0.5
		ys[i] = 3*xs[i] + 1
	}

	deriv := Deriv(xs, ys, 2)
	for i, d := range deriv {
		if math.Abs(d-3) > 1e-9 {
			t.Errorf("deriv[%d] = %g, want 3", i, d)
		}
	}
}

func TestDerivOrder4Quadratic(t *testing.T) {
	n := 12
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 0.25
		ys[i] = 2 * xs[i] * xs[i]
	}

	deriv := Deriv(xs, ys, 4)
	for i := 2; i < n-2; i++ {
		want := 4 * xs[i]
		if math.Abs(deriv[i]-want) > 1e-6 {
			t.Errorf("deriv[%d] = %g, want %g", i, deriv[i], want)
		}
	}
}

func TestDerivOutSlice(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 4, 9}
	out := make([]float64, len(xs))

	got := Deriv(xs, ys, 2, Out(out))
	if &got[0] != &out[0] {
		t.Errorf("Deriv did not write into the supplied Out buffer.")
	}
}
