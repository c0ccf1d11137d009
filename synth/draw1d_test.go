package synth

import (
	"math"
	"testing"

	"github.com/albertlee-physics/bayestar/math/rand"
	"github.com/stretchr/testify/require"
)

func TestDraw1DUniformMean(t *testing.T) {
	d := NewDraw1D(func(x float64) float64 { return 1 }, 0, 1, 1001, false)
	gen := rand.New(rand.Xorshift, 99)

	n := 10000
	sum := 0.0
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = d.Sample(gen)
		sum += samples[i]
	}
	mean := sum / float64(n)

	require.InDelta(t, 0.5, mean, 0.01, "sample mean of U(0,1) draws")

	ks := ksStatisticUniform(samples)
	require.Less(t, ks, 0.02, "KS statistic against U(0,1)")
}

// ksStatisticUniform computes the Kolmogorov-Smirnov statistic of samples
// against the U(0,1) CDF.
func ksStatisticUniform(samples []float64) float64 {
	sorted := append([]float64(nil), samples...)
	insertionSort(sorted)

	n := float64(len(sorted))
	maxD := 0.0
	for i, x := range sorted {
		empirical := float64(i+1) / n
		d := math.Abs(empirical - x)
		if d > maxD {
			maxD = d
		}
	}
	return maxD
}

func insertionSort(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func TestDraw1DLinearDensity(t *testing.T) {
	// f(x) = 2x on [0, 1] has CDF x^2, so the median should land near
	// x = 1/sqrt(2).
	d := NewDraw1D(func(x float64) float64 { return 2 * x }, 0, 1, 2001, false)
	gen := rand.New(rand.Xorshift, 7)

	n := 20000
	below := 0
	target := 1 / math.Sqrt(2)
	for i := 0; i < n; i++ {
		if d.Sample(gen) < target {
			below++
		}
	}
	frac := float64(below) / float64(n)
	require.InDelta(t, 0.5, frac, 0.02, "fraction below the analytic median")
}
