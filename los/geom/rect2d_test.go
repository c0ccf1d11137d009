package geom

import (
	"math"
	"testing"
)

func TestRect2DIndex(t *testing.T) {
	r := NewRect2D([2]float64{0, 0}, [2]float64{10, 5}, [2]int{10, 10})

	table := []struct {
		axis int
		v    float64
		want float64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{0, 10, 10},
		{1, 0, 0},
		{1, 2.5, 5},
		{1, 0.25, 0.5},
	}

	for i, test := range table {
		got := r.Index(test.axis, test.v)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%d) Index(%d, %g) = %g, want %g",
				i, test.axis, test.v, got, test.want)
		}
	}
}

func TestRect2DDx(t *testing.T) {
	r := NewRect2D([2]float64{-1, 0}, [2]float64{1, 8}, [2]int{4, 16})
	if r.Dx(0) != 0.5 {
		t.Errorf("Dx(0) = %g, want 0.5", r.Dx(0))
	}
	if r.Dx(1) != 0.5 {
		t.Errorf("Dx(1) = %g, want 0.5", r.Dx(1))
	}
}

func TestRect2DInvariantPanics(t *testing.T) {
	panics := func(f func()) (ok bool) {
		defer func() {
			if r := recover(); r != nil {
				ok = true
			}
		}()
		f()
		return false
	}

	if !panics(func() { NewRect2D([2]float64{0, 0}, [2]float64{1, 1}, [2]int{0, 1}) }) {
		t.Errorf("Expected NewRect2D to panic on N_bins == 0.")
	}
	if !panics(func() { NewRect2D([2]float64{1, 0}, [2]float64{1, 1}, [2]int{1, 1}) }) {
		t.Errorf("Expected NewRect2D to panic on max <= min.")
	}
}

func TestRect2DCoordRoundTrip(t *testing.T) {
	r := NewRect2D([2]float64{2, -3}, [2]float64{12, 7}, [2]int{20, 40})
	for i := 0; i <= r.NBins(0); i++ {
		v := r.Coord(0, i)
		idx := r.Index(0, v)
		if math.Abs(idx-float64(i)) > 1e-9 {
			t.Errorf("Coord/Index round trip failed at i=%d: got idx=%g", i, idx)
		}
	}
}
