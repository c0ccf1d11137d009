package los

import (
	"math"
	"testing"

	"github.com/albertlee-physics/bayestar/los/geom"
	"github.com/albertlee-physics/bayestar/math/rand"
)

func newTestPosterior(nImages int) (*LosPosterior, *geom.Rect2D) {
	nx, ny := 20, 10
	rect := geom.NewRect2D([2]float64{0, 0}, [2]float64{20, 10}, [2]int{nx, ny})
	stack := NewImgStackWithRect(nImages, rect)
	for i := 0; i < nImages; i++ {
		stack.SetSurface(i, constSurface(nx, ny, 0))
	}
	params := NewLOSParams(stack, 1e-6, 0)
	return NewLosPosterior(params), rect
}

func TestLosPosteriorRejectsOutOfGrid(t *testing.T) {
	lp, rect := newTestPosterior(2)
	e := []float64{0, rect.Max(1)}
	if !math.IsInf(lp.LnP(e, len(e)-1), -1) {
		t.Errorf("Expected -Inf when E[D-1] >= rect.Max(1).")
	}
}

func TestLosPosteriorRejectsNegative(t *testing.T) {
	lp, _ := newTestPosterior(2)
	e := []float64{-0.1, 0.1}
	if !math.IsInf(lp.LnP(e, len(e)-1), -1) {
		t.Errorf("Expected -Inf when E[0] < 0.")
	}
}

func TestLosPosteriorRejectsNonMonotone(t *testing.T) {
	lp, _ := newTestPosterior(2)
	e := []float64{0, 0.1, 0.05}
	if !math.IsInf(lp.LnP(e, len(e)-1), -1) {
		t.Errorf("Expected -Inf for a non-monotone profile.")
	}
}

func TestLosPosteriorSoftFloor(t *testing.T) {
	lp, _ := newTestPosterior(3)
	e := []float64{0, 0.5, 1}
	got := lp.LnP(e, len(e)-1)
	want := 3 * math.Log(1e-6)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("LnP on an all-zero stack = %g, want %g", got, want)
	}
}

func TestLosPosteriorGenStateMonotone(t *testing.T) {
	lp, rect := newTestPosterior(1)
	gen := rand.New(rand.Xorshift, 1337)

	d := 5
	e := make([]float64, d)
	for trial := 0; trial < 1000; trial++ {
		lp.GenState(e, gen)
		if e[0] < 0 {
			t.Fatalf("E[0] = %g < 0", e[0])
		}
		for i := 1; i < d; i++ {
			if e[i] < e[i-1] {
				t.Fatalf("GenState produced a non-monotone profile: %v", e)
			}
		}
		if e[d-1] >= rect.Max(1) {
			t.Fatalf("GenState produced E[D-1] = %g >= rect.Max(1) = %g",
				e[d-1], rect.Max(1))
		}
	}
}
