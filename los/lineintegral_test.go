package los

import (
	"math"
	"testing"

	"github.com/albertlee-physics/bayestar/los/geom"
)

func constSurface(nx, ny int, c float64) []float64 {
	img := make([]float64, nx*ny)
	for i := range img {
		img[i] = c
	}
	return img
}

func TestLineIntegralConstantSurface(t *testing.T) {
	nx, ny := 20, 10
	rect := geom.NewRect2D([2]float64{0, 0}, [2]float64{20, 10}, [2]int{nx, ny})

	stack := NewImgStackWithRect(1, rect)
	stack.SetSurface(0, constSurface(nx, ny, 2.5))

	nRegions := 4
	e := make([]float64, nRegions+1)
	for i := range e {
		e[i] = float64(i) * 0.5
	}

	out := LineIntegral(stack, e, nRegions, nil)
	want := 2.5 * float64(nx)
	if math.Abs(out[0]-want) > 1e-9 {
		t.Errorf("LineIntegral = %g, want %g", out[0], want)
	}
}

func TestLineIntegralOffGridHalt(t *testing.T) {
	nx, ny := 10, 5
	rect := geom.NewRect2D([2]float64{0, 0}, [2]float64{10, 5}, [2]int{nx, ny})

	stack := NewImgStackWithRect(1, rect)
	stack.SetSurface(0, constSurface(nx, ny, 1))

	nRegions := 2
	// Ramps straight off the top of the grid partway through region 1.
	e := []float64{0, 20, 20}

	out := LineIntegral(stack, e, nRegions, nil)
	if out[0] <= 0 || out[0] >= 1*float64(nx) {
		t.Errorf("LineIntegral = %g, expected a partial sum strictly "+
			"between 0 and the full in-grid total.", out[0])
	}
}

func TestLineIntegralSingleDelta(t *testing.T) {
	nx, ny := 20, 10
	rect := geom.NewRect2D([2]float64{0, 0}, [2]float64{20, 10}, [2]int{nx, ny})

	stack := NewImgStackWithRect(1, rect)
	img := make([]float64, nx*ny)
	img[10+5*nx] = 1
	stack.SetSurface(0, img)

	nRegions := nx
	e := make([]float64, nRegions+1)
	e[10] = 5 * rect.Dx(1)
	e[11] = 5 * rect.Dx(1)

	out := LineIntegral(stack, e, nRegions, nil)
	if math.Abs(out[0]-1) > 1e-9 {
		t.Errorf("LineIntegral at the delta location = %g, want 1", out[0])
	}
}
