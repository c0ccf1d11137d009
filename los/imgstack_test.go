package los

import (
	"testing"

	"github.com/albertlee-physics/bayestar/los/geom"
)

func TestImgStackCull(t *testing.T) {
	s := NewImgStack(5)
	for i := 0; i < 5; i++ {
		s.SetSurface(i, []float64{float64(i)})
	}

	s.Cull([]bool{true, false, true, true, false})

	if s.N() != 3 {
		t.Fatalf("N() = %d, want 3", s.N())
	}
	want := []float64{0, 2, 3}
	for i, w := range want {
		if s.Surface(i)[0] != w {
			t.Errorf("Surface(%d) = %v, want [%g]", i, s.Surface(i), w)
		}
	}
}

func TestImgStackCullPanicsOnMismatchedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected Cull to panic on mismatched keep length.")
		}
	}()
	s := NewImgStack(3)
	s.Cull([]bool{true, false})
}

func TestImgStackResize(t *testing.T) {
	s := NewImgStackWithRect(4, geom.NewRect2D(
		[2]float64{0, 0}, [2]float64{1, 1}, [2]int{10, 10},
	))
	s.Resize(2)
	if s.N() != 2 {
		t.Errorf("N() = %d, want 2", s.N())
	}
	if s.Rect() != nil {
		t.Errorf("Resize did not clear the Rect2D.")
	}
}

func TestImgStackSetRectCopies(t *testing.T) {
	r := geom.NewRect2D([2]float64{0, 0}, [2]float64{1, 1}, [2]int{10, 10})
	s := NewImgStackWithRect(1, r)

	r.Init([2]float64{-1, -1}, [2]float64{2, 2}, [2]int{20, 20})
	if s.Rect().Max(0) == 2 {
		t.Errorf("ImgStack.SetRect should copy, not alias, its argument.")
	}
}
