package los

import (
	"testing"

	"github.com/albertlee-physics/bayestar/los/geom"
	"github.com/albertlee-physics/bayestar/logging"
)

func TestSamplerDriverRunPersistsChain(t *testing.T) {
	nx, ny := 20, 10
	rect := geom.NewRect2D([2]float64{0, 0}, [2]float64{20, 10}, [2]int{nx, ny})
	stack := NewImgStackWithRect(1, rect)
	stack.SetSurface(0, constSurface(nx, ny, 1))
	params := NewLOSParams(stack, 1e-6, 0)
	lp := NewLosPosterior(params)

	nRegions := 2
	sampler := NewEnsembleSampler(lp, 16, nRegions, 2, 7)
	driver := NewSamplerDriver(sampler, nRegions, 40)
	driver.SetMaxAttempts(2)

	sink := NewGobSink()
	record := driver.Run(sink, "test.gob", "test-group", "test-label")

	if len(record.States) == 0 {
		t.Fatalf("Run recorded zero states.")
	}
	if len(record.States) != len(record.LnProb) {
		t.Fatalf("len(States) = %d != len(LnProb) = %d",
			len(record.States), len(record.LnProb))
	}
	if record.Attempts < 1 || record.Attempts > 2 {
		t.Fatalf("Attempts = %d, expected between 1 and 2", record.Attempts)
	}
	if len(record.RHat) != nRegions+1 {
		t.Fatalf("len(RHat) = %d, want %d", len(record.RHat), nRegions+1)
	}
}

func TestSamplerDriverDegenerateStack(t *testing.T) {
	nx, ny := 20, 10
	rect := geom.NewRect2D([2]float64{0, 0}, [2]float64{20, 10}, [2]int{nx, ny})
	stack := NewImgStackWithRect(0, rect)
	params := NewLOSParams(stack, 1e-6, 0.5)
	lp := NewLosPosterior(params)

	nRegions := 1
	nSteps := 20
	w := 8
	sampler := NewEnsembleSampler(lp, w, nRegions, 2, 11)
	driver := NewSamplerDriver(sampler, nRegions, nSteps)
	driver.SetMaxAttempts(1)

	sink := NewGobSink()
	record := driver.Run(sink, "degenerate.gob", "degenerate", "degenerate")

	if len(record.States) != nSteps*w {
		t.Errorf("len(States) = %d, want %d", len(record.States), nSteps*w)
	}
}

func TestProfileSmoothnessOnFlatMean(t *testing.T) {
	prev := logging.Mode
	logging.Mode = logging.Debug
	defer func() { logging.Mode = prev }()

	states := make([][]float64, 20)
	for i := range states {
		states[i] = []float64{0, 0, 0, 0, 0, 0}
	}
	if got := profileSmoothness(states); got != 0 {
		t.Errorf("profileSmoothness on a flat mean profile = %g, want 0", got)
	}
}
