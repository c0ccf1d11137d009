package los

import (
	"log"
	"time"

	"github.com/albertlee-physics/bayestar/logging"
	"github.com/albertlee-physics/bayestar/math/calc"
	"github.com/albertlee-physics/bayestar/math/interpolate"
)

// burnInFractions and burnInBandwidths describe the fixed burn-in
// schedule: alternating stretch-heavy and replacement-heavy sub-steps.
var (
	burnInFractions  = [8]float64{0.20, 0.05, 0.20, 0.05, 0.20, 0.05, 0.20, 0.05}
	burnInBandwidths = [8]float64{0.5, 1.0, 0.5, 1.0, 0.5, 1.0, 0.5, 1.0}
)

// MaxAttempts is the default number of main-run attempts the driver makes
// before giving up on convergence.
const MaxAttempts = 3

// gelmanRubinThreshold is the per-dimension R-hat ceiling below which a
// run is declared converged.
const gelmanRubinThreshold = 1.2

// SamplerDriver runs the fixed burn-in/main-run/retry schedule for LOS
// inference over an EnsembleSampler.
type SamplerDriver struct {
	sampler     *EnsembleSampler
	nRegions    int
	nSteps      int
	maxAttempts int
}

// NewSamplerDriver builds a driver over sampler with the given base step
// budget nSteps.
func NewSamplerDriver(sampler *EnsembleSampler, nRegions, nSteps int) *SamplerDriver {
	return &SamplerDriver{
		sampler:     sampler,
		nRegions:    nRegions,
		nSteps:      nSteps,
		maxAttempts: MaxAttempts,
	}
}

// SetMaxAttempts overrides the default number of main-run retries.
func (d *SamplerDriver) SetMaxAttempts(n int) { d.maxAttempts = n }

// Run executes burn-in, then the main-run/retry loop, then persists the
// recorded chain to sink at path under group/label. It returns the
// resulting ChainRecord. Errors from sink.Append and sink.Save are written
// to the log and are not returned to the caller.
func (d *SamplerDriver) Run(sink ChainSink, path, group, label string) ChainRecord {
	start := time.Now()

	d.burnIn()

	rHat := make([]float64, d.nRegions+1)
	converged := false
	attempt := 0

	for ; attempt < d.maxAttempts; attempt++ {
		steps := d.nSteps * (1 << attempt)
		log.Printf("# Main run attempt %d: %d steps", attempt, steps)
		d.sampler.Step(steps, true, 1, 0.1, nil)

		d.sampler.GelmanRubin(rHat)
		converged = true
		for _, r := range rHat {
			if r > gelmanRubinThreshold {
				converged = false
				break
			}
		}

		if converged {
			break
		}

		if attempt+1 < d.maxAttempts {
			log.Printf("# Extending run: R-hat above %g, "+
				"running %d transitional steps", gelmanRubinThreshold, d.nSteps/5)
			d.sampler.Step(d.nSteps/5, false, 1, 1.0, nil)
			d.sampler.Clear()
		}
	}

	states, lnP := d.sampler.Recorded()
	for i := range states {
		if err := sink.Append(states[i], lnP[i]); err != nil {
			log.Printf("# chain sink append failed: %v", err)
		}
	}

	elapsed := time.Since(start)
	if converged {
		log.Printf("# Converged on attempt %d in %s", attempt, elapsed)
	} else {
		log.Printf("# WARNING: failed to converge after %d attempts (%s)",
			d.maxAttempts, elapsed)
	}
	if logging.Mode == logging.Performance || logging.Mode == logging.Debug {
		log.Printf("# %s", logging.MemString())
	}

	if err := sink.Save(path, group, label, converged, rHat); err != nil {
		log.Printf("# chain sink save failed: %v", err)
	}

	if logging.Mode == logging.Debug && len(states) > 0 {
		log.Printf("# profile smoothness: %g", profileSmoothness(states))
	}

	attempts := attempt + 1
	if !converged {
		attempts = d.maxAttempts
	}

	return ChainRecord{
		States:    states,
		LnProb:    lnP,
		Converged: converged,
		RHat:      append([]float64(nil), rHat...),
		Attempts:  attempts,
		Elapsed:   elapsed,
	}
}

// profileSmoothness reports a mean-squared-derivative diagnostic of the recorded
// chain's mean reddening profile: the mean profile is Savitzky-Golay
// smoothed, then differentiated, to catch a profile mean that is jagged
// across distance regions (a sign the chain hasn't mixed).
func profileSmoothness(states [][]float64) float64 {
	d := len(states[0])
	if d < 5 {
		// NewSavGolKernel needs enough points for its default window;
		// below that, smoothness isn't a meaningful diagnostic.
		return 0
	}

	mean := make([]float64, d)
	for _, e := range states {
		for i, v := range e {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= float64(len(states))
	}

	kernel := interpolate.NewSavGolKernel(2, 5)
	smoothed := kernel.Convolve(mean, interpolate.Extension)

	xs := make([]float64, d)
	for i := range xs {
		xs[i] = float64(i)
	}
	deriv := calc.Deriv(xs, smoothed, 2)

	sumSq := 0.0
	for _, v := range deriv {
		sumSq += v * v
	}
	return sumSq / float64(len(deriv))
}

// burnIn runs the fixed discard schedule and clears the chain afterward.
func (d *SamplerDriver) burnIn() {
	log.Printf("# Burn-in: %d steps", d.nSteps)
	for i, frac := range burnInFractions {
		steps := int(frac * float64(d.nSteps))
		if steps == 0 {
			continue
		}
		d.sampler.Step(steps, false, 1, burnInBandwidths[i], nil)
	}
	d.sampler.Clear()
}
