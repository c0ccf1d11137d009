package los

import (
	"math"

	"github.com/albertlee-physics/bayestar/math/rand"
	"github.com/albertlee-physics/bayestar/math/sort"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// walker holds one ensemble member's current state and cached
// log-posterior.
type walker struct {
	e   []float64
	lnP float64
	gen *rand.Generator
}

// EnsembleSampler runs affine-invariant ensemble MCMC (Goodman-Weare
// stretch moves plus Gaussian replacement moves) over a LosPosterior, with
// the ensemble split into two halves updated in fork-join fashion across a
// worker pool.
type EnsembleSampler struct {
	post     *LosPosterior
	nRegions int
	d        int

	a, b []walker

	nThreads int

	scale       float64 // stretch-move a, default 1.1
	bandwidth   float64 // replacement_bandwidth b, default 0.75

	// recorded holds the chain appended during the recording phase, in
	// deterministic driver-thread order: all of half A then all of half
	// B, per step.
	recorded   [][]float64
	recordedLn []float64

	// chains[k] holds, per walker k (A followed by B), the recorded
	// state history used for Gelman-Rubin bookkeeping.
	chains [][][]float64
}

// NewEnsembleSampler builds a sampler over post with w walkers (must be
// even and >= 2) inferring a profile of nRegions+1 dimensions, using up to
// nThreads goroutines per half-update. Walker RNGs are seeded
// independently and are never shared across goroutines.
func NewEnsembleSampler(
	post *LosPosterior, w, nRegions, nThreads int, seed uint64,
) *EnsembleSampler {
	if w < 2 || w%2 != 0 {
		panic("EnsembleSampler: W must be even and at least 2.")
	}
	if nThreads < 1 {
		nThreads = 1
	}

	s := &EnsembleSampler{
		post:      post,
		nRegions:  nRegions,
		d:         nRegions + 1,
		a:         make([]walker, w/2),
		b:         make([]walker, w/2),
		nThreads:  nThreads,
		scale:     1.1,
		bandwidth: 0.75,
		chains:    make([][][]float64, w),
	}

	for i := range s.a {
		s.a[i].gen = rand.New(rand.Xorshift, seed+uint64(i)*2+1)
		s.a[i].e = make([]float64, s.d)
		post.GenState(s.a[i].e, s.a[i].gen)
		s.a[i].lnP = post.LnP(s.a[i].e, nRegions)
	}
	for i := range s.b {
		s.b[i].gen = rand.New(rand.Xorshift, seed+uint64(i)*2+2)
		s.b[i].e = make([]float64, s.d)
		post.GenState(s.b[i].e, s.b[i].gen)
		s.b[i].lnP = post.LnP(s.b[i].e, nRegions)
	}

	return s
}

// SetScale overrides the stretch-move parameter a (default 1.1).
func (s *EnsembleSampler) SetScale(a float64) { s.scale = a }

// SetBandwidth overrides the stretch-move probability b (default 0.75);
// a replacement move is made with probability 1-b.
func (s *EnsembleSampler) SetBandwidth(b float64) { s.bandwidth = b }

// Clear empties the recorded chain (both the persistence-order chain and
// the per-walker GR chains). Walker states are untouched.
func (s *EnsembleSampler) Clear() {
	s.recorded = nil
	s.recordedLn = nil
	s.chains = make([][][]float64, len(s.a)+len(s.b))
}

// Step advances the ensemble by nSteps full steps (update A using B, then
// B using A). If record is true, every post-update walker state is
// appended to the chain with its log-posterior. temperature multiplies
// the log-posterior difference used in the acceptance ratio; 0 is treated
// as 1. bOverride, if >= 0, overrides the configured replacement
// bandwidth for these steps only. The final argument is reserved for
// future per-step metadata and is currently unused.
func (s *EnsembleSampler) Step(
	nSteps int, record bool, temperature, bOverride float64, _ interface{},
) {
	if temperature == 0 {
		temperature = 1
	}
	bw := s.bandwidth
	if bOverride >= 0 {
		bw = bOverride
	}

	for step := 0; step < nSteps; step++ {
		s.updateHalf(s.a, s.b, temperature, bw)
		s.updateHalf(s.b, s.a, temperature, bw)

		if record {
			s.recordStep()
		}
	}
}

// updateHalf updates every walker in half using peers drawn from
// opposite, dispatching across the worker pool and joining before
// returning.
func (s *EnsembleSampler) updateHalf(half, opposite []walker, temperature, bw float64) {
	n := len(half)
	nThreads := s.nThreads
	if nThreads > n {
		nThreads = n
	}

	chunk := (n + nThreads - 1) / nThreads
	done := make(chan int, nThreads)
	nDispatched := 0

	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		nDispatched++
		go func(lo, hi int) {
			for k := lo; k < hi; k++ {
				s.updateWalker(&half[k], opposite, temperature, bw)
			}
			done <- 1
		}(start, end)
	}

	for i := 0; i < nDispatched; i++ {
		<-done
	}
}

// updateWalker performs a single stretch-or-replacement update of walker
// w, using opposite as the peer half.
func (s *EnsembleSampler) updateWalker(w *walker, opposite []walker, temperature, bw float64) {
	gen := w.gen

	if gen.Uniform(0, 1) < bw {
		s.stretchMove(w, opposite, temperature)
	} else {
		s.replacementMove(w, opposite, temperature)
	}
}

// stretchMove performs the Goodman-Weare stretch-move update of w against
// a uniformly chosen peer in opposite.
func (s *EnsembleSampler) stretchMove(w *walker, opposite []walker, temperature float64) {
	gen := w.gen
	peer := &opposite[gen.UniformInt(0, len(opposite))]

	z := goodmanWeareZ(gen, s.scale)

	eProp := make([]float64, s.d)
	for i := range eProp {
		eProp[i] = peer.e[i] + z*(w.e[i]-peer.e[i])
	}

	lnPProp := s.post.LnP(eProp, s.nRegions)
	logAlpha := float64(s.d-1)*math.Log(z) + (lnPProp-w.lnP)*temperature

	if math.Log(gen.Uniform(0, 1)) < logAlpha {
		w.e = eProp
		w.lnP = lnPProp
	}
}

// goodmanWeareZ draws z from g(z) = 1/sqrt(z) on [1/a, a] via inverse CDF:
// CDF(z) = (sqrt(z) - sqrt(1/a)) / (sqrt(a) - sqrt(1/a)).
func goodmanWeareZ(gen *rand.Generator, a float64) float64 {
	lo, hi := math.Sqrt(1/a), math.Sqrt(a)
	u := gen.Uniform(0, 1)
	root := lo + u*(hi-lo)
	return root * root
}

// replacementMove performs the replacement (parallel) move: a Gaussian
// proposal centered on a peer drawn from opposite, scaled per-dimension by
// the robust (MAD-based) spread of opposite from replacementScale, with
// symmetric-proposal Metropolis acceptance.
func (s *EnsembleSampler) replacementMove(w *walker, opposite []walker, temperature float64) {
	gen := w.gen
	peer := &opposite[gen.UniformInt(0, len(opposite))]

	sigma := replacementScale(opposite, s.d)

	eProp := make([]float64, s.d)
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for i := range eProp {
		eProp[i] = peer.e[i] + sigma[i]*norm.Quantile(gen.Uniform(0, 1))
	}

	lnPProp := s.post.LnP(eProp, s.nRegions)
	logAlpha := (lnPProp - w.lnP) * temperature

	if math.Log(gen.Uniform(0, 1)) < logAlpha {
		w.e = eProp
		w.lnP = lnPProp
	}
}

// replacementScale returns, per dimension, the robust (median-based)
// standard deviation of half across its walkers.
func replacementScale(half []walker, d int) []float64 {
	sigma := make([]float64, d)
	col := make([]float64, len(half))
	for dim := 0; dim < d; dim++ {
		for k, w := range half {
			col[k] = w.e[dim]
		}
		med := sort.Median(col)
		absDev := make([]float64, len(col))
		for k, v := range col {
			absDev[k] = math.Abs(v - med)
		}
		mad := sort.Median(absDev)
		// 1.4826 converts MAD to a consistent estimator of sigma for a
		// normal distribution.
		sigma[dim] = 1.4826*mad + 1e-12
	}
	return sigma
}

// recordStep appends every walker's current state to the persisted chain
// and to each walker's own GR history.
func (s *EnsembleSampler) recordStep() {
	for _, w := range s.a {
		s.recorded = append(s.recorded, append([]float64(nil), w.e...))
		s.recordedLn = append(s.recordedLn, w.lnP)
	}
	for _, w := range s.b {
		s.recorded = append(s.recorded, append([]float64(nil), w.e...))
		s.recordedLn = append(s.recordedLn, w.lnP)
	}

	k := 0
	for _, w := range s.a {
		s.chains[k] = append(s.chains[k], append([]float64(nil), w.e...))
		k++
	}
	for _, w := range s.b {
		s.chains[k] = append(s.chains[k], append([]float64(nil), w.e...))
		k++
	}
}

// Recorded returns the chain recorded so far, in deterministic
// driver-thread order.
func (s *EnsembleSampler) Recorded() ([][]float64, []float64) {
	return s.recorded, s.recordedLn
}

// GelmanRubin computes the per-dimension R-hat statistic across every
// walker's recorded chain and writes it to out (length D). Panics if no
// steps have been recorded since the last Clear.
func (s *EnsembleSampler) GelmanRubin(out []float64) {
	m := len(s.chains)
	if m == 0 || len(s.chains[0]) == 0 {
		panic("EnsembleSampler.GelmanRubin: no recorded samples.")
	}
	n := len(s.chains[0])

	for dim := 0; dim < s.d; dim++ {
		chainMat := mat.NewDense(m, n, nil)
		for k := 0; k < m; k++ {
			for i := 0; i < n; i++ {
				chainMat.Set(k, i, s.chains[k][i][dim])
			}
		}
		out[dim] = gelmanRubinDim(chainMat, m, n)
	}
}

// gelmanRubinDim computes R-hat for a single dimension given an (m x n)
// matrix of per-chain recorded samples.
func gelmanRubinDim(chainMat *mat.Dense, m, n int) float64 {
	chainMeans := make([]float64, m)
	grandMean := 0.0
	for k := 0; k < m; k++ {
		row := mat.Row(nil, k, chainMat)
		mean := meanOf(row)
		chainMeans[k] = mean
		grandMean += mean
	}
	grandMean /= float64(m)

	between := 0.0
	for _, cm := range chainMeans {
		d := cm - grandMean
		between += d * d
	}
	between *= float64(n) / float64(m-1)

	within := 0.0
	for k := 0; k < m; k++ {
		row := mat.Row(nil, k, chainMat)
		mean := chainMeans[k]
		s2 := 0.0
		for _, v := range row {
			d := v - mean
			s2 += d * d
		}
		if n > 1 {
			s2 /= float64(n - 1)
		}
		within += s2
	}
	within /= float64(m)

	varHat := ((float64(n)-1)/float64(n))*within + between/float64(n)
	if within == 0 {
		return 1
	}
	return math.Sqrt(varHat / within)
}

func meanOf(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
