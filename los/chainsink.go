package los

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"
)

// ChainSink is the storage collaborator a SamplerDriver persists recorded
// samples to. HDF5-backed implementations are left to the caller; Append
// and Save are the entire contract.
type ChainSink interface {
	Append(state []float64, lnP float64) error
	Save(path, group, label string, converged bool, rHat []float64) error
}

// NullSink panics on every call. It exists to catch accidental use of a
// sink in code paths that were never meant to persist anything, such as
// burn-in.
type NullSink struct{}

func (NullSink) Append(state []float64, lnP float64) error {
	panic("los: NullSink.Append called; burn-in and transitional steps " +
		"must not record to a sink.")
}

func (NullSink) Save(path, group, label string, converged bool, rHat []float64) error {
	panic("los: NullSink.Save called.")
}

// ChainRecord is what SamplerDriver.Run returns and what GobSink persists:
// the recorded states and log-posteriors, the convergence outcome, the
// final per-dimension Gelman-Rubin statistic, how many main-run attempts
// were used, and how long the run took. GobSink fills in only States,
// LnProb, Converged and RHat; Attempts and Elapsed are written as zero.
type ChainRecord struct {
	States    [][]float64
	LnProb    []float64
	Converged bool
	RHat      []float64
	Attempts  int
	Elapsed   time.Duration
}

// GobSink is a local ChainSink backed by encoding/gob, used by tests and
// the CLI's default file-based mode. It buffers Append calls in memory and
// writes everything out on Save.
type GobSink struct {
	record ChainRecord
}

// NewGobSink returns an empty GobSink.
func NewGobSink() *GobSink { return &GobSink{} }

func (g *GobSink) Append(state []float64, lnP float64) error {
	g.record.States = append(g.record.States, append([]float64(nil), state...))
	g.record.LnProb = append(g.record.LnProb, lnP)
	return nil
}

// Save writes the accumulated record to path as a gob-encoded ChainRecord.
// group and label are recorded for the caller's own bookkeeping but are
// not interpreted by GobSink, since a flat file has no internal grouping.
func (g *GobSink) Save(path, group, label string, converged bool, rHat []float64) error {
	g.record.Converged = converged
	g.record.RHat = append([]float64(nil), rHat...)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("los: GobSink.Save: %w", err)
	}
	defer f.Close()

	enc := gob.NewEncoder(f)
	if err := enc.Encode(g.record); err != nil {
		return fmt.Errorf("los: GobSink.Save: %w", err)
	}
	return nil
}

// Record returns the ChainRecord accumulated so far.
func (g *GobSink) Record() ChainRecord { return g.record }
