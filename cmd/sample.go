package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/albertlee-physics/bayestar/los"
	"github.com/albertlee-physics/bayestar/los/geom"
)

var sampleConfigPath string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Run the ensemble sampler over a stack of per-star surfaces",
	Args:  cobra.ExactArgs(0),
	RunE:  runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleConfigPath, "config", "",
		"path to an INI-style config file overriding the defaults")
}

// runSample builds an EnsembleSampler and SamplerDriver from config and
// runs the fixed burn-in/main-run schedule.
//
// The image stack itself is expected to have been populated by an
// external loader before this command runs; wiring that loader is left to
// the caller, matching how the sampler treats the stack as an
// already-populated collaborator.
func runSample(cmd *cobra.Command, args []string) error {
	cfg := NewSampleConfig()
	if err := cfg.Load(sampleConfigPath); err != nil {
		return fmt.Errorf("bayestar sample: %w", err)
	}

	rect := geom.NewRect2D(
		[2]float64{0, cfg.MinY},
		[2]float64{cfg.MaxX, cfg.MaxY},
		[2]int{int(cfg.NBinsX), int(cfg.NBinsY)},
	)

	stack := los.NewImgStackWithRect(0, rect)
	params := los.NewLOSParams(stack, cfg.P0, cfg.EBVMax)
	posterior := los.NewLosPosterior(params)

	w := int(cfg.SamplersPerDim) * (int(cfg.NRegions) + 1)
	sampler := los.NewEnsembleSampler(
		posterior, w, int(cfg.NRegions), int(cfg.NThreads), uint64(cfg.Seed),
	)

	driver := los.NewSamplerDriver(sampler, int(cfg.NRegions), int(cfg.NSteps))
	driver.SetMaxAttempts(int(cfg.MaxAttempts))

	sink := los.NewGobSink()
	record := driver.Run(sink, cfg.OutPath, cfg.Group, cfg.Label)

	fmt.Printf("converged=%v attempts=%d elapsed=%s\n",
		record.Converged, record.Attempts, record.Elapsed)
	return nil
}
