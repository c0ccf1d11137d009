package cmd

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/albertlee-physics/bayestar/math/rand"
	"github.com/albertlee-physics/bayestar/synth"
)

var synthConfigPath string

var synthCmd = &cobra.Command{
	Use:   "synth",
	Short: "Generate a synthetic catalog of detected stars",
	Args:  cobra.ExactArgs(0),
	RunE:  runSynth,
}

func init() {
	synthCmd.Flags().StringVar(&synthConfigPath, "config", "",
		"path to an INI-style config file overriding the defaults")
}

func runSynth(cmd *cobra.Command, args []string) error {
	cfg := NewSynthConfig()
	if err := cfg.Load(synthConfigPath); err != nil {
		return fmt.Errorf("bayestar synth: %w", err)
	}

	gen := rand.NewTimeSeed(rand.Xorshift)
	if cfg.Seed != 0 {
		gen = rand.New(rand.Xorshift, uint64(cfg.Seed))
	}

	prior := synth.ExponentialDiskPrior{
		DMMin:        cfg.DMMin,
		DMMax:        cfg.DMMax,
		ScaleHeight:  cfg.ScaleH,
		HaloFraction: cfg.HaloFrac,
	}
	stellar := synth.SimpleStellarModel{
		DiskMassLo: 0.3, DiskMassHi: 1.0,
		HaloMassLo: 0.3, HaloMassHi: 0.8,
	}
	var offsets [synth.NBands]float64
	var ratios [synth.NBands]float64
	for k := range offsets {
		offsets[k] = 4 + float64(k)*0.2
		ratios[k] = 1 - float64(k)*0.1
	}
	sed := synth.LinearSED{Slope: -2.5, Offsets: offsets}
	extinction := synth.FitzpatrickExtinction{ARatio: ratios}

	var magLimit [synth.NBands]float64
	for k := range magLimit {
		magLimit[k] = cfg.MagLimit
	}

	mode := synth.ChiSquaredEBV
	if cfg.EBVModel == "step" {
		mode = synth.EmpiricalStepEBV
	}

	data := synth.SyntheticDraw(
		gen, int(cfg.NStars), cfg.RV, prior, stellar, sed, extinction, magLimit, mode,
	)

	f, err := os.Create(cfg.OutPath)
	if err != nil {
		return fmt.Errorf("bayestar synth: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(data); err != nil {
		return fmt.Errorf("bayestar synth: %w", err)
	}

	fmt.Printf("wrote %d synthetic stars to %s\n", len(data.DM), cfg.OutPath)
	return nil
}
