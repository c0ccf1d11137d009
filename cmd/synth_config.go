package cmd

import (
	"github.com/albertlee-physics/bayestar/parse"
)

// SynthConfig holds the config-file-backed knobs for the `synth`
// subcommand.
type SynthConfig struct {
	NStars   int64
	RV       float64
	DMMin    float64
	DMMax    float64
	ScaleH   float64
	HaloFrac float64
	MagLimit float64
	Seed     int64
	OutPath  string
	EBVModel string // "chisquared" or "step"

	vars *parse.ConfigVars
}

// NewSynthConfig returns a SynthConfig populated with defaults.
func NewSynthConfig() *SynthConfig {
	c := &SynthConfig{}
	vars := parse.NewConfigVars("synth")
	vars.Int(&c.NStars, "NStars", 1000)
	vars.Float(&c.RV, "RV", 3.1)
	vars.Float(&c.DMMin, "DMMin", 10)
	vars.Float(&c.DMMax, "DMMax", 18)
	vars.Float(&c.ScaleH, "ScaleH", 3)
	vars.Float(&c.HaloFrac, "HaloFrac", 0.05)
	vars.Float(&c.MagLimit, "MagLimit", 22)
	vars.Int(&c.Seed, "Seed", 0)
	vars.String(&c.OutPath, "OutPath", "synth.gob")
	vars.String(&c.EBVModel, "EBVModel", "chisquared")
	c.vars = vars
	return c
}

// Load overrides the defaults from a config file. A blank path is a no-op.
func (c *SynthConfig) Load(path string) error {
	if path == "" {
		return nil
	}
	return parse.ReadConfig(path, c.vars)
}
