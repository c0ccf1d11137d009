package cmd

import (
	"github.com/albertlee-physics/bayestar/parse"
)

// SampleConfig holds the config-file-backed knobs for the `sample`
// subcommand: every field has a default and may be overridden by a
// config file passed with --config.
type SampleConfig struct {
	NRegions       int64
	NBinsX         int64
	NBinsY         int64
	MinY           float64
	MaxY           float64
	MaxX           float64
	P0             float64
	EBVMax         float64
	NSteps         int64
	SamplersPerDim int64
	NThreads       int64
	MaxAttempts    int64
	Seed           int64
	OutPath        string
	Group          string
	Label          string

	vars *parse.ConfigVars
}

// NewSampleConfig returns a SampleConfig populated with defaults.
func NewSampleConfig() *SampleConfig {
	c := &SampleConfig{}
	vars := parse.NewConfigVars("sample")
	vars.Int(&c.NRegions, "NRegions", 8)
	vars.Int(&c.NBinsX, "NBinsX", 64)
	vars.Int(&c.NBinsY, "NBinsY", 64)
	vars.Float(&c.MinY, "MinY", 0)
	vars.Float(&c.MaxY, "MaxY", 5)
	vars.Float(&c.MaxX, "MaxX", 20)
	vars.Float(&c.P0, "P0", 1e-6)
	vars.Float(&c.EBVMax, "EBVMax", 0)
	vars.Int(&c.NSteps, "NSteps", 4000)
	vars.Int(&c.SamplersPerDim, "SamplersPerDim", 8)
	vars.Int(&c.NThreads, "NThreads", 4)
	vars.Int(&c.MaxAttempts, "MaxAttempts", 3)
	vars.Int(&c.Seed, "Seed", 0)
	vars.String(&c.OutPath, "OutPath", "chain.gob")
	vars.String(&c.Group, "Group", "los")
	vars.String(&c.Label, "Label", "los")
	c.vars = vars
	return c
}

// Load overrides the defaults from a config file. A blank path is a no-op,
// since --config is optional.
func (c *SampleConfig) Load(path string) error {
	if path == "" {
		return nil
	}
	return parse.ReadConfig(path, c.vars)
}
