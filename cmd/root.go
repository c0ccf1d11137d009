/*Package cmd implements the bayestar command-line interface.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/albertlee-physics/bayestar/logging"
)

var logMode string

// RootCmd is the top-level bayestar command.
var RootCmd = &cobra.Command{
	Use:   "bayestar",
	Short: "Bayesian line-of-sight reddening inference",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logMode, "log", "nil",
		"logging mode: nil, performance, or debug")
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		switch logMode {
		case "performance":
			logging.Mode = logging.Performance
		case "debug":
			logging.Mode = logging.Debug
		default:
			logging.Mode = logging.Nil
		}
		return nil
	}

	RootCmd.AddCommand(sampleCmd)
	RootCmd.AddCommand(synthCmd)
}

// Execute runs the CLI, returning any error a subcommand produced.
func Execute() error {
	return RootCmd.Execute()
}
