// Package cmd provides the CLI commands for photsim.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-photometry/internal/logging"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "photsim",
	Short: "Synthesize broadband photometry from spectra",
	Long: `photsim maps spectral energy distributions onto the AB magnitudes an
instrument would measure through named optical filters.

It precomputes per-filter integration weights once and applies a
redshift-aware weighted sum per spectrum.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.DefaultConfig()
		if verbose {
			cfg.Level = "debug"
		}

		var err error
		logger, err = logging.New(cfg)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "photsim:", err)
	}

	if logger != nil {
		_ = logger.Sync()
	}

	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(bandsCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(simulateCmd)
}
