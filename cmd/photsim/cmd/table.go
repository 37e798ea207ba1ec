package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-photometry/phot/bandpass"
	"github.com/cwbudde/algo-photometry/phot/bandweight"
	"github.com/cwbudde/algo-photometry/phot/grid"
)

var tableOpts struct {
	band         string
	waveMin      float64
	waveMax      float64
	waveBins     int
	oversampling int
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print a filter's integration weight vector",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grid.New(tableOpts.waveMin, tableOpts.waveMax, tableOpts.waveBins)
		if err != nil {
			return err
		}

		table, err := bandweight.New(g, bandpass.Default,
			[]string{tableOpts.band}, tableOpts.oversampling)
		if err != nil {
			return err
		}

		logger.Debug("weight table built",
			zap.String("band", tableOpts.band),
			zap.Int("oversampling", tableOpts.oversampling),
			zap.Int("points", len(table.Wavelengths())))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WAVELENGTH [A]\tWEIGHT")

		weights := table.Weights(0)
		for i, wave := range table.Wavelengths() {
			fmt.Fprintf(w, "%.2f\t%.6e\n", wave, weights[i])
		}

		return w.Flush()
	},
}

func init() {
	tableCmd.Flags().StringVar(&tableOpts.band, "band", "r", "filter name")
	tableCmd.Flags().Float64Var(&tableOpts.waveMin, "wave-min", 3000, "grid lower bound in Angstrom")
	tableCmd.Flags().Float64Var(&tableOpts.waveMax, "wave-max", 11000, "grid upper bound in Angstrom")
	tableCmd.Flags().IntVar(&tableOpts.waveBins, "wave-bins", 81, "number of grid points")
	tableCmd.Flags().IntVar(&tableOpts.oversampling, "oversampling", 5, "odd oversampling factor")
}
