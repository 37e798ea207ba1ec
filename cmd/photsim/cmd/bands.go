package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-photometry/phot/bandpass"
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "List the filters in the built-in catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := bandpass.Default.Names()
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSUPPORT [A]\tZERO POINT [photons/s/cm^2]")

		for _, name := range names {
			f := bandpass.Default.Lookup(name)
			lo, hi := f.Support()
			fmt.Fprintf(w, "%s\t%.0f - %.0f\t%.4e\n", name, lo, hi, f.ZeroPointFlux())
		}

		return w.Flush()
	},
}
