// Command photsim synthesizes broadband photometry from spectral energy
// distributions using the built-in filter catalog.
//
// Examples:
//
//	photsim bands
//	photsim table --band r --wave-min 3000 --wave-max 11000 --wave-bins 81
//	photsim simulate --bands g,r,i --redshifts 0,0.1,0.5
package main

import (
	"os"

	"github.com/cwbudde/algo-photometry/cmd/photsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
