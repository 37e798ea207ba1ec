package photometry_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-photometry/phot/bandpass"
	"github.com/cwbudde/algo-photometry/phot/bandweight"
	"github.com/cwbudde/algo-photometry/phot/grid"
	"github.com/cwbudde/algo-photometry/phot/photometry"
	"github.com/cwbudde/algo-photometry/phot/units"
)

func ExampleEngine_Forward() {
	g, err := grid.New(3000, 11000, 801)
	if err != nil {
		panic(err)
	}

	table, err := bandweight.New(g, bandpass.Default, []string{"g", "r", "i"}, 3)
	if err != nil {
		panic(err)
	}

	engine, err := photometry.New(g, units.FluxDensity, table)
	if err != nil {
		panic(err)
	}

	// One flat flux-density spectrum at two redshifts.
	sed := make([]float64, g.Bins())
	for i := range sed {
		sed[i] = 1e-17
	}

	result, err := engine.Forward(
		[][]float64{sed, sed},
		[]float64{1.0, 1.0},
		[]float64{0.0, 0.3},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println("bands:", result.Bands)
	fmt.Println("spectra:", result.Len())
	for i := 0; i < result.Len(); i++ {
		for b := range result.Bands {
			if math.IsInf(result.At(i, b), 0) || math.IsNaN(result.At(i, b)) {
				fmt.Println("non-finite magnitude")
			}
		}
	}
	fmt.Println("all magnitudes finite")

	// Output:
	// bands: [g r i]
	// spectra: 2
	// all magnitudes finite
}
