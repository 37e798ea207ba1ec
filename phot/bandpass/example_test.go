package bandpass_test

import (
	"fmt"

	"github.com/cwbudde/algo-photometry/phot/bandpass"
)

func ExampleTopHat() {
	f, err := bandpass.TopHat("box", 5000, 7000, 1.0)
	if err != nil {
		panic(err)
	}

	resp := f.ResponseAt([]float64{4500, 5500, 6500, 7500})
	fmt.Println("response:", resp)

	lo, hi := f.Support()
	fmt.Printf("support: %.0f - %.0f\n", lo, hi)

	// Output:
	// response: [0 1 1 0]
	// support: 5000 - 7000
}

func ExampleRegistry() {
	r := bandpass.NewRegistry()

	f, err := bandpass.TopHat("narrow", 6500, 6600, 0.9)
	if err != nil {
		panic(err)
	}
	r.MustRegister(f)

	fmt.Println("registered:", r.Names())
	fmt.Println("lookup hit:", r.Lookup("narrow") != nil)
	fmt.Println("lookup miss:", r.Lookup("wide") == nil)

	// Output:
	// registered: [narrow]
	// lookup hit: true
	// lookup miss: true
}
