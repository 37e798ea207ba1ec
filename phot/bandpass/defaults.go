package bandpass

// Default is a self-contained demonstration catalog with six broadband
// optical filters. The transmission curves are trapezoids with soft edges,
// not survey-calibrated throughputs; production users should register
// measured curves instead.
var Default = defaultRegistry()

func defaultRegistry() *Registry {
	r := NewRegistry()
	for _, d := range []struct {
		name               string
		rise, lo, hi, fall float64
		peak               float64
	}{
		{"u", 3200, 3400, 3900, 4100, 0.45},
		{"g", 4000, 4300, 5300, 5600, 0.62},
		{"r", 5500, 5700, 6800, 7000, 0.68},
		{"i", 6900, 7100, 8100, 8300, 0.60},
		{"z", 8200, 8400, 9300, 9500, 0.48},
		{"y", 9400, 9600, 10600, 10800, 0.32},
	} {
		f, err := Sampled(d.name,
			[]float64{d.rise, d.lo, d.hi, d.fall},
			[]float64{0, d.peak, d.peak, 0})
		if err != nil {
			panic("bandpass defaults: " + err.Error())
		}
		r.MustRegister(f)
	}

	return r
}
