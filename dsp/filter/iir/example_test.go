package iir_test

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func ExampleFilter_ProcessSample() {
	// One-pole lowpass: y[n] = 0.5 x[n] + 0.5 y[n-1].
	f, err := iir.New([]float64{0.5}, []float64{1, -0.5})
	if err != nil {
		panic(err)
	}

	for i := range 4 {
		fmt.Printf("y[%d] = %.4f\n", i, f.ProcessSample(1))
	}
	// Output:
	// y[0] = 0.5000
	// y[1] = 0.7500
	// y[2] = 0.8750
	// y[3] = 0.9375
}

func ExampleFilter_Process() {
	// Unnormalized coefficients are divided by a[0].
	f, err := iir.New([]float32{0, 2}, []float32{2})
	if err != nil {
		panic(err)
	}

	in := []float32{1, 2, 3, 4}
	out := make([]float32, len(in))
	if err := f.Process(in, out, len(in)); err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [0 1 2 3]
}

func ExampleCoupledAllPass_ProcessSample() {
	c, err := iir.NewCoupledAllPass([]float64{1, -0.5}, []float64{1, 0})
	if err != nil {
		panic(err)
	}

	for _, x := range []float64{1, 0, 0} {
		pos, neg := c.ProcessSample(x)
		fmt.Printf("pos=%.4f neg=%.4f\n", pos, neg)
	}
	// Output:
	// pos=-0.2500 neg=-0.2500
	// pos=0.8750 neg=-0.1250
	// pos=0.1875 neg=0.1875
}

func ExampleStereoFilter_ProcessSample() {
	s, err := iir.NewStereoFilter([]float64{0, 1}, []float64{1})
	if err != nil {
		panic(err)
	}

	s.ProcessSample(1, -1)
	l, r := s.ProcessSample(0, 0)
	fmt.Println(l, r)
	// Output: 1 -1
}
