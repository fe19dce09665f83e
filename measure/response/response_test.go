package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/core"
	"github.com/cwbudde/algo-iir/dsp/filter/allpass"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

func mustAnalyzer(t *testing.T, opts ...core.ProcessorOption) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(opts...)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return a
}

func TestAnalyzeIdentity(t *testing.T) {
	a := mustAnalyzer(t, core.WithBlockSize(64), core.WithSampleRate(64))
	f, err := iir.New([]float64{1}, []float64{1})
	if err != nil {
		t.Fatalf("iir.New() error = %v", err)
	}

	res, err := a.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if len(res.Magnitude) != 33 || len(res.Impulse) != 64 {
		t.Fatalf("bins = %d, impulse = %d, want 33 and 64", len(res.Magnitude), len(res.Impulse))
	}
	for k := range res.Magnitude {
		if math.Abs(res.Magnitude[k]-1) > 1e-12 || math.Abs(res.Phase[k]) > 1e-12 {
			t.Fatalf("bin %d: |H| = %v, phase = %v, want 1 and 0", k, res.Magnitude[k], res.Phase[k])
		}
		if res.Frequencies[k] != float64(k) {
			t.Fatalf("bin %d: frequency = %v, want %v", k, res.Frequencies[k], float64(k))
		}
	}
}

func TestAnalyzePureDelayPhase(t *testing.T) {
	const n = 32
	a := mustAnalyzer(t, core.WithBlockSize(n))
	f, err := iir.New([]float64{0, 1}, []float64{1})
	if err != nil {
		t.Fatalf("iir.New() error = %v", err)
	}

	res, err := a.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for k := 0; k < n/2; k++ {
		want := -2 * math.Pi * float64(k) / n
		if math.Abs(res.Phase[k]-want) > 1e-12 {
			t.Fatalf("bin %d: phase = %v, want %v", k, res.Phase[k], want)
		}
	}
}

func TestAnalyzeMatchesAnalyticResponse(t *testing.T) {
	const fs = 48000.0
	w0 := 2 * math.Pi * 1000 / fs
	alpha := math.Sin(w0) / (2 * 0.707)
	cw := math.Cos(w0)
	f, err := iir.New(
		[]float64{(1 - cw) / 2, 1 - cw, (1 - cw) / 2},
		[]float64{1 + alpha, -2 * cw, 1 - alpha},
	)
	if err != nil {
		t.Fatalf("iir.New() error = %v", err)
	}

	a := mustAnalyzer(t, core.WithBlockSize(4096), core.WithSampleRate(fs))
	res, err := a.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for k, freq := range res.Frequencies {
		want := cmplx.Abs(f.Response(freq, fs))
		if math.Abs(res.Magnitude[k]-want) > 1e-9 {
			t.Fatalf("bin %d (%.1f Hz): |H| = %v, analytic %v", k, freq, res.Magnitude[k], want)
		}
	}

	if db := res.MagnitudeDB[res.Bin(20000)]; db > -40 {
		t.Fatalf("stopband at 20 kHz = %.2f dB, want < -40 dB", db)
	}
}

func TestAnalyzeQuadraturePathsAreAllPass(t *testing.T) {
	d1, d2, err := allpass.QuadraturePreset(allpass.PresetFast)
	if err != nil {
		t.Fatalf("QuadraturePreset() error = %v", err)
	}
	c, err := iir.NewCoupledAllPass(d1, d2)
	if err != nil {
		t.Fatalf("NewCoupledAllPass() error = %v", err)
	}

	a := mustAnalyzer(t, core.WithBlockSize(4096))
	for p, h := range []*iir.Filter[float64]{c.H1(), c.H2()} {
		res, err := a.Analyze(h)
		if err != nil {
			t.Fatalf("path %d: Analyze() error = %v", p+1, err)
		}
		for k, m := range res.Magnitude {
			if math.Abs(m-1) > 1e-9 {
				t.Fatalf("path %d bin %d: |H| = %v, want 1", p+1, k, m)
			}
		}

		energy, err := a.Energy(h)
		if err != nil {
			t.Fatalf("path %d: Energy() error = %v", p+1, err)
		}
		if math.Abs(energy-1) > 1e-9 {
			t.Fatalf("path %d: energy = %v, want 1", p+1, energy)
		}
	}
}

func TestAnalyzeResetsProcessor(t *testing.T) {
	f, err := iir.New([]float64{0, 1}, []float64{1})
	if err != nil {
		t.Fatalf("iir.New() error = %v", err)
	}
	f.ProcessSample(5)

	a := mustAnalyzer(t, core.WithBlockSize(8))
	res, err := a.Analyze(f)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Impulse[0] != 0 || res.Impulse[1] != 1 {
		t.Fatalf("impulse = %v, stale state leaked into the measurement", res.Impulse)
	}
	if f.Filtered() != 0 {
		t.Fatalf("Filtered() after Analyze = %v, want 0 (reset)", f.Filtered())
	}
}

func TestProcessorFunc(t *testing.T) {
	gain := ProcessorFunc(func(x float64) float64 { return 0.5 * x })

	ir, err := Impulse(gain, 4)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	if ir[0] != 0.5 || ir[1] != 0 || ir[3] != 0 {
		t.Fatalf("impulse = %v, want [0.5 0 0 0]", ir)
	}

	res, err := mustAnalyzer(t, core.WithBlockSize(16)).Analyze(gain)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if db := res.MagnitudeDB[3]; math.Abs(db-core.LinearToDB(0.5)) > 1e-12 {
		t.Fatalf("MagnitudeDB = %v, want %v", db, core.LinearToDB(0.5))
	}
}

func TestResultBin(t *testing.T) {
	res, err := mustAnalyzer(t, core.WithBlockSize(8), core.WithSampleRate(800)).Analyze(ProcessorFunc(func(x float64) float64 { return x }))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	tests := []struct {
		freq float64
		want int
	}{
		{freq: -50, want: 0},
		{freq: 0, want: 0},
		{freq: 140, want: 1},
		{freq: 260, want: 3},
		{freq: 10000, want: 4},
	}
	for _, tt := range tests {
		if got := res.Bin(tt.freq); got != tt.want {
			t.Errorf("Bin(%v) = %d, want %d", tt.freq, got, tt.want)
		}
	}

	if (Result{}).Bin(100) != 0 {
		t.Fatal("empty result should map to bin 0")
	}
}

func TestAnalyzerErrors(t *testing.T) {
	for _, size := range []int{1, 3, 1000} {
		if _, err := NewAnalyzer(core.WithBlockSize(size)); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %d: NewAnalyzer() error = %v, want ErrInvalidSize", size, err)
		}
	}

	a := mustAnalyzer(t)
	if got := a.Config(); got != core.DefaultProcessorConfig() {
		t.Fatalf("Config() = %+v, want defaults", got)
	}
	if _, err := a.Analyze(nil); !errors.Is(err, ErrNilProcessor) {
		t.Fatalf("Analyze(nil) error = %v, want ErrNilProcessor", err)
	}
	if _, err := a.Energy(nil); !errors.Is(err, ErrNilProcessor) {
		t.Fatalf("Energy(nil) error = %v, want ErrNilProcessor", err)
	}
	if _, err := Impulse(ProcessorFunc(func(x float64) float64 { return x }), -1); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Impulse(-1) error = %v, want ErrInvalidSize", err)
	}
}
