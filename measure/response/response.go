package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Errors returned by the response analyzer.
var (
	ErrNilProcessor = errors.New("response: processor is nil")
	ErrInvalidSize  = errors.New("response: FFT size must be a power of two >= 2")
)

// Processor filters one sample at a time.
type Processor interface {
	ProcessSample(x float64) float64
}

// ProcessorFunc adapts a plain function to [Processor].
type ProcessorFunc func(x float64) float64

// ProcessSample calls f(x).
func (f ProcessorFunc) ProcessSample(x float64) float64 { return f(x) }

// Result holds a measured response over the non-negative frequency bins
// [0, Nyquist].
type Result struct {
	Frequencies []float64 // bin center frequencies in Hz
	Magnitude   []float64 // linear magnitude
	MagnitudeDB []float64 // 20*log10 magnitude
	Phase       []float64 // radians in (-pi, pi]
	Impulse     []float64 // captured impulse response, FFT length
}

// Bin returns the index of the bin closest to freqHz, clamped to the
// available range.
func (r Result) Bin(freqHz float64) int {
	n := len(r.Frequencies)
	if n < 2 {
		return 0
	}

	step := r.Frequencies[1] - r.Frequencies[0]
	k := int(math.Round(freqHz / step))

	return max(0, min(k, n-1))
}

// Analyzer measures responses with a fixed FFT size and sample rate.
// The FFT size is taken from the configured block size.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	cfg  core.ProcessorConfig
	plan *algofft.Plan[complex128]

	// Scratch buffers
	in  []complex128
	out []complex128
	re  []float64
	im  []float64
}

// NewAnalyzer creates an analyzer. Use core.WithBlockSize to choose the FFT
// size (default 1024) and core.WithSampleRate for bin frequencies.
func NewAnalyzer(opts ...core.ProcessorOption) (*Analyzer, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.BlockSize
	if n < 2 || !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	return &Analyzer{
		cfg:  cfg,
		plan: plan,
		in:   make([]complex128, n),
		out:  make([]complex128, n),
		re:   make([]float64, n/2+1),
		im:   make([]float64, n/2+1),
	}, nil
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() core.ProcessorConfig {
	return a.cfg
}

// Impulse feeds a unit impulse followed by n-1 zeros through p and returns
// the n output samples.
func Impulse(p Processor, n int) ([]float64, error) {
	if p == nil {
		return nil, ErrNilProcessor
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	ir := make([]float64, n)
	for i := range ir {
		x := 0.0
		if i == 0 {
			x = 1
		}
		ir[i] = p.ProcessSample(x)
	}

	return ir, nil
}

// Analyze measures the response of p. If p has a Reset method it is called
// before the impulse is applied and again afterwards.
func (a *Analyzer) Analyze(p Processor) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProcessor
	}

	resetter, canReset := p.(interface{ Reset() })
	if canReset {
		resetter.Reset()
		defer resetter.Reset()
	}

	n := a.cfg.BlockSize

	ir, err := Impulse(p, n)
	if err != nil {
		return Result{}, err
	}

	for i, v := range ir {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return Result{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	res := Result{
		Frequencies: make([]float64, bins),
		Magnitude:   make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
		Phase:       make([]float64, bins),
		Impulse:     ir,
	}

	binHz := a.cfg.SampleRate / float64(n)
	for k := range bins {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
		res.Frequencies[k] = float64(k) * binHz
		res.Phase[k] = math.Atan2(a.im[k], a.re[k])
	}

	vecmath.Magnitude(res.Magnitude, a.re, a.im)

	for k, m := range res.Magnitude {
		res.MagnitudeDB[k] = core.LinearToDB(m)
	}

	return res, nil
}

// Energy returns the energy of the measured impulse response computed in
// the frequency domain (Parseval), i.e. sum |H[k]|^2 / N over all N bins.
func (a *Analyzer) Energy(p Processor) (float64, error) {
	if _, err := a.Analyze(p); err != nil {
		return 0, err
	}

	n := a.cfg.BlockSize
	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range a.out {
		re[i] = real(c)
		im[i] = imag(c)
	}

	power := make([]float64, n)
	vecmath.Power(power, re, im)

	var sum float64
	for _, v := range power {
		sum += v
	}

	return sum / float64(n), nil
}
