package iir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz) from the normalized coefficients.
// It returns 0 for an uninitialized filter.
func (f *Filter[F]) Response(freqHz, sampleRate float64) complex128 {
	if !f.Initialized() {
		return 0
	}

	w := 2 * math.Pi * freqHz / sampleRate

	return polyval(f.num, w) / polyval(f.den, w)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[F]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians, in (-pi, pi].
func (f *Filter[F]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(f.Response(freqHz, sampleRate))
}

// polyval evaluates sum_k c[k] * e^{-jwk}.
func polyval[F core.Float](c []F, w float64) complex128 {
	var h complex128
	for k, v := range c {
		h += complex(float64(v), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}
