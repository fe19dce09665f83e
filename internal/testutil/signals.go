// Package testutil holds deterministic test signals and tolerance assertions
// shared by the filter tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine[F core.Float](freqHz, sampleRate, amplitude float64, length int) []F {
	out := make([]F, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = F(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[F core.Float](seed int64, amplitude float64, length int) []F {
	out := make([]F, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = F((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[F core.Float](length, pos int) []F {
	out := make([]F, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// RMS returns the root-mean-square of x[skip:], or 0 if nothing is left.
func RMS[F core.Float](x []F, skip int) float64 {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(x) {
		return 0
	}

	var sum float64
	for _, v := range x[skip:] {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(x)-skip))
}

// NormalizedCorrelation returns <a,b>/(|a||b|) over a[skip:] and b[skip:].
// It is 0 for orthogonal (quadrature) signals and +-1 for (anti)parallel ones.
func NormalizedCorrelation[F core.Float](a, b []F, skip int) float64 {
	n := min(len(a), len(b))
	if skip < 0 {
		skip = 0
	}

	var ab, aa, bb float64
	for i := skip; i < n; i++ {
		x, y := float64(a[i]), float64(b[i])
		ab += x * y
		aa += x * x
		bb += y * y
	}
	if aa == 0 || bb == 0 {
		return 0
	}
	return ab / math.Sqrt(aa*bb)
}
