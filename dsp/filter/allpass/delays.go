package allpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// DelayVectors expands half-pi section coefficients into the two delay
// vectors of a coupled all-pass pair:
//
//	d1 = prod_{k even} (1 - c_k z^-2)
//	d2 = prod_{k odd}  (1 - c_k z^-2), followed by one trailing zero
//
// Both vectors start with 1.
func DelayVectors(coeffs []float64) (d1, d2 []float64, err error) {
	if err := validateSections(coeffs); err != nil {
		return nil, nil, err
	}

	d1 = []float64{1}
	d2 = []float64{1}
	for i, c := range coeffs {
		if i%2 == 0 {
			d1 = mulSection(d1, c)
		} else {
			d2 = mulSection(d2, c)
		}
	}

	return d1, append(d2, 0), nil
}

// DesignQuadrature designs coefficients and expands them into delay vectors.
func DesignQuadrature(numberOfCoeffs int, transition float64) (d1, d2 []float64, err error) {
	coeffs, err := DesignCoefficients(numberOfCoeffs, transition)
	if err != nil {
		return nil, nil, err
	}

	return DelayVectors(coeffs)
}

func validateSections(coeffs []float64) error {
	if len(coeffs) == 0 {
		return ErrEmptyCoefficients
	}

	for i, c := range coeffs {
		if !core.IsFinite(c) {
			return fmt.Errorf("%w: coefficient[%d] is not finite", ErrUnstableSection, i)
		}
		if math.Abs(c) >= 1 {
			return fmt.Errorf("%w: coefficient[%d] = %g", ErrUnstableSection, i, c)
		}
	}

	return nil
}

// mulSection returns p(z) * (1 - c z^-2).
func mulSection(p []float64, c float64) []float64 {
	out := make([]float64, len(p)+2)
	for i, v := range p {
		out[i] += v
		out[i+2] -= c * v
	}

	return out
}
