package allpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-iir/dsp/core"
)

const (
	// DefaultCoefficientCount is the default number of all-pass sections.
	DefaultCoefficientCount = 8
	// DefaultTransition is the default normalized transition bandwidth.
	DefaultTransition = 0.1
)

// DesignCoefficients computes half-pi all-pass section coefficients for the
// given number of sections and normalized transition bandwidth.
func DesignCoefficients(numberOfCoeffs int, transition float64) ([]float64, error) {
	if err := validateDesignParams(numberOfCoeffs, transition); err != nil {
		return nil, err
	}

	k, q := transitionParams(transition)
	order := numberOfCoeffs*2 + 1

	coeffs := make([]float64, numberOfCoeffs)
	for i := range coeffs {
		coeffs[i] = sectionCoefficient(i+1, k, q, order)
	}

	return coeffs, nil
}

// AttenuationFromOrderTBW computes the image rejection in dB for the given
// number of sections and transition bandwidth.
func AttenuationFromOrderTBW(numberOfCoeffs int, transition float64) (float64, error) {
	if err := validateDesignParams(numberOfCoeffs, transition); err != nil {
		return 0, err
	}

	_, q := transitionParams(transition)
	v := 4 * math.Exp(float64(numberOfCoeffs*2+1)*0.5*math.Log(q))

	return -10 * math.Log10(v/(1+v)), nil
}

func validateDesignParams(numberOfCoeffs int, transition float64) error {
	if numberOfCoeffs < 1 {
		return fmt.Errorf("%w: number of coefficients must be >= 1: %d", ErrInvalidDesign, numberOfCoeffs)
	}
	if !core.IsFinite(transition) || transition <= 0 || transition >= 0.5 {
		return fmt.Errorf("%w: transition must be finite and in (0, 0.5): %g", ErrInvalidDesign, transition)
	}

	return nil
}

// transitionParams returns the elliptic modulus k and nome q for the
// half-band prototype.
func transitionParams(transition float64) (k, q float64) {
	k = math.Pow(math.Tan((1-transition*2)*math.Pi*0.25), 2)
	kksqrt := math.Pow(1-k*k, 0.25)
	e := 0.5 * (1 - kksqrt) / (1 + kksqrt)
	e4 := e * e * e * e
	q = e * (1 + e4*(2+e4*(15+150*e4)))

	return k, q
}

func sectionCoefficient(c int, k, q float64, order int) float64 {
	num := thetaNum(q, order, c) * math.Pow(q, 0.25)
	den := thetaDen(q, order, c) + 0.5
	ww := (num * num) / (den * den)

	r := math.Sqrt((1-ww*k)*(1-ww/k)) / (1 + ww)
	return (1 - r) / (1 + r)
}

// thetaNum and thetaDen sum the Jacobi theta series until terms vanish.
func thetaNum(q float64, order, c int) float64 {
	var sum float64
	sign := 1.0
	for i := 0; ; i++ {
		term := math.Pow(q, float64(i*(i+1))) * math.Sin(float64(i*2+1)*float64(c)*math.Pi/float64(order)) * sign
		sum += term
		sign = -sign
		if math.Abs(term) <= 1e-100 {
			return sum
		}
	}
}

func thetaDen(q float64, order, c int) float64 {
	var sum float64
	sign := -1.0
	for i := 1; ; i++ {
		term := math.Pow(q, float64(i*i)) * math.Cos(2*float64(i)*float64(c)*math.Pi/float64(order)) * sign
		sum += term
		sign = -sign
		if math.Abs(term) <= 1e-100 {
			return sum
		}
	}
}
