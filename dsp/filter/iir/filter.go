package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Filter is a single-channel Direct-Form-I IIR filter.
//
// The zero value is not usable; call [Filter.Init] (or use [New]) first.
type Filter[F core.Float] struct {
	// Reversed, duplicated and normalized coefficients:
	// coeffB[i] = b[(2*lenB-1-i) % lenB] / a0
	// coeffA[i] = a[1 + (2*lenA-2-i) % lenA] / a0
	coeffB []F
	coeffA []F

	x []F // last lenB inputs, written at ib
	y []F // last lenA outputs, written at ia

	lenB, lenA int
	ib, ia     int

	filtered F

	num []F // normalized numerator
	den []F // normalized denominator, den[0] == 1
}

// New creates a filter with numerator b and denominator a.
// The coefficients are copied.
func New[F core.Float](b, a []F) (*Filter[F], error) {
	f := &Filter[F]{}
	if err := f.Init(b, a); err != nil {
		return nil, err
	}

	return f, nil
}

// Init configures the filter with numerator b (len >= 1) and denominator a
// (len >= 1, a[0] != 0) and clears all history.
//
// A denominator of length 1 yields a pure FIR filter with no feedback terms.
// On error the previous configuration and state are left untouched.
func (f *Filter[F]) Init(b, a []F) error {
	if err := validateCoefficients(b, a); err != nil {
		return err
	}

	lenB := len(b)
	lenA := len(a) - 1
	a0 := a[0]

	coeffB := make([]F, 2*lenB-1)
	for i := range coeffB {
		coeffB[i] = b[(2*lenB-1-i)%lenB] / a0
	}

	var coeffA []F
	if lenA > 0 {
		fb := a[1:]
		coeffA = make([]F, 2*lenA-1)
		for i := range coeffA {
			coeffA[i] = fb[(2*lenA-2-i)%lenA] / a0
		}
	}

	if ok, idx := core.AllFinite(coeffB); !ok {
		return fmt.Errorf("%w: normalized numerator[%d] is not finite", ErrInvalidCoefficients, idx)
	}
	if ok, idx := core.AllFinite(coeffA); !ok {
		return fmt.Errorf("%w: normalized denominator[%d] is not finite", ErrInvalidCoefficients, idx)
	}

	num := make([]F, lenB)
	for i, v := range b {
		num[i] = v / a0
	}

	den := make([]F, lenA+1)
	den[0] = 1
	for i := 1; i <= lenA; i++ {
		den[i] = a[i] / a0
	}

	f.coeffB = coeffB
	f.coeffA = coeffA
	f.x = make([]F, lenB)
	f.y = make([]F, lenA)
	f.lenB = lenB
	f.lenA = lenA
	f.ib = 0
	f.ia = 0
	f.filtered = 0
	f.num = num
	f.den = den

	return nil
}

func validateCoefficients[F core.Float](b, a []F) error {
	if len(b) == 0 {
		return fmt.Errorf("%w: numerator is empty", ErrInvalidCoefficients)
	}
	if len(a) == 0 {
		return fmt.Errorf("%w: denominator is empty", ErrInvalidCoefficients)
	}
	if a[0] == 0 {
		return fmt.Errorf("%w: leading denominator coefficient is zero", ErrInvalidCoefficients)
	}
	if ok, idx := core.AllFinite(b); !ok {
		return fmt.Errorf("%w: numerator[%d] is not finite", ErrInvalidCoefficients, idx)
	}
	if ok, idx := core.AllFinite(a); !ok {
		return fmt.Errorf("%w: denominator[%d] is not finite", ErrInvalidCoefficients, idx)
	}

	return nil
}

// ProcessSample filters one input sample and returns the output.
// It panics with [ErrUninitialized] if the filter was never initialized.
func (f *Filter[F]) ProcessSample(value F) F {
	lenB, lenA := f.lenB, f.lenA
	if lenB == 0 {
		panic(ErrUninitialized)
	}

	f.x[f.ib] = value

	var bTerms F
	bShift := f.coeffB[lenB-f.ib-1 : 2*lenB-f.ib-1]
	for i, v := range f.x {
		bTerms += v * bShift[i]
	}

	var aTerms F
	if lenA > 0 {
		aShift := f.coeffA[lenA-f.ia-1 : 2*lenA-f.ia-1]
		for i, v := range f.y {
			aTerms += v * aShift[i]
		}
	}

	filtered := bTerms - aTerms

	if lenA > 0 {
		f.y[f.ia] = filtered
		f.ia++
		if f.ia == lenA {
			f.ia = 0
		}
	}

	f.ib++
	if f.ib == lenB {
		f.ib = 0
	}

	f.filtered = filtered

	return filtered
}

// Process filters the first count samples of input into output.
// Both slices must hold at least count samples; they may be the same slice.
// Nothing is written when an error is returned.
func (f *Filter[F]) Process(input, output []F, count int) error {
	if f.lenB == 0 {
		return ErrUninitialized
	}
	if err := checkBlock(count, len(input), len(output)); err != nil {
		return err
	}

	f.process(input[:count], output[:count])

	return nil
}

// ProcessBlock filters buf in place.
func (f *Filter[F]) ProcessBlock(buf []F) error {
	return f.Process(buf, buf, len(buf))
}

func (f *Filter[F]) process(input, output []F) {
	for i, x := range input {
		output[i] = f.ProcessSample(x)
	}
}

// Filtered returns the most recent output sample.
func (f *Filter[F]) Filtered() F {
	return f.filtered
}

// Reset clears the delay lines and the last output, keeping coefficients.
func (f *Filter[F]) Reset() {
	core.Zero(f.x)
	core.Zero(f.y)
	f.ib = 0
	f.ia = 0
	f.filtered = 0
}

// Initialized reports whether the filter has been configured.
func (f *Filter[F]) Initialized() bool {
	return f.lenB > 0
}

// LenB returns the number of feed-forward taps.
func (f *Filter[F]) LenB() int {
	return f.lenB
}

// LenA returns the number of feedback taps (denominator length minus one).
// Zero means the filter is a pure FIR.
func (f *Filter[F]) LenA() int {
	return f.lenA
}

// Order returns the filter order max(LenB-1, LenA).
func (f *Filter[F]) Order() int {
	return max(f.lenB-1, f.lenA)
}

// Numerator returns a copy of the numerator normalized by a0.
func (f *Filter[F]) Numerator() []F {
	return core.Clone(f.num)
}

// Denominator returns a copy of the denominator normalized by a0.
// The first element is 1.
func (f *Filter[F]) Denominator() []F {
	return core.Clone(f.den)
}
