package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// Pair holds the half-sum and half-difference outputs of a coupled
// all-pass pair for one input sample.
type Pair[F core.Float] struct {
	Pos F // (A1 + A2) / 2
	Neg F // (A1 - A2) / 2
}

// CoupledAllPass drives two all-pass filters H1 and H2 with the same input.
//
// Each path is built from a delay vector d as an IIR filter with numerator
// reverse(d) and denominator d, which is all-pass whenever d is a stable
// denominator.
type CoupledAllPass[F core.Float] struct {
	h1, h2 Filter[F]
	last   Pair[F]
}

// NewCoupledAllPass creates a coupled all-pass pair from delay vectors d1, d2.
func NewCoupledAllPass[F core.Float](d1, d2 []F) (*CoupledAllPass[F], error) {
	c := &CoupledAllPass[F]{}
	if err := c.Init(d1, d2); err != nil {
		return nil, err
	}

	return c, nil
}

// Init configures both paths and clears all state. If either delay vector
// is rejected, the previous configuration is kept.
func (c *CoupledAllPass[F]) Init(d1, d2 []F) error {
	var h1, h2 Filter[F]

	if err := h1.Init(core.Reversed(d1), d1); err != nil {
		return fmt.Errorf("coupled all-pass path 1: %w", err)
	}
	if err := h2.Init(core.Reversed(d2), d2); err != nil {
		return fmt.Errorf("coupled all-pass path 2: %w", err)
	}

	c.h1 = h1
	c.h2 = h2
	c.last = Pair[F]{}

	return nil
}

// ProcessSample feeds x to both paths and returns pos = (A1+A2)/2 and
// neg = (A1-A2)/2. The pair is also retained for [CoupledAllPass.Pos] and
// [CoupledAllPass.Neg]. It panics with [ErrUninitialized] before Init.
func (c *CoupledAllPass[F]) ProcessSample(x F) (pos, neg F) {
	a1 := c.h1.ProcessSample(x)
	a2 := c.h2.ProcessSample(x)

	c.last.Pos = (a1 + a2) / 2
	c.last.Neg = (a1 - a2) / 2

	return c.last.Pos, c.last.Neg
}

// Process runs the first count samples of input, writing the half-sum to pos
// and the half-difference to neg. Nothing is written when an error is returned.
func (c *CoupledAllPass[F]) Process(input, pos, neg []F, count int) error {
	if !c.Initialized() {
		return ErrUninitialized
	}
	if err := checkBlock(count, len(input), len(pos), len(neg)); err != nil {
		return err
	}

	for i, x := range input[:count] {
		pos[i], neg[i] = c.ProcessSample(x)
	}

	return nil
}

// processPairs is the [Pair]-slice variant used by the stereo wrapper.
func (c *CoupledAllPass[F]) processPairs(input []F, out []Pair[F]) {
	for i, x := range input {
		out[i].Pos, out[i].Neg = c.ProcessSample(x)
	}
}

// Pos returns the half-sum output of the most recent sample.
func (c *CoupledAllPass[F]) Pos() F { return c.last.Pos }

// Neg returns the half-difference output of the most recent sample.
func (c *CoupledAllPass[F]) Neg() F { return c.last.Neg }

// Last returns both outputs of the most recent sample.
func (c *CoupledAllPass[F]) Last() Pair[F] { return c.last }

// H1 returns the first all-pass path.
func (c *CoupledAllPass[F]) H1() *Filter[F] { return &c.h1 }

// H2 returns the second all-pass path.
func (c *CoupledAllPass[F]) H2() *Filter[F] { return &c.h2 }

// Initialized reports whether both paths are configured.
func (c *CoupledAllPass[F]) Initialized() bool {
	return c.h1.Initialized() && c.h2.Initialized()
}

// Reset clears both paths and the retained outputs.
func (c *CoupledAllPass[F]) Reset() {
	c.h1.Reset()
	c.h2.Reset()
	c.last = Pair[F]{}
}
