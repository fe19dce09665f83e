package iir

import (
	"errors"
	"fmt"
)

// Errors returned by filter configuration and block processing.
var (
	// ErrInvalidCoefficients reports empty coefficient vectors, a zero
	// leading denominator term or non-finite (normalized) coefficients.
	ErrInvalidCoefficients = errors.New("iir: invalid coefficients")
	// ErrUninitialized reports processing on a filter that was never
	// successfully initialized. ProcessSample panics with this value.
	ErrUninitialized = errors.New("iir: filter used before Init")
	// ErrSizeMismatch reports a negative count or a buffer shorter than count.
	ErrSizeMismatch = errors.New("iir: block size mismatch")
)

// checkBlock validates a block request before any sample is processed.
func checkBlock(count int, lens ...int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrSizeMismatch, count)
	}

	for i, n := range lens {
		if n < count {
			return fmt.Errorf("%w: buffer %d has length %d, need %d", ErrSizeMismatch, i, n, count)
		}
	}

	return nil
}
