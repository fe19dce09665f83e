package allpass

import "errors"

// Errors returned by the design helpers.
var (
	ErrInvalidDesign     = errors.New("allpass: invalid design parameters")
	ErrUnstableSection   = errors.New("allpass: section coefficient outside (-1, 1)")
	ErrEmptyCoefficients = errors.New("allpass: coefficients must not be empty")
)
