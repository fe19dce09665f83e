// Package iir provides a Direct-Form-I recursive (IIR) filter runtime and a
// coupled all-pass pair built from two such filters.
//
// A [Filter] evaluates
//
//	y[n] = (1/a0) * sum_{i=0}^{nb-1} b[i]*x[n-i] - (1/a0) * sum_{i=1}^{na-1} a[i]*y[n-i]
//
// with separate circular delay lines for input and output history. The
// normalized coefficients are stored reversed and duplicated (length 2*n-1)
// so the inner loop reads one contiguous window per sample without any
// modulo or wrap-around branch.
//
// A [CoupledAllPass] drives two all-pass filters, each built from a delay
// vector d as b = reverse(d), a = d, with the same input and reports the half
// sum and half difference of their outputs. With suitable delay vectors (see
// package dsp/filter/allpass) the two paths are in quadrature.
//
// [StereoFilter] and [StereoCoupledAllPass] run one private instance per
// channel with shared coefficients.
//
// The sample type is a type parameter: use Filter[float64] or Filter[float32].
// A single instance is not safe for concurrent use; distinct instances share
// no state.
//
// This package provides the processing runtime only. Coefficient design is a
// separate concern, and coefficient stability is the caller's obligation: an
// unstable denominator grows without bound and the filter does not clamp.
package iir
