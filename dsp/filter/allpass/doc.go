// Package allpass designs delay vectors for coupled all-pass quadrature pairs.
//
// The design follows the HIIR-style polyphase half-pi structure: a set of
// coefficients c_k, each describing a second-order all-pass section
//
//	(c_k - z^-2) / (1 - c_k z^-2)
//
// split into two paths by index parity. [DelayVectors] expands each path into
// a single denominator polynomial so it can be run by an iir.CoupledAllPass,
// which builds every path as reverse(d) / d. The odd path carries one extra
// sample of delay, represented by a trailing zero.
//
// Within the band [transition, 0.5 - transition] (normalized to the sample
// rate) the two path outputs are in quadrature.
//
// Coefficients can be designed with [DesignCoefficients] or supplied directly.
// Presets [PresetFast], [PresetBalanced], and [PresetLowFrequency] trade CPU
// cost for low-frequency quadrature accuracy.
package allpass
