// Package response measures the frequency response of a sample processor by
// capturing its impulse response and transforming it with an FFT.
//
// It complements the analytic iir.Filter.Response: the measured response
// sees exactly what the runtime computes, including coefficient rounding
// and the truncation of the impulse response to the FFT length.
package response
