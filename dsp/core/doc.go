// Package core holds the small shared vocabulary of the filter packages: the
// [Float] sample constraint, allocation-aware buffer helpers, numeric helpers
// and the functional-option processor configuration.
package core
