// Package onepole provides first-order IIR low-pass and high-pass filters
// with a single smoothing coefficient and a one-line recurrence per sample.
// Both seed themselves from the first input samples instead of from zero, so
// the output does not ramp in from an artificial origin.
package onepole
