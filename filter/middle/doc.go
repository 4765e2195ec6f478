// Package middle provides a moving-middle filter: of all samples in the
// window, it returns the one nearest to the arithmetic midpoint between the
// window minimum and maximum. Like the median it always returns a real
// sample, and it dampens outliers, though a single extreme sample still
// shifts the midpoint until it leaves the window.
//
// The extremes are maintained incrementally across pushes. A full rescan of
// the window happens only in the one ambiguous case: the evicted sample was
// the current minimum or maximum and the incoming sample does not extend the
// range, so the window may or may not still contain another sample at that
// extreme. Every other push is O(1).
package middle
