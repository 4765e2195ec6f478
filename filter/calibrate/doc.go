// Package calibrate provides a point-interpolation filter that corrects a
// sensor reading through a piecewise-linear coefficient curve. Each control
// point pairs a measured value with the coefficient that maps it onto the
// true value; readings between two points use a linearly interpolated
// coefficient, readings outside the curve clamp to the nearest edge
// coefficient. The control points must be sorted by ascending measured
// value.
package calibrate
