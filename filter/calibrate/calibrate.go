package calibrate

// Point is one control point of the calibration curve: a measured raw value
// and the coefficient that corrects it.
type Point struct {
	Value       float64
	Coefficient float64
}

// Filter applies a piecewise-linear calibration curve to the most recent
// sample. In only records the raw value; the curve lookup happens in Out.
type Filter struct {
	points []Point
	raw    float64
}

// New returns a calibration filter over caller-owned control points, sorted
// by ascending Value. With no points the filter passes values through
// unchanged.
func New(points []Point) *Filter {
	return &Filter{points: points}
}

// In records one raw sample.
func (f *Filter) In(value float64) {
	f.raw = value
}

// Out returns the most recent sample corrected by the curve.
func (f *Filter) Out() float64 {
	if len(f.points) == 0 {
		return f.raw
	}

	last := len(f.points) - 1
	if len(f.points) == 1 || f.raw <= f.points[0].Value {
		return f.raw * f.points[0].Coefficient
	}
	if f.raw >= f.points[last].Value {
		return f.raw * f.points[last].Coefficient
	}

	for i := 1; i <= last; i++ {
		x1 := f.points[i-1].Value
		x2 := f.points[i].Value

		if f.raw < x1 || f.raw > x2 {
			continue
		}

		y1 := f.points[i-1].Coefficient
		y2 := f.points[i].Coefficient

		// A zero-width segment cannot interpolate; guard with the mean.
		// The scan resolves readings at a coincident pair through the
		// preceding segment, so the pair acts as a step in the curve.
		if x1 == x2 {
			return f.raw * ((y1 + y2) / 2)
		}

		return f.raw * (y1 + (y2-y1)*((f.raw-x1)/(x2-x1)))
	}

	return f.raw
}

// SetPoint derives the control point at index from a reference measurement:
// the point maps measured onto real via the coefficient real/measured.
// Out-of-range indexes are ignored.
func (f *Filter) SetPoint(index int, real, measured float64) {
	if index < 0 || index >= len(f.points) {
		return
	}

	f.points[index] = Point{Value: measured, Coefficient: real / measured}
}

// Rebind replaces the control points and clears the recorded sample.
func (f *Filter) Rebind(points []Point) {
	f.points = points
	f.raw = 0
}

// Reset clears the recorded sample; the curve is retained.
func (f *Filter) Reset() {
	f.raw = 0
}

// Valid reports whether a calibration curve is bound. An unbound filter
// still passes samples through unchanged.
func (f *Filter) Valid() bool {
	return len(f.points) > 0
}
