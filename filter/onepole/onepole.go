package onepole

import "errors"

// ErrInvalidAlpha is returned when the smoothing coefficient is outside
// (0, 1].
var ErrInvalidAlpha = errors.New("onepole: alpha must be in (0, 1]")

// LowPass smooths its input with y += alpha*(x - y). Larger alpha tracks the
// input faster; smaller alpha smooths harder.
type LowPass struct {
	y         float64
	alpha     float64
	warmup    int
	remaining int
}

// NewLowPass returns a first-order low-pass filter. The first warmup+1
// samples seed the output directly.
func NewLowPass(alpha float64, warmup int) (*LowPass, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}
	if warmup < 0 {
		warmup = 0
	}

	return &LowPass{alpha: alpha, warmup: warmup, remaining: warmup + 1}, nil
}

// In feeds one sample.
func (l *LowPass) In(value float64) {
	if l.remaining > 0 {
		l.remaining--
		l.y = value

		return
	}

	l.y += l.alpha * (value - l.y)
}

// Out returns the current low-passed value.
func (l *LowPass) Out() float64 {
	return l.y
}

// Reset clears the output and restarts the seeding phase.
func (l *LowPass) Reset() {
	l.y = 0
	l.remaining = l.warmup + 1
}

// HighPass passes changes and rejects the steady component with
// y = alpha*(y + x - xPrev). Two samples are needed before the recurrence
// has a meaningful difference, so the seeding phase spans warmup+2 samples.
type HighPass struct {
	y         float64
	prev      float64
	alpha     float64
	warmup    int
	remaining int
}

// NewHighPass returns a first-order high-pass filter.
func NewHighPass(alpha float64, warmup int) (*HighPass, error) {
	if alpha <= 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}
	if warmup < 0 {
		warmup = 0
	}

	return &HighPass{alpha: alpha, warmup: warmup, remaining: warmup + 2}, nil
}

// In feeds one sample.
func (h *HighPass) In(value float64) {
	if h.remaining > 0 {
		h.remaining--
		h.prev = h.y
		h.y = value

		return
	}

	h.y = h.alpha * (h.y + value - h.prev)
	h.prev = value
}

// Out returns the current high-passed value.
func (h *HighPass) Out() float64 {
	return h.y
}

// Reset clears the state and restarts the seeding phase.
func (h *HighPass) Reset() {
	h.y = 0
	h.prev = 0
	h.remaining = h.warmup + 2
}
