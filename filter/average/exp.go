package average

import "errors"

// ErrInvalidPeriods is returned for a non-positive period count.
var ErrInvalidPeriods = errors.New("average: periods must be positive")

// Exp is an exponential moving average with the conventional smoothing
// constant alpha = 2/(periods+1). The first warmup+1 samples seed the
// average directly instead of being smoothed, so the output does not have
// to climb from zero.
type Exp struct {
	ema       float64
	alpha     float64
	warmup    int
	remaining int
}

// NewExp returns an exponential moving-average filter. warmup extends the
// seeding phase beyond the first sample; pass 0 to seed from the first
// sample only.
func NewExp(periods, warmup int) (*Exp, error) {
	if periods <= 0 {
		return nil, ErrInvalidPeriods
	}
	if warmup < 0 {
		warmup = 0
	}

	return &Exp{
		alpha:     2 / float64(periods+1),
		warmup:    warmup,
		remaining: warmup + 1,
	}, nil
}

// In feeds one sample.
func (e *Exp) In(value float64) {
	if e.remaining > 0 {
		e.remaining--
		e.ema = value

		return
	}

	e.ema += e.alpha * (value - e.ema)
}

// Out returns the current average.
func (e *Exp) Out() float64 {
	return e.ema
}

// Reset clears the average and restarts the seeding phase.
func (e *Exp) Reset() {
	e.ema = 0
	e.remaining = e.warmup + 1
}
