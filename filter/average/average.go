package average

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/ring"
)

// ErrInvalidInterval is returned for a non-positive batch interval.
var ErrInvalidInterval = errors.New("average: interval must be positive")

// Moving is a windowed mean. The sum is maintained incrementally: each push
// adds the incoming sample and, on a full window, subtracts the evicted one.
type Moving struct {
	win *ring.Buffer
	sum float64
}

// NewMoving returns a moving-average filter over caller-owned storage.
// len(storage) must be a power of two >= 4.
func NewMoving(storage []float64) (*Moving, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}

	return &Moving{win: win}, nil
}

// In feeds one sample.
func (m *Moving) In(value float64) {
	if !m.win.Valid() {
		return
	}

	if m.win.Full() {
		m.sum -= m.win.Last()
	}
	m.sum += value

	m.win.PushFront(value)
}

// Out returns the mean of the current window, or 0 when empty.
func (m *Moving) Out() float64 {
	n := m.win.Count()
	if n == 0 {
		return 0
	}

	return m.sum / float64(n)
}

// Reset clears the window and sum while retaining the binding.
func (m *Moving) Reset() {
	m.sum = 0
	m.win.Clear()
}

// Rebind binds the filter to new storage and clears all state.
func (m *Moving) Rebind(storage []float64) error {
	m.sum = 0

	if err := m.win.Bind(storage); err != nil {
		return fmt.Errorf("average: %w", err)
	}

	return nil
}

// Valid reports whether the filter is bound to usable storage.
func (m *Moving) Valid() bool {
	return m.win.Valid()
}

// Count returns the number of samples currently in the window.
func (m *Moving) Count() int {
	return m.win.Count()
}

// Interval accumulates samples and publishes their mean once every interval
// samples. Between publications Out returns the previous batch mean.
type Interval struct {
	sum      float64
	avg      float64
	interval int
	n        int
}

// NewInterval returns an interval-average filter with the given batch length.
func NewInterval(interval int) (*Interval, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	return &Interval{interval: interval}, nil
}

// In feeds one sample. The sample that completes a batch publishes the batch
// mean and starts a new batch.
func (f *Interval) In(value float64) {
	f.sum += value
	f.n++

	if f.n == f.interval {
		f.avg = f.sum / float64(f.interval)
		f.n = 0
		f.sum = 0
	}
}

// Out returns the mean of the most recently completed batch, or 0 before
// the first batch completes.
func (f *Interval) Out() float64 {
	return f.avg
}

// Reset clears the accumulated batch and the published mean.
func (f *Interval) Reset() {
	f.sum = 0
	f.avg = 0
	f.n = 0
}
