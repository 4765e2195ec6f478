package median

import (
	"fmt"

	"github.com/cwbudde/algo-filter/ring"
)

// Moving reports the nearest-rank median of all samples currently retained
// in the window. Every Out call reruns the selection scan.
type Moving struct {
	win *ring.Buffer
}

// NewMoving returns a moving-median filter over caller-owned storage.
// len(storage) must be a power of two >= 4; the window spans
// len(storage)-1 samples.
func NewMoving(storage []float64) (*Moving, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}

	return &Moving{win: win}, nil
}

// In feeds one sample into the window.
func (m *Moving) In(value float64) {
	m.win.PushFront(value)
}

// Out returns the median of the current window, or 0 when fewer than three
// samples have been seen. A median over one or two samples is degenerate.
func (m *Moving) Out() float64 {
	n := m.win.Count()
	if n < 3 {
		return 0
	}

	return selectMedian(m.win, n)
}

// Reset clears the window while retaining the storage binding.
func (m *Moving) Reset() {
	m.win.Clear()
}

// Rebind binds the filter to new storage and clears all state.
func (m *Moving) Rebind(storage []float64) error {
	if err := m.win.Bind(storage); err != nil {
		return fmt.Errorf("median: %w", err)
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

// Interval samples the median once per full window: In pushes until the
// window fills, then runs the selection scan once, caches the result, and
// clears the window for the next batch. Out returns the cached median, so
// the expensive scan runs once every Size() samples instead of on every
// read.
type Interval struct {
	win    *ring.Buffer
	median float64
}

// NewInterval returns an interval-median filter over caller-owned storage.
// The batch length is len(storage)-1.
func NewInterval(storage []float64) (*Interval, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("median: %w", err)
	}

	return &Interval{win: win}, nil
}

// In feeds one sample. When the sample completes a batch, the median of the
// batch is computed and cached and the window is cleared.
func (f *Interval) In(value float64) {
	if !f.win.Valid() {
		return
	}

	f.win.PushFront(value)

	if f.win.Full() {
		f.median = selectMedian(f.win, f.win.Count())
		f.win.Clear()
	}
}

// Out returns the median of the most recently completed batch, or 0 before
// the first batch completes.
func (f *Interval) Out() float64 {
	return f.median
}

// Reset clears the window and the cached median, retaining the binding.
func (f *Interval) Reset() {
	f.median = 0
	f.win.Clear()
}

// Rebind binds the filter to new storage and clears all state.
func (f *Interval) Rebind(storage []float64) error {
	f.median = 0
	if err := f.win.Bind(storage); err != nil {
		return fmt.Errorf("median: %w", err)
	}

	return nil
}

// Valid reports whether the filter is bound to usable storage.
func (f *Interval) Valid() bool {
	return f.win.Valid()
}

// selectMedian returns the element of rank n/2 (0-based) among the first n
// window elements, by counting instead of sorting.
//
// For each candidate c, the inner scan computes left = |{x : x < c}| and
// right = |{x : x <= c}|. The candidate compares equal to itself, so
// right-left is the multiplicity of c and the half-open test
// left <= n/2 < right places the median rank inside c's run. Candidates
// that land above or below the median tighten skipGreater/skipLesser, which
// prune later candidates without affecting the result.
func selectMedian(win *ring.Buffer, n int) float64 {
	mid := n / 2

	var (
		median          float64
		skipGreater     float64
		skipLesser      float64
		haveSkipGreater bool
		haveSkipLesser  bool
	)

	for i := 0; i < n; i++ {
		cur := win.At(i)

		if haveSkipGreater && cur >= skipGreater {
			continue
		}
		if haveSkipLesser && cur <= skipLesser {
			continue
		}

		left := 0
		right := 0

		for j := 0; j < n; j++ {
			cmp := win.At(j)

			if cmp < cur {
				left++
				right++
			} else if cmp == cur {
				right++
			}
		}

		switch {
		case left <= mid && mid < right:
			return cur
		case mid < left:
			// cur lies above the median; skip everything >= cur from now on.
			skipGreater = cur
			haveSkipGreater = true
		default:
			// mid >= right: cur lies below the median.
			skipLesser = cur
			haveSkipLesser = true
		}
	}

	return median
}
