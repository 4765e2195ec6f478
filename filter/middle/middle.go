package middle

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/ring"
)

// Moving selects the window sample nearest to min + (max-min)/2.
type Moving struct {
	win *ring.Buffer
	min float64
	max float64
}

// New returns a moving-middle filter over caller-owned storage.
// len(storage) must be a power of two >= 4.
func New(storage []float64) (*Moving, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("middle: %w", err)
	}

	return &Moving{win: win}, nil
}

// In feeds one sample, keeping the running extremes consistent with the
// post-push window.
func (m *Moving) In(value float64) {
	if !m.win.Valid() {
		return
	}

	if !m.win.Full() {
		m.win.PushFront(value)

		switch {
		case m.win.Count() == 1:
			m.min = value
			m.max = value
		case value < m.min:
			m.min = value
		case value > m.max:
			m.max = value
		}

		return
	}

	// The push below evicts the oldest sample; read it first.
	evicted := m.win.Last()
	m.win.PushFront(value)

	switch {
	case value == evicted:
		// The multiset of extremes is unchanged.
	case evicted == m.min && value < m.min:
		m.min = value
	case evicted == m.max && value > m.max:
		m.max = value
	case evicted == m.min || evicted == m.max:
		// An extreme left the window and the incoming sample does not
		// extend the range. Whether another sample still achieves that
		// extreme is unknowable without a rescan.
		m.rescan()
	case value > m.max:
		m.max = value
	case value < m.min:
		m.min = value
	}
}

// Out returns the sample nearest to the min/max midpoint, or 0 when fewer
// than two samples have been seen. Ties go to the newest-first scan order:
// the first sample found at the minimal distance wins.
func (m *Moving) Out() float64 {
	n := m.win.Count()
	if n < 2 {
		return 0
	}

	mid := m.min + (m.max-m.min)/2

	best := m.win.First()
	bestDist := math.Abs(mid - best)

	for i := 1; i < n; i++ {
		cur := m.win.At(i)
		if dist := math.Abs(mid - cur); dist < bestDist {
			best = cur
			bestDist = dist
		}
	}

	return best
}

// Reset clears the window and extremes while retaining the binding.
func (m *Moving) Reset() {
	m.min = 0
	m.max = 0
	m.win.Clear()
}

// Rebind binds the filter to new storage and clears all state.
func (m *Moving) Rebind(storage []float64) error {
	m.min = 0
	m.max = 0

	if err := m.win.Bind(storage); err != nil {
		return fmt.Errorf("middle: %w", err)
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

// Min returns the current window minimum, or 0 before any sample.
func (m *Moving) Min() float64 {
	return m.min
}

// Max returns the current window maximum, or 0 before any sample.
func (m *Moving) Max() float64 {
	return m.max
}

func (m *Moving) rescan() {
	m.min = m.win.First()
	m.max = m.min

	n := m.win.Count()
	for i := 1; i < n; i++ {
		cur := m.win.At(i)

		if cur < m.min {
			m.min = cur
		} else if cur > m.max {
			m.max = cur
		}
	}
}
