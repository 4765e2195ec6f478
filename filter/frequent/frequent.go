package frequent

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filter/ring"
)

// ErrTableTooSmall is returned when the occurrence table cannot hold one
// entry per retainable window sample.
var ErrTableTooSmall = errors.New("frequent: occurrence table smaller than window")

// Occurrence is one value/count pair of the occurrence table. A Count of 0
// marks the slot free; its Value is reset to 0 to avoid stale matches.
type Occurrence struct {
	Value float64
	Count int
}

// Moving reports the most frequent value in the sliding window.
type Moving struct {
	win   *ring.Buffer
	table []Occurrence
}

// New returns a most-frequent-occurrence filter over caller-owned window
// storage and occurrence table. len(storage) must be a power of two >= 4
// and the table must hold at least len(storage)-1 entries.
func New(storage []float64, table []Occurrence) (*Moving, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("frequent: %w", err)
	}

	if len(table) < win.Size() {
		return nil, ErrTableTooSmall
	}

	return &Moving{win: win, table: table}, nil
}

// In feeds one sample, updating the occurrence table in step with window
// eviction.
func (m *Moving) In(value float64) {
	if !m.win.Valid() || m.table == nil {
		return
	}

	size := m.win.Size()

	if m.win.Full() {
		evicted := m.win.Last()

		// Same value in and out: the occurrence multiset is unchanged.
		if value == evicted {
			m.win.PushFront(value)
			return
		}

		for i := 0; i < size; i++ {
			if m.table[i].Count > 0 && m.table[i].Value == evicted {
				m.table[i].Count--
				if m.table[i].Count == 0 {
					m.table[i].Value = 0
				}

				break
			}
		}
	}

	m.win.PushFront(value)

	// Match a live entry, or claim the first free slot. A free slot always
	// exists here: the live counts sum to at most Size()-1 after the
	// eviction decrement above.
	idx := -1
	free := -1

	for i := 0; i < size; i++ {
		if m.table[i].Count == 0 {
			if free < 0 {
				free = i
			}

			continue
		}

		if m.table[i].Value == value {
			idx = i
			break
		}
	}

	if idx < 0 {
		if free < 0 {
			return
		}

		idx = free
	}

	m.table[idx].Value = value
	m.table[idx].Count++
}

// Out returns the value with the highest occurrence count, or 0 when the
// window is empty or the filter unbound. The first maximal entry in
// table-slot order wins ties.
func (m *Moving) Out() float64 {
	if !m.win.Valid() || m.table == nil {
		return 0
	}

	n := m.win.Count()
	if n == 0 {
		return 0
	}

	best := m.table[0]
	for i := 1; i < n; i++ {
		if m.table[i].Count > best.Count {
			best = m.table[i]
		}
	}

	return best.Value
}

// Reset clears the window and the occurrence table, retaining both bindings.
func (m *Moving) Reset() {
	m.win.Clear()

	for i := range m.table {
		m.table[i] = Occurrence{}
	}
}

// Rebind binds the filter to new window storage and occurrence table and
// clears all state.
func (m *Moving) Rebind(storage []float64, table []Occurrence) error {
	if err := m.win.Bind(storage); err != nil {
		m.table = nil
		return fmt.Errorf("frequent: %w", err)
	}

	if len(table) < m.win.Size() {
		_ = m.win.Bind(nil)
		m.table = nil

		return ErrTableTooSmall
	}

	m.table = table
	m.Reset()

	return nil
}

// Valid reports whether the filter is bound to usable storage and table.
func (m *Moving) Valid() bool {
	return m.win.Valid() && m.table != nil
}

// Count returns the number of samples currently in the window.
func (m *Moving) Count() int {
	return m.win.Count()
}
