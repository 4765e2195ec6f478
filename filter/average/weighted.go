package average

import (
	"fmt"

	"github.com/cwbudde/algo-filter/ring"
)

// Weighted is a linearly weighted windowed mean: the newest sample carries
// weight n, the oldest weight 1, normalized by the triangular number
// n(n+1)/2. While the window is still filling, the triangular number tracks
// the current count so partial windows stay properly normalized.
type Weighted struct {
	win *ring.Buffer
	tri float64
}

// NewWeighted returns a weighted moving-average filter over caller-owned
// storage. len(storage) must be a power of two >= 4.
func NewWeighted(storage []float64) (*Weighted, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}

	n := float64(win.Size())

	return &Weighted{win: win, tri: n * (n + 1) / 2}, nil
}

// In feeds one sample. The normalizer follows the post-push count, so the
// push that fills the window raises it to the full triangular number.
func (w *Weighted) In(value float64) {
	if !w.win.Valid() {
		return
	}

	w.win.PushFront(value)

	n := float64(w.win.Count())
	w.tri = n * (n + 1) / 2
}

// Out returns the weighted mean of the current window, or 0 when empty.
func (w *Weighted) Out() float64 {
	n := w.win.Count()
	if n == 0 {
		return 0
	}

	var wma float64
	for i := 0; i < n; i++ {
		wma += w.win.At(i) * (float64(n-i) / w.tri)
	}

	return wma
}

// Reset clears the window while retaining the binding.
func (w *Weighted) Reset() {
	w.win.Clear()

	n := float64(w.win.Size())
	w.tri = n * (n + 1) / 2
}

// Rebind binds the filter to new storage and clears all state.
func (w *Weighted) Rebind(storage []float64) error {
	if err := w.win.Bind(storage); err != nil {
		w.tri = 0
		return fmt.Errorf("average: %w", err)
	}

	n := float64(w.win.Size())
	w.tri = n * (n + 1) / 2

	return nil
}

// Valid reports whether the filter is bound to usable storage.
func (w *Weighted) Valid() bool {
	return w.win.Valid()
}

// Count returns the number of samples currently in the window.
func (w *Weighted) Count() int {
	return w.win.Count()
}
