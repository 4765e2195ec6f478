package average

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/ring"
)

// ErrInvalidEfficiencyPeriods is returned when the efficiency-ratio span
// does not fit in the window.
var ErrInvalidEfficiencyPeriods = errors.New("average: efficiency periods must be positive and smaller than the window")

// Kaufman is a Kaufman adaptive moving average (KAMA). The smoothing
// constant interpolates between the fast and slow EMA constants according
// to the efficiency ratio: net movement over erPeriods samples divided by
// the summed sample-to-sample movement. Trending input pushes the constant
// towards fast, noisy sideways input towards slow.
//
// The recurrence advances once per In when the window is full, so Out is a
// pure read.
type Kaufman struct {
	win       *ring.Buffer
	erPeriods int
	fastSC    float64
	slowSC    float64
	kama      float64
}

// NewKaufman returns a KAMA filter over caller-owned storage. erPeriods is
// the efficiency-ratio span and must be smaller than the window
// (len(storage)-1); slowPeriods and fastPeriods set the smoothing-constant
// range, conventionally 30 and 2.
func NewKaufman(storage []float64, erPeriods, slowPeriods, fastPeriods int) (*Kaufman, error) {
	win, err := ring.New(storage)
	if err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}

	if erPeriods <= 0 || erPeriods >= win.Size() {
		return nil, ErrInvalidEfficiencyPeriods
	}
	if slowPeriods <= 0 || fastPeriods <= 0 {
		return nil, ErrInvalidPeriods
	}

	return &Kaufman{
		win:       win,
		erPeriods: erPeriods,
		fastSC:    2 / float64(fastPeriods+1),
		slowSC:    2 / float64(slowPeriods+1),
	}, nil
}

// In feeds one sample. Once the window is full, each sample advances the
// KAMA recurrence exactly once.
func (k *Kaufman) In(value float64) {
	if !k.win.Valid() {
		return
	}

	k.win.PushFront(value)

	if !k.win.Full() {
		return
	}

	change := math.Abs(k.win.First() - k.win.At(k.erPeriods))

	var volatility float64
	for i := 0; i < k.erPeriods; i++ {
		volatility += math.Abs(k.win.At(i) - k.win.At(i+1))
	}

	var er float64
	if volatility != 0 {
		er = change / volatility
	}

	sc := er*(k.fastSC-k.slowSC) + k.slowSC
	sc *= sc

	k.kama += sc * (k.win.First() - k.kama)
}

// Out returns the current adaptive average, or 0 until the window first
// fills.
func (k *Kaufman) Out() float64 {
	return k.kama
}

// Reset clears the window and the average while retaining the binding.
func (k *Kaufman) Reset() {
	k.kama = 0
	k.win.Clear()
}

// Rebind binds the filter to new storage and clears all state. The periods
// are retained; erPeriods must still fit the new window.
func (k *Kaufman) Rebind(storage []float64) error {
	k.kama = 0

	if err := k.win.Bind(storage); err != nil {
		return fmt.Errorf("average: %w", err)
	}

	if k.erPeriods >= k.win.Size() {
		_ = k.win.Bind(nil)
		return ErrInvalidEfficiencyPeriods
	}

	return nil
}

// Valid reports whether the filter is bound to usable storage.
func (k *Kaufman) Valid() bool {
	return k.win.Valid()
}

// Count returns the number of samples currently in the window.
func (k *Kaufman) Count() int {
	return k.win.Count()
}
