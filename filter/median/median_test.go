package median

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/cwbudde/algo-filter/internal/testutil"
)

// referenceMedian returns the nearest-rank median: the element at index n/2
// of the sorted window.
func referenceMedian(window []float64) float64 {
	sorted := append([]float64(nil), window...)
	sort.Float64s(sorted)

	return sorted[len(sorted)/2]
}

func TestMovingInvalidCapacity(t *testing.T) {
	if _, err := NewMoving(make([]float64, 5)); err == nil {
		t.Fatal("NewMoving accepted a non-power-of-two capacity")
	}
}

func TestMovingInsufficientData(t *testing.T) {
	m, err := NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}

	if got := m.Out(); got != 0 {
		t.Fatalf("Out() = %v on empty window, want 0", got)
	}

	m.In(5)
	m.In(7)
	if got := m.Out(); got != 0 {
		t.Fatalf("Out() = %v with two samples, want 0", got)
	}
}

func TestMovingSimpleWindow(t *testing.T) {
	m, err := NewMoving(make([]float64, 4))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}

	for _, v := range []float64{1, 3, 2} {
		m.In(v)
	}

	if got := m.Out(); got != 2 {
		t.Fatalf("Out() = %v, want 2", got)
	}
}

func TestMovingEvenWindowReturnsElement(t *testing.T) {
	m, err := NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}

	window := []float64{5, 1, 3, 1}
	for _, v := range window {
		m.In(v)
	}

	got := m.Out()
	if got != referenceMedian(window) {
		t.Fatalf("Out() = %v, want %v", got, referenceMedian(window))
	}

	// The result must be an actual element, never an interpolated value.
	found := false
	for _, v := range window {
		if got == v {
			found = true
		}
	}
	if !found {
		t.Fatalf("Out() = %v is not an element of %v", got, window)
	}
}

func TestMovingSlidingEviction(t *testing.T) {
	m, err := NewMoving(make([]float64, 4))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}

	for _, v := range []float64{10, 20, 30} {
		m.In(v)
	}
	if got := m.Out(); got != 20 {
		t.Fatalf("Out() = %v, want 20", got)
	}

	// Pushing 40 evicts 10; the window is now [40 30 20].
	m.In(40)
	if got := m.Out(); got != 30 {
		t.Fatalf("Out() = %v after eviction, want 30", got)
	}
}

func TestMovingAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		n := 3 + rng.Intn(48) // window sizes 3..50

		capacity := 4
		for capacity-1 < n {
			capacity <<= 1
		}

		m, err := NewMoving(make([]float64, capacity))
		if err != nil {
			t.Fatalf("NewMoving: %v", err)
		}

		window := make([]float64, n)
		for i := range window {
			// Small integer range to force duplicates.
			window[i] = float64(rng.Intn(12))
			m.In(window[i])
		}

		want := referenceMedian(window)
		if got := m.Out(); got != want {
			t.Fatalf("trial %d: Out() = %v, want %v for window %v", trial, got, want, window)
		}
	}
}

func TestMovingOutIdempotent(t *testing.T) {
	m, err := NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	for _, v := range []float64{4, 9, 2, 7, 5} {
		m.In(v)
	}

	first := m.Out()
	second := m.Out()
	if first != second {
		t.Fatalf("Out() not idempotent: %v then %v", first, second)
	}
}

func TestMovingReset(t *testing.T) {
	m, err := NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	for _, v := range []float64{1, 2, 3, 4} {
		m.In(v)
	}

	m.Reset()
	if m.Count() != 0 {
		t.Fatalf("Count() = %d after Reset, want 0", m.Count())
	}
	if got := m.Out(); got != 0 {
		t.Fatalf("Out() = %v after Reset, want 0", got)
	}
	if !m.Valid() {
		t.Fatal("Reset must retain the binding")
	}
}

func TestMovingRebind(t *testing.T) {
	m, err := NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}
	m.In(1)

	if err := m.Rebind(make([]float64, 16)); err != nil {
		t.Fatalf("Rebind: %v", err)
	}
	if m.Count() != 0 {
		t.Fatalf("Count() = %d after Rebind, want 0", m.Count())
	}

	if err := m.Rebind(make([]float64, 3)); err == nil {
		t.Fatal("Rebind accepted an invalid capacity")
	}
	if m.Valid() {
		t.Fatal("filter still valid after failed Rebind")
	}
}

func TestIntervalBatchSemantics(t *testing.T) {
	f, err := NewInterval(make([]float64, 4))
	if err != nil {
		t.Fatalf("NewInterval: %v", err)
	}

	if got := f.Out(); got != 0 {
		t.Fatalf("Out() = %v before first batch, want 0", got)
	}

	// First batch of three samples.
	for _, v := range []float64{1, 3, 2} {
		f.In(v)
	}
	if got := f.Out(); got != 2 {
		t.Fatalf("Out() = %v after first batch, want 2", got)
	}

	// The window was cleared; partial second batch must not disturb the
	// cached result.
	f.In(100)
	f.In(200)
	if got := f.Out(); got != 2 {
		t.Fatalf("Out() = %v mid-batch, want cached 2", got)
	}

	f.In(300)
	if got := f.Out(); got != 200 {
		t.Fatalf("Out() = %v after second batch, want 200", got)
	}
}

func TestIntervalAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, capacity := range []int{4, 8, 16} {
		f, err := NewInterval(make([]float64, capacity))
		if err != nil {
			t.Fatalf("NewInterval: %v", err)
		}

		batch := make([]float64, 0, capacity-1)
		for step := 0; step < 500; step++ {
			v := float64(rng.Intn(9))
			batch = append(batch, v)
			f.In(v)

			if len(batch) == capacity-1 {
				want := referenceMedian(batch)
				if got := f.Out(); got != want {
					t.Fatalf("capacity %d step %d: Out() = %v, want %v for batch %v",
						capacity, step, got, want, batch)
				}
				batch = batch[:0]
			}
		}
	}
}

func TestIntervalReset(t *testing.T) {
	f, err := NewInterval(make([]float64, 4))
	if err != nil {
		t.Fatalf("NewInterval: %v", err)
	}
	for _, v := range []float64{1, 2, 3} {
		f.In(v)
	}
	if f.Out() == 0 {
		t.Fatal("expected a cached median before Reset")
	}

	f.Reset()
	if got := f.Out(); got != 0 {
		t.Fatalf("Out() = %v after Reset, want 0", got)
	}
}

func TestIntervalUnboundNoOp(t *testing.T) {
	f, err := NewInterval(make([]float64, 4))
	if err != nil {
		t.Fatalf("NewInterval: %v", err)
	}
	if err := f.Rebind(nil); err != nil {
		t.Fatalf("Rebind(nil): %v", err)
	}

	f.In(1)
	if got := f.Out(); got != 0 {
		t.Fatalf("Out() = %v on unbound filter, want 0", got)
	}
	if f.Valid() {
		t.Fatal("Valid() = true on unbound filter")
	}
}

func TestMovingRejectsSpikeTrain(t *testing.T) {
	f, err := NewMoving(make([]float64, 8))
	if err != nil {
		t.Fatalf("NewMoving: %v", err)
	}

	noise := testutil.DeterministicNoise(29, 0.1, 200)
	signal := testutil.SpikeTrain(5, 500, 9, 200)
	for i := range signal {
		signal[i] += noise[i]
	}

	for i, x := range signal {
		f.In(x)
		if i < 7 {
			continue
		}
		if got := f.Out(); got > 6 || got < 4 {
			t.Fatalf("index %d: Out() = %v, spike leaked through", i, got)
		}
	}
}
