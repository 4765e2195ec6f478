package ring

import "errors"

// ErrInvalidCapacity is returned when the backing storage length is not a
// power of two or is below the minimum usable size of 4 slots.
var ErrInvalidCapacity = errors.New("ring: capacity must be a power of two and at least 4")

// minCapacity is the smallest storage length that makes sense: 1 and 3 are
// not powers of two, and 2 leaves a single usable slot, which is not a
// buffer at all.
const minCapacity = 4

// Buffer is a circular buffer over caller-owned storage. The zero value is
// unbound: every operation on it is a safe no-op that returns defaults.
type Buffer struct {
	data  []float64
	mask  int
	head  int // next write slot
	tail  int // oldest occupied slot
	count int
	wipe  bool
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithSecureWipe zeroes every backing slot when the buffer is bound and on
// each Clear, so stale samples never linger in caller-owned memory.
func WithSecureWipe() Option {
	return func(b *Buffer) {
		b.wipe = true
	}
}

// New returns a Buffer bound to storage. The capacity is len(storage) and
// must be a power of two >= 4; the buffer retains capacity-1 samples.
func New(storage []float64, opts ...Option) (*Buffer, error) {
	b := &Buffer{}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if err := b.Bind(storage); err != nil {
		return nil, err
	}

	return b, nil
}

// Bind rebinds the buffer to new storage and resets it to empty. Passing nil
// unbinds the buffer. On a capacity error the buffer is left unbound, never
// in a partially usable state.
func (b *Buffer) Bind(storage []float64) error {
	b.head = 0
	b.tail = 0
	b.count = 0

	if storage == nil {
		b.data = nil
		b.mask = 0

		return nil
	}

	n := len(storage)
	if n < minCapacity || n&(n-1) != 0 {
		b.data = nil
		b.mask = 0

		return ErrInvalidCapacity
	}

	b.data = storage
	b.mask = n - 1

	if b.wipe {
		b.Erase()
	}

	return nil
}

// PushFront appends value as the newest sample. When the buffer is full the
// oldest sample is silently evicted; callers that need the evicted value
// must read Last() before pushing.
func (b *Buffer) PushFront(value float64) {
	if b.data == nil {
		return
	}

	b.data[b.head] = value
	b.head = (b.head + 1) & b.mask

	if b.head == b.tail {
		b.tail = (b.tail + 1) & b.mask
	} else {
		b.count++
	}
}

// PushBack prepends value as the oldest sample. When the buffer is full the
// newest sample is silently evicted.
func (b *Buffer) PushBack(value float64) {
	if b.data == nil {
		return
	}

	b.tail = (b.tail - 1) & b.mask
	b.data[b.tail] = value

	if b.head == b.tail {
		b.head = (b.head - 1) & b.mask
	} else {
		b.count++
	}
}

// PopFront removes and returns the newest sample. The second return value is
// false when the buffer is empty or unbound.
func (b *Buffer) PopFront() (float64, bool) {
	if b.data == nil || b.head == b.tail {
		return 0, false
	}

	b.head = (b.head - 1) & b.mask
	b.count--

	return b.data[b.head], true
}

// PopBack removes and returns the oldest sample. The second return value is
// false when the buffer is empty or unbound.
func (b *Buffer) PopBack() (float64, bool) {
	if b.data == nil || b.head == b.tail {
		return 0, false
	}

	value := b.data[b.tail]
	b.tail = (b.tail + 1) & b.mask
	b.count--

	return value, true
}

// At returns the sample at logical index i, where 0 is the newest sample and
// Count()-1 the oldest. Out-of-range indexes return 0.
func (b *Buffer) At(i int) float64 {
	if b.data == nil || i < 0 || i >= b.count {
		return 0
	}

	return b.data[(b.head-1-i)&b.mask]
}

// First returns the newest sample, or 0 when empty.
func (b *Buffer) First() float64 {
	if b.data == nil || b.head == b.tail {
		return 0
	}

	return b.data[(b.head-1)&b.mask]
}

// Last returns the oldest sample, or 0 when empty.
func (b *Buffer) Last() float64 {
	if b.data == nil || b.head == b.tail {
		return 0
	}

	return b.data[b.tail]
}

// Full reports whether a further push will evict a sample.
func (b *Buffer) Full() bool {
	return b.data != nil && b.count == b.mask
}

// Empty reports whether the buffer holds no samples.
func (b *Buffer) Empty() bool {
	return b.head == b.tail
}

// Valid reports whether the buffer is bound to storage.
func (b *Buffer) Valid() bool {
	return b.data != nil
}

// Size returns the number of usable slots (capacity - 1), or 0 when unbound.
func (b *Buffer) Size() int {
	return b.mask
}

// Cap returns the raw backing storage length, or 0 when unbound.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Count returns the number of samples currently retained.
func (b *Buffer) Count() int {
	return b.count
}

// Clear resets the buffer to empty without touching the binding. With
// WithSecureWipe the backing slots are zeroed as well.
func (b *Buffer) Clear() {
	b.head = 0
	b.tail = 0
	b.count = 0

	if b.wipe {
		b.Erase()
	}
}

// Erase overwrites every backing slot with 0. The head, tail, and count are
// left untouched, so retained logical samples read back as 0 afterwards.
func (b *Buffer) Erase() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// RotateForward rotates the logical window one position towards the oldest
// sample without copying the window. The head slot is unoccupied on a full
// buffer, so a single swap with the tail slot suffices. No-op unless full.
func (b *Buffer) RotateForward() {
	if b.data == nil || b.count != b.mask {
		return
	}

	b.data[b.head], b.data[b.tail] = b.data[b.tail], b.data[b.head]
	b.head = (b.head + 1) & b.mask
	b.tail = (b.tail + 1) & b.mask
}

// RotateBackward rotates the logical window one position towards the newest
// sample. No-op unless full.
func (b *Buffer) RotateBackward() {
	if b.data == nil || b.count != b.mask {
		return
	}

	newest := (b.head - 1) & b.mask
	b.data[newest], b.data[b.head] = b.data[b.head], b.data[newest]
	b.head = newest
	b.tail = (b.tail - 1) & b.mask
}

// CopyTo copies up to len(dst) samples into dst in newest-first order and
// returns the number copied.
func (b *Buffer) CopyTo(dst []float64) int {
	n := len(dst)
	if n > b.count {
		n = b.count
	}

	for i := 0; i < n; i++ {
		dst[i] = b.data[(b.head-1-i)&b.mask]
	}

	return n
}
