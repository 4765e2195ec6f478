package filter

// Filter is the two-operation data-plane contract every filter implements.
type Filter interface {
	// In feeds one sample into the filter.
	In(value float64)

	// Out returns the current filtered value without consuming input.
	// Filters that have not yet seen enough samples return 0.
	Out() float64

	// Reset clears accumulated state while retaining the current storage
	// binding and tuning parameters.
	Reset()
}

// Apply feeds src through f sample by sample, recording the output after
// each input into dst. It processes min(len(dst), len(src)) samples and
// returns that count.
func Apply(f Filter, dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}

	for i := 0; i < n; i++ {
		f.In(src[i])
		dst[i] = f.Out()
	}

	return n
}

// ApplyInPlace feeds buf through f sample by sample, overwriting each input
// with the filter output. Zero-alloc.
func ApplyInPlace(f Filter, buf []float64) {
	for i, x := range buf {
		f.In(x)
		buf[i] = f.Out()
	}
}
