package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SpikeTrain returns a constant baseline signal with outlier spikes of the
// given magnitude every interval samples, starting at index interval-1.
func SpikeTrain(baseline, spike float64, interval, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = baseline
		if interval > 0 && (i+1)%interval == 0 {
			out[i] = spike
		}
	}
	return out
}

// Step returns a signal that holds before for the first edge samples and
// after for the rest.
func Step(before, after float64, edge, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < edge {
			out[i] = before
		} else {
			out[i] = after
		}
	}
	return out
}
