package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filter/filter"
)

// ErrInvalidSize is returned when a spectrum is requested with fewer than
// two FFT points.
var ErrInvalidSize = errors.New("response: fft size must be at least 2")

// floorDB bounds MagnitudeDB output for zero-magnitude bins.
const floorDB = -300.0

// Capture resets f and returns its response to a unit impulse followed by
// n-1 zeros. It returns nil for n <= 0.
func Capture(f filter.Filter, n int) []float64 {
	if n <= 0 {
		return nil
	}

	f.Reset()

	out := make([]float64, n)
	f.In(1)
	out[0] = f.Out()

	for i := 1; i < n; i++ {
		f.In(0)
		out[i] = f.Out()
	}

	return out
}

// Magnitude returns the single-sided magnitude spectrum of the filter's
// unit-impulse response: bins [0..fftSize/2] of an fftSize-point FFT.
// fftSize must be a power of two >= 2.
func Magnitude(f filter.Filter, fftSize int) ([]float64, error) {
	if fftSize < 2 {
		return nil, ErrInvalidSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}

	impulse := Capture(f, fftSize)

	inData := make([]complex128, fftSize)
	for i, v := range impulse {
		inData[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return nil, fmt.Errorf("response: fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// MagnitudeDB returns the single-sided magnitude spectrum in decibels,
// 20*log10(|X[k]|), with zero bins clamped to -300 dB.
func MagnitudeDB(f filter.Filter, fftSize int) ([]float64, error) {
	mag, err := Magnitude(f, fftSize)
	if err != nil {
		return nil, err
	}

	for i, m := range mag {
		if m <= 0 {
			mag[i] = floorDB
			continue
		}

		db := 20 * math.Log10(m)
		if db < floorDB {
			db = floorDB
		}
		mag[i] = db
	}

	return mag, nil
}
