package response_test

import (
	"testing"

	"github.com/cwbudde/algo-filter/filter/calibrate"
	"github.com/cwbudde/algo-filter/filter/onepole"
	"github.com/cwbudde/algo-filter/internal/testutil"
	"github.com/cwbudde/algo-filter/measure/response"
)

func TestCaptureLowPass(t *testing.T) {
	l, err := onepole.NewLowPass(0.5, 0)
	if err != nil {
		t.Fatalf("NewLowPass: %v", err)
	}

	got := response.Capture(l, 5)
	want := []float64{1, 0.5, 0.25, 0.125, 0.0625}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestCaptureResetsFilter(t *testing.T) {
	l, err := onepole.NewLowPass(0.5, 0)
	if err != nil {
		t.Fatalf("NewLowPass: %v", err)
	}

	// Pre-existing state must not leak into the capture.
	for i := 0; i < 50; i++ {
		l.In(1000)
	}

	got := response.Capture(l, 3)
	want := []float64{1, 0.5, 0.25}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestCaptureInvalidLength(t *testing.T) {
	l, err := onepole.NewLowPass(0.5, 0)
	if err != nil {
		t.Fatalf("NewLowPass: %v", err)
	}

	if got := response.Capture(l, 0); got != nil {
		t.Fatalf("Capture(0) = %v, want nil", got)
	}
	if got := response.Capture(l, -3); got != nil {
		t.Fatalf("Capture(-3) = %v, want nil", got)
	}
}

func TestMagnitudePassThroughIsFlat(t *testing.T) {
	// With no calibration curve the filter is an identity: its impulse
	// response is a unit impulse and the spectrum is flat at 1.
	f := calibrate.New(nil)

	mag, err := response.Magnitude(f, 64)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}

	if len(mag) != 33 {
		t.Fatalf("len(mag) = %d, want 33", len(mag))
	}

	want := make([]float64, len(mag))
	for i := range want {
		want[i] = 1
	}
	testutil.RequireSliceNearlyEqual(t, mag, want, 1e-9)
}

func TestMagnitudeLowPassShape(t *testing.T) {
	l, err := onepole.NewLowPass(0.5, 0)
	if err != nil {
		t.Fatalf("NewLowPass: %v", err)
	}

	mag, err := response.Magnitude(l, 64)
	if err != nil {
		t.Fatalf("Magnitude: %v", err)
	}
	testutil.RequireFinite(t, mag)

	// DC gain is the sum of the impulse response, a geometric series
	// converging to 2 for alpha 0.5.
	testutil.RequireNearlyEqual(t, mag[0], 2, 1e-9)

	// A one-pole lowpass magnitude decreases monotonically with frequency.
	for i := 1; i < len(mag); i++ {
		if mag[i] > mag[i-1]+1e-12 {
			t.Fatalf("bin %d: magnitude %v rose above bin %d: %v", i, mag[i], i-1, mag[i-1])
		}
	}
}

func TestMagnitudeDBPassThrough(t *testing.T) {
	f := calibrate.New(nil)

	db, err := response.MagnitudeDB(f, 32)
	if err != nil {
		t.Fatalf("MagnitudeDB: %v", err)
	}

	want := make([]float64, len(db))
	testutil.RequireSliceNearlyEqual(t, db, want, 1e-9)
}

func TestMagnitudeInvalidSize(t *testing.T) {
	l, err := onepole.NewLowPass(0.5, 0)
	if err != nil {
		t.Fatalf("NewLowPass: %v", err)
	}

	if _, err := response.Magnitude(l, 1); err != response.ErrInvalidSize {
		t.Fatalf("Magnitude(1) err = %v, want ErrInvalidSize", err)
	}
	if _, err := response.Magnitude(l, 0); err != response.ErrInvalidSize {
		t.Fatalf("Magnitude(0) err = %v, want ErrInvalidSize", err)
	}
}
