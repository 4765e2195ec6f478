// Package response measures the time- and frequency-domain behavior of
// streaming filters. Capture records a filter's unit-impulse response;
// Magnitude and MagnitudeDB transform that response into a single-sided
// magnitude spectrum.
//
// Nonlinear filters (median, middle, most-frequent) have no transfer
// function in the LTI sense; for those the captured response describes the
// filter's reaction to one isolated spike, which is still a useful
// regression fingerprint.
package response
