// Package average provides smoothing filters with O(1) per-sample updates:
//
//   - [Moving]:   windowed mean with an incrementally maintained sum
//   - [Interval]: batch mean, reported once every interval samples
//   - [Weighted]: linearly weighted windowed mean (newest sample heaviest)
//   - [Exp]:      exponential moving average, alpha = 2/(periods+1)
//   - [Kaufman]:  Kaufman adaptive moving average (KAMA), which scales its
//     smoothing constant by the efficiency ratio of the window
//
// Moving, Weighted, and Kaufman retain their windows in caller-owned ring
// storage; Interval and Exp need no window at all.
package average
