// Package filter defines the streaming contract shared by every filter in
// this module and block-processing helpers built on top of it.
//
// Each filter consumes one sample at a time through In and exposes its
// current output through Out. The two are deliberately decoupled: In is
// cheap (amortized O(1) bookkeeping), while Out may run an O(n) or O(n²)
// scan over the retained window. Callers that only need a result once per
// block therefore pay for it once per block. Out is idempotent: repeated
// calls without an intervening In return bit-identical results.
//
// Concrete filters live in the subpackages:
//
//   - [github.com/cwbudde/algo-filter/filter/median]:    moving and interval nearest-rank median
//   - [github.com/cwbudde/algo-filter/filter/middle]:    nearest-to-midpoint selection
//   - [github.com/cwbudde/algo-filter/filter/frequent]:  most-frequent-occurrence
//   - [github.com/cwbudde/algo-filter/filter/average]:   moving, interval, weighted, exponential, and Kaufman averages
//   - [github.com/cwbudde/algo-filter/filter/onepole]:   first-order low-pass and high-pass IIR
//   - [github.com/cwbudde/algo-filter/filter/calibrate]: piecewise-linear calibration map
package filter
