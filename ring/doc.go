// Package ring provides a fixed-capacity circular buffer over caller-owned
// storage, tuned for per-sample streaming use.
//
// The capacity must be a power of two so that every index advance reduces to
// a single bitmask operation: (i ± 1) & mask. There is no modulus and no
// wraparound branch anywhere on the push/pop path. One slot is sacrificed to
// distinguish full from empty, so a buffer bound to 16 slots of storage
// retains at most 15 samples.
//
// The buffer never allocates and never frees: the backing slice is supplied
// by the caller at construction or via [Buffer.Bind], and ownership stays
// with the caller. Index 0 is always the most recently pushed sample and
// index Count()-1 the oldest. Reads outside [0, Count()) return 0 rather
// than panicking; real-time callers that must distinguish "no data" from a
// genuine zero should consult [Buffer.Count] or [Buffer.Valid].
//
// All types in this package are single-goroutine; callers that share a
// buffer across goroutines must serialize access themselves.
package ring
