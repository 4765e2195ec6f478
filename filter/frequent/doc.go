// Package frequent provides a most-frequent-occurrence filter: it returns
// the value that appears most often in the sliding window. It suits slowly
// changing signals with a stable plateau; on rapidly changing input the
// output resembles a staircase.
//
// Alongside the sample window the filter maintains a caller-owned occurrence
// table of (value, count) pairs. The table is kept synchronized with window
// eviction: pushing a sample increments its entry (or claims the first free
// slot), and the entry of an evicted sample is decremented and cleared when
// its count reaches zero. Two invariants hold after every In:
//
//   - the live counts sum to the window count, and
//   - no two live entries share a value.
//
// Ties on the maximum count resolve to the entry found first in table-slot
// order, which is a deterministic artifact of the slot reuse history rather
// than of input order.
package frequent
