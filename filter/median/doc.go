// Package median provides nearest-rank median filters over a sliding window.
//
// Both filters return an actual element of the window, never an average of
// the two middle elements. On even-sized windows this deliberately differs
// from the textbook interpolated median: the result is the element at rank
// n/2 (0-based) of the sorted window. Selecting a real sample keeps the
// output physically meaningful for sensor streams, where an interpolated
// value may be one the instrument can never produce.
//
// Selection runs by counting rather than sorting: for a candidate element c,
// one scan counts the elements strictly less than c (left) and less than or
// equal to c (right); c is the median iff left <= n/2 < right. Candidates
// already known to lie above or below the median tighten pruning bounds that
// let later candidates be skipped outright. Worst case O(n²), typically much
// less with pruning.
package median
