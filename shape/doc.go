// Package shape implements Shape, the multiset-of-line-kinds abstraction
// used as a cost exponent throughout the engine (§3, §4.1). A Shape is a
// six-component nonnegative tuple (active/inactive occupied, active/
// inactive virtual, sigma, density); addition is componentwise and the
// total order is lexicographic: total rank, then virtual count, then
// occupied count, then the individual buckets.
package shape
