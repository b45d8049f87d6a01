// Package line defines Line, the single-index building block of every
// tensor in the engine. A Line carries a label (its printed name) and a
// fixed set of kind bits — occupied/virtual, active/inactive (spin or
// range block), excited-state (sigma), and density-fitting (auxiliary) —
// plus the total order used everywhere two lines need to be compared or
// sorted.
//
// Lines are immutable value types: comparisons, sorting, and renaming all
// return new Lines rather than mutating in place.
package line
