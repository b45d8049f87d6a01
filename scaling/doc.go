// Package scaling implements Map, the Shape→count histogram used
// everywhere a "this contraction schedule is better" decision is made
// (§4.1). PQGraph accumulates one Map for flop cost and one for memory
// cost across the whole graph; Terms and Equations carry no Map of their
// own. The substitution loop (§4.7) compares the Map before and after a
// candidate commit to decide whether to keep it.
package scaling
