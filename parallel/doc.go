// Package parallel provides the bounded worker pool PQGraph's candidate
// scoring runs on (§5): every candidate linkage is scored independently
// against a read-only snapshot of the graph, fanned out through Pool.Run
// and joined back before any shared state (saved_linkages, temp_counts,
// flop_map) is mutated. PQGraph's commit step does not use the pool: it
// substitutes into the equations one at a time.
package parallel
