// Package pqgraph implements PQGraph, the orchestrator that ties
// together every lower package into the optimizer described by §3-§9:
// it holds a named set of Equations, runs each term's Reorder, searches
// for and commits common-subexpression substitutions across the whole
// graph (§4.6-§4.7), fuses duplicate intermediates (§4.8), classifies
// intermediates into scalar/reused/temp equations (§4.9), and emits the
// final program text in either dialect (§4.10, §6).
//
// PQGraph is the only package most callers need to import; the methods
// that can fail (AddEquation, AddRawEquation, SubstituteCSE,
// Options.Validate) return a pqerr.Result so failure modes are classified
// rather than merely detected (§7).
package pqgraph
