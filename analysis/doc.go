// Package analysis provides the optimizer's observability surface:
// timing instrumentation, the Logger interface gating Options.Verbose
// output, and scaling-diff reports comparing a flop/mem map before and
// after a transform (§2 item 9, §5, §9).
//
// None of this changes what PQGraph computes; it exists so a caller
// running with Options.Verbose can see why the optimizer made the moves
// it made, matching the teacher's flow.FlowOptions.Verbose convention.
package analysis
