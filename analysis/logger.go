package analysis

import (
	"log"
	"os"
)

// Logger is the minimal surface Options.Verbose output is written
// through. *log.Logger already satisfies it, so the zero-configuration
// default (Default()) needs no adapter, matching the teacher's
// flow.FlowOptions convention of writing verbose progress straight
// through a *log.Logger rather than introducing a structured-logging
// dependency the rest of the pack does not otherwise use.
type Logger interface {
	Printf(format string, args ...any)
}

// Default returns a Logger writing to stderr with a "pqgraph: " prefix.
func Default() Logger {
	return log.New(os.Stderr, "pqgraph: ", log.LstdFlags)
}

// Discard is a Logger that drops every message; used when Options.Verbose
// is false so call sites never need a nil check.
type discard struct{}

func (discard) Printf(string, ...any) {}

// Discard is the no-op Logger.
var Discard Logger = discard{}
