package analysis

import (
	"time"
)

// Timer measures the wall-clock duration of one optimizer stage (Reorder,
// a CSE batch, final emission, ...) and reports it through a Logger when
// Stop is called, if the Logger is not Discard.
type Timer struct {
	label  string
	logger Logger
	start  time.Time
}

// StartTimer begins timing label, logging through logger on Stop.
func StartTimer(label string, logger Logger) *Timer {
	if logger == nil {
		logger = Discard
	}
	return &Timer{label: label, logger: logger, start: time.Now()}
}

// Stop logs the elapsed duration and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Printf("%s took %s", t.label, elapsed)
	return elapsed
}
