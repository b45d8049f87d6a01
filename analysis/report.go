package analysis

import (
	"fmt"
	"strings"

	"github.com/lvlgraph/pqgraph/scaling"
)

// ScalingReport compares a scaling.Map before and after a transform and
// renders a human-readable summary, the kind of line emitted when
// Options.Verbose is set during the substitution loop (§4.7 step 6, §9).
type ScalingReport struct {
	Label   string
	Before  scaling.Map
	After   scaling.Map
	Verdict scaling.Verdict
}

// Compare builds a ScalingReport comparing before and after under label.
func Compare(label string, before, after scaling.Map) ScalingReport {
	return ScalingReport{
		Label:   label,
		Before:  before,
		After:   after,
		Verdict: scaling.Compare(after, before),
	}
}

// Summary renders the report as a single line, e.g.
// "reorder: improved (total 12 -> 9)".
func (r ScalingReport) Summary() string {
	var verdict string
	switch r.Verdict {
	case scaling.ThisBetter:
		verdict = "improved"
	case scaling.OtherBetter:
		verdict = "regressed"
	case scaling.ThisSame:
		verdict = "unchanged"
	default:
		verdict = "incomparable"
	}
	return fmt.Sprintf("%s: %s (total %d -> %d)", r.Label, verdict, r.Before.Total(), r.After.Total())
}

// Log writes the report's Summary through logger.
func (r ScalingReport) Log(logger Logger) {
	if logger == nil {
		logger = Discard
	}
	logger.Printf("%s", r.Summary())
}

// MultiSummary joins several reports' Summary lines, one per line.
func MultiSummary(reports []ScalingReport) string {
	lines := make([]string, len(reports))
	for i, r := range reports {
		lines[i] = r.Summary()
	}
	return strings.Join(lines, "\n")
}
