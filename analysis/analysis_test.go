package analysis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/analysis"
	"github.com/lvlgraph/pqgraph/scaling"
	"github.com/lvlgraph/pqgraph/shape"
)

type AnalysisSuite struct {
	suite.Suite
}

func TestAnalysisSuite(t *testing.T) {
	suite.Run(t, new(AnalysisSuite))
}

func (s *AnalysisSuite) TestTimerReportsElapsed() {
	r := require.New(s.T())
	timer := analysis.StartTimer("unit", analysis.Discard)
	time.Sleep(time.Millisecond)
	elapsed := timer.Stop()
	r.Greater(elapsed, time.Duration(0))
}

func (s *AnalysisSuite) TestScalingReportSummarizesImprovement() {
	r := require.New(s.T())
	before := scaling.New()
	before.Add(shape.Shape{VirtActive: 4})
	after := scaling.New()
	after.Add(shape.Shape{VirtActive: 2})

	report := analysis.Compare("reorder", before, after)
	r.Equal(scaling.ThisBetter, report.Verdict)
	r.Contains(report.Summary(), "improved")
}

func (s *AnalysisSuite) TestDiscardLoggerNeverPanics() {
	r := require.New(s.T())
	r.NotPanics(func() {
		analysis.Discard.Printf("%s", "ignored")
	})
}
