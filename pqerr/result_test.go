package pqerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lvlgraph/pqgraph/pqerr"
)

type ResultSuite struct {
	suite.Suite
}

func TestResultSuite(t *testing.T) {
	suite.Run(t, new(ResultSuite))
}

func (s *ResultSuite) TestOkIsZeroValue() {
	r := require.New(s.T())
	var zero pqerr.Result
	r.True(zero.IsOk())
	r.Equal("", zero.Error())
}

func (s *ResultSuite) TestWrappedErrorsUnwrap() {
	r := require.New(s.T())
	base := errors.New("unknown tensor letter")
	res := pqerr.Malformed(base)
	r.False(res.IsOk())
	r.ErrorIs(res, base)
	r.Contains(res.Error(), "malformed_input")
}

func (s *ResultSuite) TestKindStrings() {
	r := require.New(s.T())
	r.Equal("ok", pqerr.Ok.String())
	r.Equal("capacity_reached", pqerr.CapacityReached.String())
	r.Equal("logic_error", pqerr.LogicError.String())
}
