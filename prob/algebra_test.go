package prob_test

import (
	"testing"

	"github.com/dagbelief/dagbelief/prob"
	"github.com/stretchr/testify/require"
)

func TestPromoteScalarToInterval(t *testing.T) {
	a := prob.Scalar(0.6)
	b := prob.NewInterval(0.3, 0.9)
	pa, pb := prob.Promote(a, b)
	require.Equal(t, prob.TagInterval, pa.Tag())
	require.Equal(t, prob.TagInterval, pb.Tag())
	lo, hi := pa.Bounds()
	require.Equal(t, 0.6, lo)
	require.Equal(t, 0.6, hi)
}

func TestPromoteToPbox(t *testing.T) {
	a := prob.Scalar(0.5)
	b := prob.NewDegeneratePbox(0.5, 8)
	pa, pb := prob.Promote(a, b)
	require.Equal(t, prob.TagPbox, pa.Tag())
	require.Equal(t, prob.TagPbox, pb.Tag())
}

func TestCheckRangeRejectsOutOfBounds(t *testing.T) {
	err := prob.CheckRange("test", prob.Scalar(1.2), prob.DefaultEpsilon)
	require.ErrorIs(t, err, prob.ErrOutOfRange)
}

func TestCheckRangeAcceptsWithinEpsilon(t *testing.T) {
	err := prob.CheckRange("test", prob.Scalar(1.0+1e-12), prob.DefaultEpsilon)
	require.NoError(t, err)
}

func TestDegenerateMatchesTag(t *testing.T) {
	require.Equal(t, prob.Scalar(1), prob.Degenerate(prob.TagScalar, true))
	require.Equal(t, prob.Scalar(0), prob.Degenerate(prob.TagScalar, false))
	require.Equal(t, prob.NewInterval(1, 1), prob.Degenerate(prob.TagInterval, true))
	require.True(t, prob.Degenerate(prob.TagPbox, false).IsZeroOrOne())
}
