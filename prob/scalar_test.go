package prob_test

import (
	"testing"

	"github.com/dagbelief/dagbelief/prob"
	"github.com/stretchr/testify/require"
)

func TestScalarMul(t *testing.T) {
	a := prob.Scalar(0.9)
	b := prob.Scalar(0.8)
	v, err := a.Mul(b)
	require.NoError(t, err)
	require.InDelta(t, 0.72, float64(v.(prob.Scalar)), 1e-12)
}

func TestScalarComp(t *testing.T) {
	a := prob.Scalar(0.3)
	require.InDelta(t, 0.7, float64(a.Comp().(prob.Scalar)), 1e-12)
}

func TestScalarIsZeroOrOne(t *testing.T) {
	require.True(t, prob.Scalar(0).IsZeroOrOne())
	require.True(t, prob.Scalar(1).IsZeroOrOne())
	require.False(t, prob.Scalar(0.5).IsZeroOrOne())
}

func TestScalarMulTagMismatch(t *testing.T) {
	_, err := prob.Scalar(0.5).Mul(prob.NewInterval(0, 1))
	require.Error(t, err)
}

func TestScalarInRange(t *testing.T) {
	require.True(t, prob.Scalar(0.5).InRange(prob.DefaultEpsilon))
	require.False(t, prob.Scalar(1.5).InRange(prob.DefaultEpsilon))
}
