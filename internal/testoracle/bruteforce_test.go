package testoracle_test

import (
	"testing"

	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/internal/testoracle"
	"github.com/dagbelief/dagbelief/topo"
	"github.com/stretchr/testify/require"
)

func e(from, to int64) graphidx.Edge {
	return graphidx.Edge{From: graphidx.NodeID(from), To: graphidx.NodeID(to)}
}

// TestBruteForceTrivialDiamond reproduces spec.md §8 scenario A exactly:
// expected belief[4] = 0.9639.
func TestBruteForceTrivialDiamond(t *testing.T) {
	edges := []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)}
	idx, err := graphidx.Build(edges)
	require.NoError(t, err)
	layers, _, err := topo.Analyze(idx)
	require.NoError(t, err)

	priors := map[graphidx.NodeID]float64{1: 1, 2: 1, 3: 1, 4: 1}
	edgeProbs := map[graphidx.Edge]float64{
		e(1, 2): 0.9, e(1, 3): 0.9, e(2, 4): 0.9, e(3, 4): 0.9,
	}

	belief, err := testoracle.BruteForce(idx, layers, priors, edgeProbs)
	require.NoError(t, err)
	require.InDelta(t, 0.9639, belief[4], 1e-9)
	require.InDelta(t, 1.0, belief[1], 1e-12)
}

// TestBruteForceIndependentParents reproduces scenario C.
func TestBruteForceIndependentParents(t *testing.T) {
	edges := []graphidx.Edge{e(1, 3), e(2, 3)}
	idx, err := graphidx.Build(edges)
	require.NoError(t, err)
	layers, _, err := topo.Analyze(idx)
	require.NoError(t, err)

	priors := map[graphidx.NodeID]float64{1: 1, 2: 1, 3: 1}
	edgeProbs := map[graphidx.Edge]float64{e(1, 3): 0.8, e(2, 3): 0.6}

	belief, err := testoracle.BruteForce(idx, layers, priors, edgeProbs)
	require.NoError(t, err)
	require.InDelta(t, 0.92, belief[3], 1e-9)
}
