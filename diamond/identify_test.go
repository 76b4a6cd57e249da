package diamond_test

import (
	"testing"

	"github.com/dagbelief/dagbelief/diamond"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
	"github.com/dagbelief/dagbelief/topo"
	"github.com/stretchr/testify/require"
)

func e(from, to int64) graphidx.Edge {
	return graphidx.Edge{From: graphidx.NodeID(from), To: graphidx.NodeID(to)}
}

func n(id int64) graphidx.NodeID { return graphidx.NodeID(id) }

func analyze(t *testing.T, edges []graphidx.Edge) (*graphidx.Index, *topo.Closures, *topo.ForkJoin) {
	t.Helper()
	idx, err := graphidx.Build(edges)
	require.NoError(t, err)
	_, closures, err := topo.Analyze(idx)
	require.NoError(t, err)
	fj := topo.ForkJoinOf(idx)
	return idx, closures, fj
}

// TestIdentifyTrivialDiamond covers scenario A of spec.md §8:
// edges (1,2),(1,3),(2,4),(3,4), a non-degenerate source prior.
func TestIdentifyTrivialDiamond(t *testing.T) {
	idx, closures, fj := analyze(t, []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)})
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7)}

	d, ok, err := diamond.Identify(idx, closures, fj, priors, n(4))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, n(4), d.Join)
	require.Equal(t, []graphidx.NodeID{1}, d.HighestNodes)
	require.ElementsMatch(t, []graphidx.NodeID{1, 2, 3, 4}, d.RelevantNodes)
	require.Empty(t, d.NonDiamondParents)
}

// TestIdentifyNestedDiamond covers scenario B: (1,2),(1,3),(2,3),(2,4),(3,4).
// Node 3 is itself a join (parents 1 and 2, sharing ancestor 1).
func TestIdentifyNestedDiamond(t *testing.T) {
	idx, closures, fj := analyze(t, []graphidx.Edge{e(1, 2), e(1, 3), e(2, 3), e(2, 4), e(3, 4)})
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7)}

	d3, ok, err := diamond.Identify(idx, closures, fj, priors, n(3))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []graphidx.NodeID{1}, d3.HighestNodes)

	d4, ok, err := diamond.Identify(idx, closures, fj, priors, n(4))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []graphidx.NodeID{1}, d4.HighestNodes)
	require.ElementsMatch(t, []graphidx.NodeID{1, 2, 3, 4}, d4.RelevantNodes)
}

// TestIdentifyNoDiamondIndependentParents covers scenario C: (1,3),(2,3) with
// no shared fork ancestor between 1 and 2.
func TestIdentifyNoDiamondIndependentParents(t *testing.T) {
	idx, closures, fj := analyze(t, []graphidx.Edge{e(1, 3), e(2, 3)})
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(1), 2: prob.Scalar(1)}

	_, ok, err := diamond.Identify(idx, closures, fj, priors, n(3))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIdentifyDegeneratePriorFilter covers scenario D: source 2 has prior 0
// and must be dropped from the candidate set at step 3 of §4.3.
func TestIdentifyDegeneratePriorFilter(t *testing.T) {
	edges := []graphidx.Edge{e(1, 3), e(2, 3), e(1, 4), e(2, 4), e(3, 5), e(4, 5)}
	idx, closures, fj := analyze(t, edges)
	priors := map[graphidx.NodeID]prob.Value{
		1: prob.Scalar(0.7),
		2: prob.Scalar(0),
	}

	d, ok, err := diamond.Identify(idx, closures, fj, priors, n(5))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []graphidx.NodeID{1}, d.HighestNodes)
	require.NotContains(t, d.HighestNodes, graphidx.NodeID(2))
}

// TestIdentifyNoDiamondWhenAllCandidatesDegenerate covers the §4.3 step-3
// edge case where every candidate is filtered out.
func TestIdentifyNoDiamondWhenAllCandidatesDegenerate(t *testing.T) {
	edges := []graphidx.Edge{e(1, 3), e(2, 3), e(1, 4), e(2, 4), e(3, 5), e(4, 5)}
	idx, closures, fj := analyze(t, edges)
	priors := map[graphidx.NodeID]prob.Value{
		1: prob.Scalar(0),
		2: prob.Scalar(1),
	}

	_, ok, err := diamond.Identify(idx, closures, fj, priors, n(5))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIdentifyNonDiamondParents: a join with one diamond-reachable parent and
// one unrelated parent must record the latter as a non-diamond parent.
func TestIdentifyNonDiamondParents(t *testing.T) {
	edges := []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4), e(5, 4)}
	idx, closures, fj := analyze(t, edges)
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7), 5: prob.Scalar(0.7)}

	d, ok, err := diamond.Identify(idx, closures, fj, priors, n(4))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []graphidx.NodeID{5}, d.NonDiamondParents)
}

func TestIdentifyAllIsDeterministicOrder(t *testing.T) {
	edges := []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)}
	idx, closures, fj := analyze(t, edges)
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7)}

	descs, err := diamond.IdentifyAll(idx, closures, fj, priors)
	require.NoError(t, err)
	require.Len(t, descs, 1)
	require.Equal(t, n(4), descs[0].Join)
}
