package graphidx_test

import (
	"testing"

	"github.com/dagbelief/dagbelief/dagbelieterr"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/stretchr/testify/require"
)

func e(from, to int64) graphidx.Edge {
	return graphidx.Edge{From: graphidx.NodeID(from), To: graphidx.NodeID(to)}
}

func TestBuildDiamond(t *testing.T) {
	idx, err := graphidx.Build([]graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)})
	require.NoError(t, err)
	require.ElementsMatch(t, []graphidx.NodeID{1}, idx.Sources)
	require.Equal(t, []graphidx.NodeID{2, 3}, idx.Outgoing[1])
	require.Equal(t, []graphidx.NodeID{2, 3}, idx.Incoming[4])
}

func TestBuildRejectsSelfLoop(t *testing.T) {
	_, err := graphidx.Build([]graphidx.Edge{e(1, 1)})
	require.ErrorIs(t, err, dagbelieterr.ErrSelfLoop)
}

func TestBuildRejectsDuplicateEdge(t *testing.T) {
	_, err := graphidx.Build([]graphidx.Edge{e(1, 2), e(1, 2)})
	require.ErrorIs(t, err, dagbelieterr.ErrDuplicateEdge)
}

func TestBuildRejectsCycle(t *testing.T) {
	_, err := graphidx.Build([]graphidx.Edge{e(1, 2), e(2, 3), e(3, 1)})
	require.ErrorIs(t, err, dagbelieterr.ErrNotADAG)
}

func TestBuildEmptyEdgeList(t *testing.T) {
	idx, err := graphidx.Build(nil)
	require.NoError(t, err)
	require.Empty(t, idx.Nodes())
	require.Empty(t, idx.Sources)
}

func TestHasNode(t *testing.T) {
	idx, err := graphidx.Build([]graphidx.Edge{e(1, 2)})
	require.NoError(t, err)
	require.True(t, idx.HasNode(1))
	require.True(t, idx.HasNode(2))
	require.False(t, idx.HasNode(3))
}
