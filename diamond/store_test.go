package diamond_test

import (
	"context"
	"testing"

	"github.com/dagbelief/dagbelief/diamond"
	"github.com/dagbelief/dagbelief/graphidx"
	"github.com/dagbelief/dagbelief/prob"
	"github.com/stretchr/testify/require"
)

// TestStoreResolveTrivialDiamond covers scenario A at the Store layer: a
// single diamond with no nested sub-diamonds.
func TestStoreResolveTrivialDiamond(t *testing.T) {
	idx, closures, fj := analyze(t, []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)})
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7)}

	root, ok, err := diamond.Identify(idx, closures, fj, priors, n(4))
	require.NoError(t, err)
	require.True(t, ok)

	store := diamond.NewStore()
	entry, err := store.Resolve(context.Background(), priors, root, 4)
	require.NoError(t, err)
	require.Equal(t, n(4), entry.Descriptor.Join)
	require.Empty(t, entry.Nested)
}

// TestStoreResolveNestedDiamond covers scenario B: resolving the outer
// diamond at join 4 must discover and resolve the nested diamond at join 3.
func TestStoreResolveNestedDiamond(t *testing.T) {
	edges := []graphidx.Edge{e(1, 2), e(1, 3), e(2, 3), e(2, 4), e(3, 4)}
	idx, closures, fj := analyze(t, edges)
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7)}

	root, ok, err := diamond.Identify(idx, closures, fj, priors, n(4))
	require.NoError(t, err)
	require.True(t, ok)

	store := diamond.NewStore()
	entry, err := store.Resolve(context.Background(), priors, root, 4)
	require.NoError(t, err)
	require.Len(t, entry.Nested, 1)
	nested, ok := entry.Nested[n(3)]
	require.True(t, ok)
	require.Equal(t, n(3), nested.Descriptor.Join)
}

// TestStoreResolveCachesSharedStructure verifies that two structurally
// identical diamonds resolved in separate calls share one cache entry.
func TestStoreResolveCachesSharedStructure(t *testing.T) {
	edges := []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)}
	idx, closures, fj := analyze(t, edges)
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7)}

	root, ok, err := diamond.Identify(idx, closures, fj, priors, n(4))
	require.NoError(t, err)
	require.True(t, ok)

	store := diamond.NewStore()
	first, err := store.Resolve(context.Background(), priors, root, 4)
	require.NoError(t, err)
	second, err := store.Resolve(context.Background(), priors, root, 4)
	require.NoError(t, err)
	require.Same(t, first, second)
}

// TestResolveAllIndependentRoots resolves two disjoint diamonds concurrently.
func TestResolveAllIndependentRoots(t *testing.T) {
	edgesA := []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)}
	edgesB := []graphidx.Edge{e(11, 12), e(11, 13), e(12, 14), e(13, 14)}
	all := append(append([]graphidx.Edge{}, edgesA...), edgesB...)

	idx, closures, fj := analyze(t, all)
	priors := map[graphidx.NodeID]prob.Value{1: prob.Scalar(0.7), 11: prob.Scalar(0.4)}

	roots, err := diamond.IdentifyAll(idx, closures, fj, priors)
	require.NoError(t, err)
	require.Len(t, roots, 2)

	store := diamond.NewStore()
	entries, err := diamond.ResolveAll(context.Background(), store, priors, roots, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Contains(t, entries, n(4))
	require.Contains(t, entries, n(14))
}

func TestKeyOfIsOrderIndependentOfDiscovery(t *testing.T) {
	d1 := &diamond.Descriptor{
		Join:         n(4),
		HighestNodes: []graphidx.NodeID{1},
		EdgeList:     []graphidx.Edge{e(1, 2), e(1, 3), e(2, 4), e(3, 4)},
	}
	d2 := &diamond.Descriptor{
		Join:         n(4),
		HighestNodes: []graphidx.NodeID{1},
		EdgeList:     []graphidx.Edge{e(3, 4), e(2, 4), e(1, 3), e(1, 2)},
	}
	require.Equal(t, diamond.KeyOf(d1), diamond.KeyOf(d2))
}
