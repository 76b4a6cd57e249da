package xhash_test

import (
	"testing"

	"github.com/dagbelief/dagbelief/internal/xhash"
	"github.com/stretchr/testify/require"
)

func TestSum128Deterministic(t *testing.T) {
	a := xhash.Sum128([]byte("join=4|highest=1,2|edges=1-2,1-3,2-4,3-4"))
	b := xhash.Sum128([]byte("join=4|highest=1,2|edges=1-2,1-3,2-4,3-4"))
	require.Equal(t, a, b)
}

func TestSum128DiffersOnInput(t *testing.T) {
	a := xhash.Sum128([]byte("join=4|highest=1"))
	b := xhash.Sum128([]byte("join=4|highest=2"))
	require.NotEqual(t, a, b)
}

func TestSum128HalvesAreDecorrelated(t *testing.T) {
	fp := xhash.Sum128([]byte("some diamond key"))
	require.NotEqual(t, fp.Lo, fp.Hi, "salts should decorrelate the two halves")
}
