package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLeaf(t *testing.T) {
	n := NewLeaf(0, 3)
	require.Equal(t, 4, n.N())
	require.True(t, n.IsLeaf())
}

func TestNewLeafInvalidRangePanics(t *testing.T) {
	require.Panics(t, func() { NewLeaf(3, 0) })
}

func TestJoin(t *testing.T) {
	left := NewLeaf(0, 1)
	right := NewLeaf(2, 3)
	root := Join(left, right)

	require.False(t, root.IsLeaf())
	require.Equal(t, 4, root.N())
	require.Same(t, left, root.Left)
	require.Same(t, right, root.Right)
}

func TestJoinNonContiguousPanics(t *testing.T) {
	left := NewLeaf(0, 1)
	right := NewLeaf(3, 4)
	require.Panics(t, func() { Join(left, right) })
}

func TestJoinRecursive(t *testing.T) {
	leaves := []*Node{NewLeaf(0, 0), NewLeaf(1, 1), NewLeaf(2, 2), NewLeaf(3, 3)}
	l := Join(leaves[0], leaves[1])
	r := Join(leaves[2], leaves[3])
	root := Join(l, r)

	require.Equal(t, 0, root.S)
	require.Equal(t, 3, root.E)
	require.Equal(t, 4, root.N())
}
