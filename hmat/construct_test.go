package hmat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewDenseRejectsEmpty(t *testing.T) {
	_, err := NewDense(&mat.Dense{})
	require.ErrorIs(t, err, ErrEmptyOperand)
}

func TestNewLowRankRejectsRankMismatch(t *testing.T) {
	a := mat.NewDense(2, 1, nil)
	b := mat.NewDense(3, 2, nil)
	_, err := NewLowRank(a, b)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestNewHierRejectsSplitMismatch(t *testing.T) {
	c11, _ := NewDense(mat.NewDense(2, 2, nil))
	c12, _ := NewDense(mat.NewDense(3, 2, nil))
	c21, _ := NewDense(mat.NewDense(2, 2, nil))
	c22, _ := NewDense(mat.NewDense(2, 2, nil))

	_, err := NewHier(c11, c12, c21, c22)
	require.ErrorIs(t, err, ErrChildSplitMismatch)
}

func TestSizeAndInfo(t *testing.T) {
	h := identity4(t)
	m, n := Size(h)
	require.Equal(t, 4, m)
	require.Equal(t, 4, n)

	info := h.Info()
	require.Equal(t, 4, info.DenseCount)
	require.Equal(t, 2, info.Depth)
}

// identity4 builds a 2-level hierarchical 4x4 identity with dense leaves.
func identity4(t *testing.T) *Matrix {
	t.Helper()
	mk := func(vals []float64) *Matrix {
		m, err := NewDense(mat.NewDense(2, 2, vals))
		require.NoError(t, err)
		return m
	}
	c11 := mk([]float64{1, 0, 0, 1})
	c12 := mk([]float64{0, 0, 0, 0})
	c21 := mk([]float64{0, 0, 0, 0})
	c22 := mk([]float64{1, 0, 0, 1})
	h, err := NewHier(c11, c12, c21, c22)
	require.NoError(t, err)
	return h
}
