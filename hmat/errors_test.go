package hmat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestLURejectsLowRankDiagonal(t *testing.T) {
	lr := lowRankLeaf(t, mat.NewDense(2, 1, []float64{1, 2}), mat.NewDense(2, 1, []float64{3, 4}))
	require.ErrorIs(t, LUInPlace(lr), ErrVariantPrecondition)
}

func TestTriSolveRejectsLowRankTriangle(t *testing.T) {
	a := lowRankLeaf(t, mat.NewDense(2, 1, []float64{1, 2}), mat.NewDense(2, 1, []float64{3, 4}))
	b := denseLeaf(t, 2, 2, []float64{1, 0, 0, 1})
	require.ErrorIs(t, TriSolveInPlace(a, b, Left, true, true), ErrVariantPrecondition)
}

func TestSolveRejectsUnfactorized(t *testing.T) {
	h := denseLeaf(t, 2, 2, []float64{1, 0, 0, 1})
	_, err := Solve(h, mat.NewDense(2, 1, []float64{1, 1}))
	require.ErrorIs(t, err, ErrNotFactorized)
}

func TestAddRejectsDimensionMismatch(t *testing.T) {
	a := denseLeaf(t, 2, 2, []float64{1, 0, 0, 1})
	b := denseLeaf(t, 3, 3, nil)
	require.ErrorIs(t, AddInPlace(a, b, 1, 1e-6), ErrDimensionMismatch)
}

func TestMulRejectsDimensionMismatch(t *testing.T) {
	a := denseLeaf(t, 2, 3, nil)
	b := denseLeaf(t, 2, 2, nil)
	_, err := Mul(a, b, 1e-6)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPermuteRejectsCrossingBoundary(t *testing.T) {
	h := hier(t,
		denseLeaf(t, 2, 2, []float64{1, 0, 0, 1}),
		denseLeaf(t, 2, 2, nil),
		denseLeaf(t, 2, 2, nil),
		denseLeaf(t, 2, 2, []float64{1, 0, 0, 1}),
	)
	require.ErrorIs(t, PermuteInPlace(h, []int{2, 1, 0, 3}), ErrPermutationCrossesBoundary)
}
