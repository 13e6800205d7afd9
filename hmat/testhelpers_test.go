package hmat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// denseLeaf builds a dense H-matrix leaf from row-major vals, failing the
// test immediately on construction error.
func denseLeaf(t *testing.T, rows, cols int, vals []float64) *Matrix {
	t.Helper()
	h, err := NewDense(mat.NewDense(rows, cols, vals))
	require.NoError(t, err)
	return h
}

// lowRankLeaf builds a low-rank H-matrix leaf from the outer product of a
// and b (its rank is their shared column count), failing the test
// immediately on construction error.
func lowRankLeaf(t *testing.T, a, b *mat.Dense) *Matrix {
	t.Helper()
	h, err := NewLowRank(a, b)
	require.NoError(t, err)
	return h
}

// hier builds a hierarchical H-matrix from four quadrants, failing the
// test immediately on construction error.
func hier(t *testing.T, c11, c12, c21, c22 *Matrix) *Matrix {
	t.Helper()
	h, err := NewHier(c11, c12, c21, c22)
	require.NoError(t, err)
	return h
}

// diagDominant2x2 returns a well-conditioned 2x2 dense leaf seeded from a
// base value so callers building several leaves get distinct, invertible
// blocks without reaching for randomness.
func diagDominant2x2(t *testing.T, base float64) *Matrix {
	t.Helper()
	return denseLeaf(t, 2, 2, []float64{base + 4, 1, 1, base + 5})
}

// buildTwoLevelHMatrix constructs the 8x8, two-level H-matrix used across
// the scenario tests: two 4x4 hierarchical diagonal blocks built from
// dense 2x2 leaves, and two rank-2 low-rank off-diagonal blocks.
func buildTwoLevelHMatrix(t *testing.T) *Matrix {
	t.Helper()

	h11 := hier(t,
		diagDominant2x2(t, 0),
		denseLeaf(t, 2, 2, []float64{0.1, 0.2, 0.3, 0.1}),
		denseLeaf(t, 2, 2, []float64{0.2, 0.1, 0.1, 0.3}),
		diagDominant2x2(t, 1),
	)
	h22 := hier(t,
		diagDominant2x2(t, 2),
		denseLeaf(t, 2, 2, []float64{0.1, 0.1, 0.2, 0.2}),
		denseLeaf(t, 2, 2, []float64{0.2, 0.2, 0.1, 0.1}),
		diagDominant2x2(t, 3),
	)

	h12 := lowRankLeaf(t,
		mat.NewDense(4, 2, []float64{1, 0, 0.5, 0.5, 0, 1, 0.3, 0.2}),
		mat.NewDense(4, 2, []float64{0.2, 0.1, 0.1, 0.2, 0.3, 0.1, 0.1, 0.3}),
	)
	h21 := lowRankLeaf(t,
		mat.NewDense(4, 2, []float64{0.3, 0.1, 0.1, 0.2, 0.2, 0.3, 0.1, 0.1}),
		mat.NewDense(4, 2, []float64{1, 0.2, 0.3, 0.4, 0.1, 0.5, 0.2, 1}),
	)

	return hier(t, h11, h12, h21, h22)
}
