// SPDX-License-Identifier: MIT

package hmat

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func hmatErrorf(op string, err error) error {
	return fmt.Errorf("hmat.%s: %w", op, err)
}

// NewDense wraps c as a dense H-matrix leaf. c is not copied; callers that
// need an independent node should pass a clone.
func NewDense(c *mat.Dense) (*Matrix, error) {
	m, n := c.Dims()
	if m == 0 || n == 0 {
		return nil, hmatErrorf("NewDense", ErrEmptyOperand)
	}
	return &Matrix{m: m, n: n, blk: &denseBlock{C: c}}, nil
}

// NewLowRank wraps the outer-product pair (a, b) as a low-rank H-matrix
// leaf representing a*b'. a and b must share the same number of columns
// (the rank). Since mat.NewDense rejects a zero column count, the zero
// matrix is represented at rank 1 with an all-zero column rather than at
// rank 0 (see trunc.Compress); the rank()==0 guards elsewhere in this
// package exist for completeness but are not reachable through this
// constructor.
func NewLowRank(a, b *mat.Dense) (*Matrix, error) {
	am, ak := a.Dims()
	bm, bk := b.Dims()
	if am == 0 || bm == 0 {
		return nil, hmatErrorf("NewLowRank", ErrEmptyOperand)
	}
	if ak != bk {
		return nil, hmatErrorf("NewLowRank", ErrDimensionMismatch)
	}
	return &Matrix{m: am, n: bm, blk: &lowRankBlock{A: a, B: b}}, nil
}

// NewHier assembles a hierarchical H-matrix from its four quadrants. The
// quadrants must agree pairwise on their shared dimension: c11 and c12
// must have the same row count, c11 and c21 the same column count, and so
// on around the 2×2 grid.
func NewHier(c11, c12, c21, c22 *Matrix) (*Matrix, error) {
	if c11.m != c12.m {
		return nil, hmatErrorf("NewHier", ErrChildSplitMismatch)
	}
	if c21.m != c22.m {
		return nil, hmatErrorf("NewHier", ErrChildSplitMismatch)
	}
	if c11.n != c21.n {
		return nil, hmatErrorf("NewHier", ErrChildSplitMismatch)
	}
	if c12.n != c22.n {
		return nil, hmatErrorf("NewHier", ErrChildSplitMismatch)
	}

	h := &hierBlock{rowSplit: c11.m, colSplit: c11.n}
	h.children[0][0] = c11
	h.children[0][1] = c12
	h.children[1][0] = c21
	h.children[1][1] = c22

	m := c11.m + c21.m
	n := c11.n + c12.n
	return &Matrix{m: m, n: n, blk: h}, nil
}
