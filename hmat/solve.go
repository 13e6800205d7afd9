// SPDX-License-Identifier: MIT

package hmat

import "gonum.org/v1/gonum/mat"

// Solve returns H^-1*y for an H-matrix h that has already been through
// LUInPlace. y is not mutated.
func Solve(h *Matrix, y *mat.Dense) (*mat.Dense, error) {
	if h.P == nil {
		return nil, hmatErrorf("Solve", ErrNotFactorized)
	}

	x := mat.DenseCopyOf(y)
	permuteVector(x, h.P)

	if err := forwardSubstitute(h, x); err != nil {
		return nil, err
	}
	if err := backSubstitute(h, x); err != nil {
		return nil, err
	}
	return x, nil
}

// forwardSubstitute solves L*x=x in place, where L is the unit-lower
// factor packed into h's compact LU storage.
func forwardSubstitute(h *Matrix, x *mat.Dense) error {
	if h.isDense() {
		c := h.dense().C
		m, _ := c.Dims()
		for i := 0; i < m; i++ {
			sum := x.At(i, 0)
			for j := 0; j < i; j++ {
				sum -= c.At(i, j) * x.At(j, 0)
			}
			x.Set(i, 0, sum)
		}
		return nil
	}

	hb := h.hier()
	m1 := hb.rowSplit
	x1 := x.Slice(0, m1, 0, 1).(*mat.Dense)
	x2 := x.Slice(m1, h.m, 0, 1).(*mat.Dense)

	if err := forwardSubstitute(hb.children[0][0], x1); err != nil {
		return err
	}
	if err := MatVecInPlace(x2, hb.children[1][0], x1, -1); err != nil {
		return err
	}
	return forwardSubstitute(hb.children[1][1], x2)
}

// backSubstitute solves U*x=x in place, where U is the (non-unit
// diagonal) upper factor packed into h's compact LU storage.
func backSubstitute(h *Matrix, x *mat.Dense) error {
	if h.isDense() {
		c := h.dense().C
		m, n := c.Dims()
		for i := m - 1; i >= 0; i-- {
			sum := x.At(i, 0)
			for j := i + 1; j < n; j++ {
				sum -= c.At(i, j) * x.At(j, 0)
			}
			x.Set(i, 0, sum/c.At(i, i))
		}
		return nil
	}

	hb := h.hier()
	m1 := hb.rowSplit
	x1 := x.Slice(0, m1, 0, 1).(*mat.Dense)
	x2 := x.Slice(m1, h.m, 0, 1).(*mat.Dense)

	if err := backSubstitute(hb.children[1][1], x2); err != nil {
		return err
	}
	if err := MatVecInPlace(x1, hb.children[0][1], x2, -1); err != nil {
		return err
	}
	return backSubstitute(hb.children[0][0], x1)
}
