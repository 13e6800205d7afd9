// SPDX-License-Identifier: MIT

package hmat

import "gonum.org/v1/gonum/mat"

// PermuteInPlace applies row permutation perm (length h.m, perm[i] is the
// source row that now occupies row i) to every descendant of h.
//
// A permutation that would move a row across a hierarchical child's
// boundary cannot be represented by this recursion and is rejected with
// ErrPermutationCrossesBoundary rather than silently truncated or
// panicking: PermuteInPlace is exported for direct use by callers who may
// hand it an arbitrary permutation, not only the engine's own LU output
// (which never crosses a boundary, by construction of partial pivoting
// within a leaf).
func PermuteInPlace(h *Matrix, perm []int) error {
	if len(perm) != h.m {
		return hmatErrorf("Permute", ErrDimensionMismatch)
	}

	switch {
	case h.isDense():
		d := h.dense()
		permuted := mat.NewDense(h.m, h.n, nil)
		for i, p := range perm {
			permuted.SetRow(i, mat.Row(nil, p, d.C))
		}
		d.C.Copy(permuted)

	case h.isLowRank():
		lr := h.lowRank()
		permuted := mat.NewDense(h.m, lr.rank(), nil)
		for i, p := range perm {
			permuted.SetRow(i, mat.Row(nil, p, lr.A))
		}
		lr.A.Copy(permuted)

	default:
		hb := h.hier()
		top := perm[:hb.rowSplit]
		bot := perm[hb.rowSplit:]

		shifted := make([]int, len(bot))
		for i, p := range bot {
			if p < hb.rowSplit {
				return hmatErrorf("Permute", ErrPermutationCrossesBoundary)
			}
			shifted[i] = p - hb.rowSplit
		}
		for _, p := range top {
			if p >= hb.rowSplit {
				return hmatErrorf("Permute", ErrPermutationCrossesBoundary)
			}
		}

		if err := PermuteInPlace(hb.children[0][0], top); err != nil {
			return err
		}
		if err := PermuteInPlace(hb.children[0][1], top); err != nil {
			return err
		}
		if err := PermuteInPlace(hb.children[1][0], shifted); err != nil {
			return err
		}
		if err := PermuteInPlace(hb.children[1][1], shifted); err != nil {
			return err
		}
	}
	return nil
}

// permuteVector applies perm to the plain column vector v in place: used
// by Solve, which permutes a right-hand-side vector rather than an
// H-matrix and so does not go through PermuteInPlace.
func permuteVector(v *mat.Dense, perm []int) {
	permuted := mat.NewDense(v.RawMatrix().Rows, 1, nil)
	for i, p := range perm {
		permuted.Set(i, 0, v.At(p, 0))
	}
	v.Copy(permuted)
}
