// SPDX-License-Identifier: MIT

package hmat

import "github.com/arborwell/hmatrix/hkernel"

// LUInPlace factorizes h in place into compact LU form: dense leaves are
// overwritten with L (strictly below the diagonal, unit diagonal implied)
// and U (on and above the diagonal) packed into the same storage, and the
// composed row permutation is recorded on h.P (and on each diagonal
// child's own P, since the recursive LUInPlace calls on h11 and h22 set
// that child's P too; the off-diagonal children get no P).
//
// A low-rank diagonal block is a precondition violation: a block that sits
// on the diagonal of the recursion must be dense or hierarchical.
func LUInPlace(h *Matrix, opts ...Option) error {
	o := gatherOptions(opts)

	if h.isLowRank() {
		return hmatErrorf("LU", ErrVariantPrecondition)
	}

	if h.isDense() {
		d := h.dense()
		perm, err := hkernel.Getrf(d.C)
		if err != nil {
			return hmatErrorf("LU", err)
		}
		h.P = perm
		return nil
	}

	hb := h.hier()
	h11, h12 := hb.children[0][0], hb.children[0][1]
	h21, h22 := hb.children[1][0], hb.children[1][1]
	m1 := hb.rowSplit

	if err := LUInPlace(h11, opts...); err != nil {
		return err
	}
	if err := PermuteInPlace(h12, h11.P); err != nil {
		return err
	}
	if err := TriSolveInPlace(h11, h12, Left, true, true, opts...); err != nil {
		return err
	}
	if err := TriSolveInPlace(h11, h21, Right, false, false, opts...); err != nil {
		return err
	}

	schur, err := Mul(h21, h12, o.eps)
	if err != nil {
		return err
	}
	if err := AddInPlace(h22, schur, -1, o.eps); err != nil {
		return err
	}

	if err := LUInPlace(h22, opts...); err != nil {
		return err
	}
	if err := PermuteInPlace(h21, h22.P); err != nil {
		return err
	}

	h.P = make([]int, h.m)
	copy(h.P, h11.P)
	for i, p := range h22.P {
		h.P[m1+i] = p + m1
	}
	return nil
}
