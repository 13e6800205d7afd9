// SPDX-License-Identifier: MIT

package hmat

import (
	"github.com/arborwell/hmatrix/hkernel"
)

// Side selects which side of the triangular operand b sits on: Left
// solves a*X = b, Right solves X*a = b.
type Side int

const (
	Left Side = iota
	Right
)

// TriSolveInPlace solves the triangular system a*X=b (Left) or X*a=b
// (Right) in place, overwriting b with X. a must be triangular (lower or
// upper, optionally unit-diagonal) and is never low-rank. Any nested
// hierarchical-on-hierarchical recursion rounds its intermediate low-rank
// updates at opts' tolerance (DefaultEpsilon if none is given), so a
// caller factorizing with a tighter WithEpsilon should pass the same
// option here to keep the whole factorization at one tolerance.
func TriSolveInPlace(a, b *Matrix, side Side, lower, unitDiag bool, opts ...Option) error {
	if a.isLowRank() {
		return hmatErrorf("TriSolve", ErrVariantPrecondition)
	}
	o := gatherOptions(opts)

	if side == Right {
		return triSolveRight(a, b, lower, unitDiag, o.eps)
	}
	return triSolveLeft(a, b, lower, unitDiag, o.eps)
}

// triSolveRight reduces X*a=b to a left solve by transposing both
// operands: a'*Y=b' with the triangle flipped, then transposing the
// solution Y back into b. The equation shape genuinely changes between
// sides (b sits on the opposite side of the product), so a transpose
// round trip is the natural reduction here, unlike the left lower/upper
// cases below which are each implemented directly.
func triSolveRight(a, b *Matrix, lower, unitDiag bool, eps float64) error {
	at := Transpose(a)
	bt := Transpose(b)

	if err := triSolveLeft(at, bt, !lower, unitDiag, eps); err != nil {
		return err
	}

	solved := Transpose(bt)
	b.blk = solved.blk
	return nil
}

func triSolveLeft(a, b *Matrix, lower, unitDiag bool, eps float64) error {
	if a.m != a.n || a.n != b.m {
		return hmatErrorf("TriSolve", ErrDimensionMismatch)
	}

	switch {
	case a.isDense() && b.isDense():
		ad, bd := a.dense(), b.dense()
		return hkernel.Trtrs(lower, unitDiag, ad.C, bd.C)

	case a.isDense() && b.isLowRank():
		ad, bl := a.dense(), b.lowRank()
		if bl.rank() == 0 {
			return nil
		}
		return hkernel.Trtrs(lower, unitDiag, ad.C, bl.A)

	case a.isDense() && b.isHier():
		dense := &Matrix{m: b.m, n: b.n, blk: &denseBlock{C: ToDense(b)}}
		if err := triSolveLeft(a, dense, lower, unitDiag, eps); err != nil {
			return err
		}
		b.blk = dense.blk
		return nil

	case a.isHier() && (b.isDense() || b.isLowRank()):
		denseA := &Matrix{m: a.m, n: a.n, blk: &denseBlock{C: ToDense(a)}}
		return triSolveLeft(denseA, b, lower, unitDiag, eps)

	default: // both hierarchical
		return triSolveHierHier(a, b, lower, unitDiag, eps)
	}
}

// triSolveHierHier implements the block forward/back substitution from
// the component design: lower solves top-down using a21, upper solves
// bottom-up using a12. b's two column-children are solved independently
// since the row recursion never mixes columns. eps is the tolerance for
// the Schur-like intermediate updates, threaded from TriSolveInPlace's
// opts rather than hardcoded, so a tighter-tolerance caller (e.g.
// LUInPlace with WithEpsilon) propagates its tolerance into this
// recursion too.
func triSolveHierHier(a, b *Matrix, lower, unitDiag bool, eps float64) error {
	ha, hb := a.hier(), b.hier()

	for j := 0; j < 2; j++ {
		if lower {
			if err := triSolveLeft(ha.children[0][0], hb.children[0][j], lower, unitDiag, eps); err != nil {
				return err
			}
			update, err := Mul(ha.children[1][0], hb.children[0][j], eps)
			if err != nil {
				return err
			}
			if err := AddInPlace(hb.children[1][j], update, -1, eps); err != nil {
				return err
			}
			if err := triSolveLeft(ha.children[1][1], hb.children[1][j], lower, unitDiag, eps); err != nil {
				return err
			}
		} else {
			if err := triSolveLeft(ha.children[1][1], hb.children[1][j], lower, unitDiag, eps); err != nil {
				return err
			}
			update, err := Mul(ha.children[0][1], hb.children[1][j], eps)
			if err != nil {
				return err
			}
			if err := AddInPlace(hb.children[0][j], update, -1, eps); err != nil {
				return err
			}
			if err := triSolveLeft(ha.children[0][0], hb.children[0][j], lower, unitDiag, eps); err != nil {
				return err
			}
		}
	}
	return nil
}
