// SPDX-License-Identifier: MIT

package hmat

import "gonum.org/v1/gonum/mat"

// Mul returns a freshly built H-matrix representing a*b. a.n must equal
// b.m. Neither operand is mutated.
func Mul(a, b *Matrix, eps float64) (*Matrix, error) {
	if a.n != b.m {
		return nil, hmatErrorf("Mul", ErrDimensionMismatch)
	}

	switch {
	case a.isDense() && b.isDense():
		ad, bd := a.dense(), b.dense()
		out := mat.NewDense(a.m, b.n, nil)
		out.Mul(ad.C, bd.C)
		return NewDense(out)

	case a.isDense() && b.isLowRank():
		ad, bl := a.dense(), b.lowRank()
		if bl.rank() == 0 {
			return zeroLowRank(a.m, b.n)
		}
		na := mat.NewDense(a.m, bl.rank(), nil)
		na.Mul(ad.C, bl.A)
		return NewLowRank(na, mat.DenseCopyOf(bl.B))

	case a.isDense() && b.isHier():
		return mulDenseHier(a, b, eps)

	case a.isLowRank() && b.isDense():
		al, bd := a.lowRank(), b.dense()
		if al.rank() == 0 {
			return zeroLowRank(a.m, b.n)
		}
		nb := mat.NewDense(b.n, al.rank(), nil)
		nb.Mul(bd.C.T(), al.B)
		return NewLowRank(mat.DenseCopyOf(al.A), nb)

	case a.isLowRank() && b.isLowRank():
		al, bl := a.lowRank(), b.lowRank()
		if al.rank() == 0 || bl.rank() == 0 {
			return zeroLowRank(a.m, b.n)
		}
		var mid mat.Dense
		mid.Mul(al.B.T(), bl.A)
		nb := mat.NewDense(b.n, al.rank(), nil)
		nb.Mul(bl.B, mid.T())
		return NewLowRank(mat.DenseCopyOf(al.A), nb)

	case a.isLowRank() && b.isHier():
		bd := ToDense(b)
		al := a.lowRank()
		if al.rank() == 0 {
			return zeroLowRank(a.m, b.n)
		}
		nb := mat.NewDense(b.n, al.rank(), nil)
		nb.Mul(bd.T(), al.B)
		return NewLowRank(mat.DenseCopyOf(al.A), nb)

	case a.isHier() && b.isDense():
		return mulHierDense(a, b, eps)

	case a.isHier() && b.isLowRank():
		ad := ToDense(a)
		bl := b.lowRank()
		if bl.rank() == 0 {
			return zeroLowRank(a.m, b.n)
		}
		na := mat.NewDense(a.m, bl.rank(), nil)
		na.Mul(ad, bl.A)
		return NewLowRank(na, mat.DenseCopyOf(bl.B))

	default: // both hierarchical
		return mulHierHier(a, b, eps)
	}
}

func zeroLowRank(m, n int) (*Matrix, error) {
	return NewLowRank(mat.NewDense(m, 1, nil), mat.NewDense(n, 1, nil))
}

// mulDenseHier multiplies a dense operand by a hierarchical one. The dense
// operand is split by COLUMNS at b's row split (the contraction dimension),
// and each half of b's 2×2 grid contributes a sum of two products:
// C[:,j] = aLeft*B[0][j] + aRight*B[1][j]. The result is always dense: a
// dense left-hand operand gives no block structure to preserve.
func mulDenseHier(a, b *Matrix, eps float64) (*Matrix, error) {
	hb := b.hier()
	aLeft := sliceDense(a, 0, a.m, 0, hb.rowSplit)
	aRight := sliceDense(a, 0, a.m, hb.rowSplit, a.n)

	cell := func(j int) (*Matrix, error) {
		left, err := Mul(aLeft, hb.children[0][j], eps)
		if err != nil {
			return nil, err
		}
		right, err := Mul(aRight, hb.children[1][j], eps)
		if err != nil {
			return nil, err
		}
		return Add(left, right, 1, eps)
	}

	leftCol, err := cell(0)
	if err != nil {
		return nil, err
	}
	rightCol, err := cell(1)
	if err != nil {
		return nil, err
	}
	return stackHorizontal(leftCol, rightCol)
}

// mulHierDense is the transpose-shaped case: hierarchical times dense,
// slicing the dense operand by a's column split.
func mulHierDense(a, b *Matrix, eps float64) (*Matrix, error) {
	ha := a.hier()
	bLeft := sliceDense(b, 0, ha.colSplit, 0, b.n)
	bRight := sliceDense(b, ha.colSplit, a.n, 0, b.n)

	c1, err := Mul(ha.children[0][0], bLeft, eps)
	if err != nil {
		return nil, err
	}
	c1b, err := Mul(ha.children[0][1], bRight, eps)
	if err != nil {
		return nil, err
	}
	top, err := Add(c1, c1b, 1, eps)
	if err != nil {
		return nil, err
	}

	c2, err := Mul(ha.children[1][0], bLeft, eps)
	if err != nil {
		return nil, err
	}
	c2b, err := Mul(ha.children[1][1], bRight, eps)
	if err != nil {
		return nil, err
	}
	bot, err := Add(c2, c2b, 1, eps)
	if err != nil {
		return nil, err
	}

	return stackVertical(top, bot)
}

// mulHierHier multiplies two hierarchical operands block by block:
// C[i,j] = sum_k A[i,k]*B[k,j], combined with rounded addition.
func mulHierHier(a, b *Matrix, eps float64) (*Matrix, error) {
	ha, hb := a.hier(), b.hier()

	cell := func(i, j int) (*Matrix, error) {
		left, err := Mul(ha.children[i][0], hb.children[0][j], eps)
		if err != nil {
			return nil, err
		}
		right, err := Mul(ha.children[i][1], hb.children[1][j], eps)
		if err != nil {
			return nil, err
		}
		return Add(left, right, 1, eps)
	}

	c11, err := cell(0, 0)
	if err != nil {
		return nil, err
	}
	c12, err := cell(0, 1)
	if err != nil {
		return nil, err
	}
	c21, err := cell(1, 0)
	if err != nil {
		return nil, err
	}
	c22, err := cell(1, 1)
	if err != nil {
		return nil, err
	}
	return NewHier(c11, c12, c21, c22)
}

// sliceDense returns a dense H-matrix view of a's rows [r0,r1) and columns
// [c0,c1). a must be dense.
func sliceDense(a *Matrix, r0, r1, c0, c1 int) *Matrix {
	ad := a.dense()
	sub := ad.C.Slice(r0, r1, c0, c1).(*mat.Dense)
	return &Matrix{m: r1 - r0, n: c1 - c0, blk: &denseBlock{C: sub}}
}

// stackVertical combines top and bot (which must share column count) into
// a single dense H-matrix, materializing both. Used by mulHierDense where
// the result of a single hierarchical×dense row-block is always dense: the
// dense right-hand operand gives no further block structure to preserve.
func stackVertical(top, bot *Matrix) (*Matrix, error) {
	out := mat.NewDense(top.m+bot.m, top.n, nil)
	out.Slice(0, top.m, 0, top.n).(*mat.Dense).Copy(ToDense(top))
	out.Slice(top.m, top.m+bot.m, 0, top.n).(*mat.Dense).Copy(ToDense(bot))
	return NewDense(out)
}

// stackHorizontal combines left and right (which must share row count) into
// a single dense H-matrix, materializing both. Used by mulDenseHier where
// the result of a dense×hierarchical column-block is always dense: the
// dense left-hand operand gives no further block structure to preserve.
func stackHorizontal(left, right *Matrix) (*Matrix, error) {
	out := mat.NewDense(left.m, left.n+right.n, nil)
	out.Slice(0, left.m, 0, left.n).(*mat.Dense).Copy(ToDense(left))
	out.Slice(0, left.m, left.n, left.n+right.n).(*mat.Dense).Copy(ToDense(right))
	return NewDense(out)
}
