// SPDX-License-Identifier: MIT

package hmat

import (
	"github.com/arborwell/hmatrix/trunc"
	"gonum.org/v1/gonum/mat"
)

// Add returns a + scale*b as a new H-matrix with a's variant and shape.
// a and b are not mutated.
func Add(a, b *Matrix, scale, eps float64) (*Matrix, error) {
	clone := Copy(a)
	if err := AddInPlace(clone, b, scale, eps); err != nil {
		return nil, err
	}
	return clone, nil
}

// AddInPlace computes a <- a + scale*b, preserving a's block variant.
// Whenever a low-rank result would otherwise grow rank additively, the
// sum is truncated to tolerance eps (see trunc.AddLowRank).
func AddInPlace(a, b *Matrix, scale, eps float64) error {
	if a.m != b.m || a.n != b.n {
		return hmatErrorf("Add", ErrDimensionMismatch)
	}

	switch {
	case a.isDense() && b.isDense():
		ad, bd := a.dense(), b.dense()
		var scaled mat.Dense
		scaled.Scale(scale, bd.C)
		ad.C.Add(ad.C, &scaled)

	case a.isDense() && b.isLowRank():
		ad, bl := a.dense(), b.lowRank()
		if bl.rank() == 0 {
			return nil
		}
		var prod, scaled mat.Dense
		prod.Mul(bl.A, bl.B.T())
		scaled.Scale(scale, &prod)
		ad.C.Add(ad.C, &scaled)

	case a.isDense() && b.isHier():
		return AddInPlace(a, &Matrix{m: b.m, n: b.n, blk: &denseBlock{C: ToDense(b)}}, scale, eps)

	case a.isLowRank() && b.isDense():
		al, bd := a.lowRank(), b.dense()
		var sum mat.Dense
		if al.rank() > 0 {
			sum.Mul(al.A, al.B.T())
		} else {
			sum = *mat.NewDense(a.m, a.n, nil)
		}
		var scaled mat.Dense
		scaled.Scale(scale, bd.C)
		sum.Add(&sum, &scaled)
		na, nb := trunc.Compress(&sum, eps, 0)
		a.blk = &lowRankBlock{A: na, B: nb}

	case a.isLowRank() && b.isLowRank():
		al, bl := a.lowRank(), b.lowRank()
		na, nb := trunc.AddLowRank(al.A, al.B, bl.A, bl.B, scale, eps, 0)
		a.blk = &lowRankBlock{A: na, B: nb}

	case a.isLowRank() && b.isHier():
		return AddInPlace(a, &Matrix{m: b.m, n: b.n, blk: &denseBlock{C: ToDense(b)}}, scale, eps)

	case a.isHier() && b.isDense():
		hb := a.hier()
		bd := b.dense()
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				ri := rowRange(i, hb)
				cj := colRange(j, hb)
				sub := bd.C.Slice(ri[0], ri[1], cj[0], cj[1]).(*mat.Dense)
				subMat := &Matrix{m: ri[1] - ri[0], n: cj[1] - cj[0], blk: &denseBlock{C: sub}}
				if err := AddInPlace(hb.children[i][j], subMat, scale, eps); err != nil {
					return err
				}
			}
		}

	case a.isHier() && b.isLowRank():
		hb := a.hier()
		bl := b.lowRank()
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				ri := rowRange(i, hb)
				cj := colRange(j, hb)
				subA := bl.A.Slice(ri[0], ri[1], 0, bl.rank()).(*mat.Dense)
				subB := bl.B.Slice(cj[0], cj[1], 0, bl.rank()).(*mat.Dense)
				subMat := &Matrix{m: ri[1] - ri[0], n: cj[1] - cj[0], blk: &lowRankBlock{A: subA, B: subB}}
				if err := AddInPlace(hb.children[i][j], subMat, scale, eps); err != nil {
					return err
				}
			}
		}

	default: // both hierarchical
		ha, hb := a.hier(), b.hier()
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if err := AddInPlace(ha.children[i][j], hb.children[i][j], scale, eps); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// rowRange and colRange return the [start,end) bounds of quadrant i/j of a
// hierarchical node's row/column split.
func rowRange(i int, hb *hierBlock) [2]int {
	m := hb.children[0][0].m + hb.children[1][0].m
	if i == 0 {
		return [2]int{0, hb.rowSplit}
	}
	return [2]int{hb.rowSplit, m}
}

func colRange(j int, hb *hierBlock) [2]int {
	n := hb.children[0][0].n + hb.children[0][1].n
	if j == 0 {
		return [2]int{0, hb.colSplit}
	}
	return [2]int{hb.colSplit, n}
}
