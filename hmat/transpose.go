// SPDX-License-Identifier: MIT

package hmat

import "gonum.org/v1/gonum/mat"

// Transpose returns a new H-matrix representing h'. h is not mutated. A
// transposed factorization is not itself a valid LU factorization, so the
// result never carries a permutation even if h does.
func Transpose(h *Matrix) *Matrix {
	clone := &Matrix{m: h.n, n: h.m, Row: h.Col, Col: h.Row}
	switch {
	case h.isDense():
		d := h.dense()
		clone.blk = &denseBlock{C: mat.DenseCopyOf(d.C.T())}
	case h.isLowRank():
		lr := h.lowRank()
		clone.blk = &lowRankBlock{A: mat.DenseCopyOf(lr.B), B: mat.DenseCopyOf(lr.A)}
	default:
		hb := h.hier()
		nb := &hierBlock{rowSplit: hb.colSplit, colSplit: hb.rowSplit}
		nb.children[0][0] = Transpose(hb.children[0][0])
		nb.children[0][1] = Transpose(hb.children[1][0])
		nb.children[1][0] = Transpose(hb.children[0][1])
		nb.children[1][1] = Transpose(hb.children[1][1])
		clone.blk = nb
	}
	return clone
}
