// SPDX-License-Identifier: MIT

package hmat

import "gonum.org/v1/gonum/mat"

// ToDense materializes h into a freshly allocated *mat.Dense. h is not
// mutated; the returned matrix is independently owned.
func ToDense(h *Matrix) *mat.Dense {
	out := mat.NewDense(h.m, h.n, nil)
	writeDense(h, out, 0, 0)
	return out
}

// writeDense writes h's materialized entries into dst at offset (r0,c0).
func writeDense(h *Matrix, dst *mat.Dense, r0, c0 int) {
	switch {
	case h.isDense():
		d := h.dense()
		dst.Slice(r0, r0+h.m, c0, c0+h.n).(*mat.Dense).Copy(d.C)
	case h.isLowRank():
		lr := h.lowRank()
		if lr.rank() == 0 {
			return
		}
		var prod mat.Dense
		prod.Mul(lr.A, lr.B.T())
		dst.Slice(r0, r0+h.m, c0, c0+h.n).(*mat.Dense).Copy(&prod)
	default:
		hb := h.hier()
		writeDense(hb.children[0][0], dst, r0, c0)
		writeDense(hb.children[0][1], dst, r0, c0+hb.colSplit)
		writeDense(hb.children[1][0], dst, r0+hb.rowSplit, c0)
		writeDense(hb.children[1][1], dst, r0+hb.rowSplit, c0+hb.colSplit)
	}
}

// Copy returns a deep, independently owned clone of h: every dense and
// low-rank leaf is cloned, and the hierarchical structure is rebuilt with
// fresh nodes. The clone carries h's permutation and cluster references
// (cluster nodes are treated as shared, immutable collaborators).
func Copy(h *Matrix) *Matrix {
	clone := &Matrix{m: h.m, n: h.n, Row: h.Row, Col: h.Col}
	if h.P != nil {
		clone.P = append([]int(nil), h.P...)
	}
	switch {
	case h.isDense():
		d := h.dense()
		clone.blk = &denseBlock{C: mat.DenseCopyOf(d.C)}
	case h.isLowRank():
		lr := h.lowRank()
		clone.blk = &lowRankBlock{A: mat.DenseCopyOf(lr.A), B: mat.DenseCopyOf(lr.B)}
	default:
		hb := h.hier()
		nb := &hierBlock{rowSplit: hb.rowSplit, colSplit: hb.colSplit}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				nb.children[i][j] = Copy(hb.children[i][j])
			}
		}
		clone.blk = nb
	}
	return clone
}
