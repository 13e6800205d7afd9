// SPDX-License-Identifier: MIT

package hmat

import "gonum.org/v1/gonum/mat"

// MatVec returns scale*h*v as a freshly allocated column vector.
func MatVec(h *Matrix, v *mat.Dense, scale float64) (*mat.Dense, error) {
	r := mat.NewDense(h.m, 1, nil)
	if err := MatVecInPlace(r, h, v, scale); err != nil {
		return nil, err
	}
	return r, nil
}

// MatVecInPlace accumulates r <- r + scale*h*v. r must already have h.m
// rows and v must have h.n rows; both are single-column matrices.
func MatVecInPlace(r *mat.Dense, h *Matrix, v *mat.Dense, scale float64) error {
	if h.n != v.RawMatrix().Rows || h.m != r.RawMatrix().Rows {
		return hmatErrorf("MatVec", ErrDimensionMismatch)
	}

	switch {
	case h.isDense():
		d := h.dense()
		var tmp mat.Dense
		tmp.Mul(d.C, v)
		tmp.Scale(scale, &tmp)
		r.Add(r, &tmp)
	case h.isLowRank():
		lr := h.lowRank()
		if lr.rank() == 0 {
			return nil
		}
		var t mat.Dense
		t.Mul(lr.B.T(), v)
		t.Scale(scale, &t)
		var contrib mat.Dense
		contrib.Mul(lr.A, &t)
		r.Add(r, &contrib)
	default:
		hb := h.hier()
		rTop := r.Slice(0, hb.rowSplit, 0, 1).(*mat.Dense)
		rBot := r.Slice(hb.rowSplit, h.m, 0, 1).(*mat.Dense)
		vLeft := v.Slice(0, hb.colSplit, 0, 1).(*mat.Dense)
		vRight := v.Slice(hb.colSplit, h.n, 0, 1).(*mat.Dense)

		if err := MatVecInPlace(rTop, hb.children[0][0], vLeft, scale); err != nil {
			return err
		}
		if err := MatVecInPlace(rTop, hb.children[0][1], vRight, scale); err != nil {
			return err
		}
		if err := MatVecInPlace(rBot, hb.children[1][0], vLeft, scale); err != nil {
			return err
		}
		if err := MatVecInPlace(rBot, hb.children[1][1], vRight, scale); err != nil {
			return err
		}
	}
	return nil
}
