// SPDX-License-Identifier: MIT

// Package trunc implements SVD-based rank truncation: compressing a dense
// block into a low-rank factor pair (A, B) such that A*B' approximates the
// original within a relative tolerance, and "rounded" addition of two
// low-rank factor pairs that keeps the resulting rank bounded instead of
// growing it additively on every update.
package trunc

import (
	"math"

	"github.com/arborwell/hmatrix/hkernel"
	"gonum.org/v1/gonum/mat"
)

// Compress factorizes c into A*B' with A an m×k matrix, B an n×k matrix,
// and k the smallest rank such that sigma[k]/sigma[0] <= eps, where sigma
// are c's singular values in non-increasing order. If cap is positive and
// smaller than that k, the rank is further limited to cap. A zero matrix
// compresses to a rank-1 pair of zeros, kept at width 1 (rather than 0) so
// callers that assume at least one column stay simple; Compress never
// returns a rank-0 pair (mat.NewDense cannot build one).
func Compress(c *mat.Dense, eps float64, cap int) (a, b *mat.Dense) {
	m, n := c.Dims()

	if isZero(c) {
		return mat.NewDense(m, 1, nil), mat.NewDense(n, 1, nil)
	}

	u, sigma, v := hkernel.SVD(c)

	k := rankAtTolerance(sigma, eps)
	if cap > 0 && k > cap {
		k = cap
	}
	if k == 0 {
		return mat.NewDense(m, 1, nil), mat.NewDense(n, 1, nil)
	}

	a = mat.NewDense(m, k, nil)
	a.Copy(u.Slice(0, m, 0, k))

	b = mat.NewDense(n, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < n; i++ {
			b.Set(i, j, v.At(i, j)*sigma[j])
		}
	}
	return a, b
}

// rankAtTolerance returns the largest index k such that sigma[k-1]/sigma[0]
// > eps (i.e. the number of singular values to keep), or 0 if sigma is
// empty or sigma[0] is zero.
func rankAtTolerance(sigma []float64, eps float64) int {
	if len(sigma) == 0 || sigma[0] == 0 {
		return 0
	}
	k := 0
	for _, s := range sigma {
		if s/sigma[0] > eps {
			k++
		} else {
			break
		}
	}
	return k
}

// AddLowRank computes the rounded sum a1*b1' + scale*a2*b2' and returns a
// new, truncated factor pair (a, b) with rank bounded by k1+k2 (the sum of
// the input ranks) before truncation at tolerance eps. Columns of a2 are
// pre-scaled by scale before concatenation, so the returned factors
// represent the sum directly with no leftover scalar.
//
// The reduction: concatenate columns ([a1|scale*a2], [b1|b2]), QR-factor
// each side, SVD the small product of the two R factors, truncate, then
// carry the truncated singular vectors back through the Q factors. This
// avoids ever forming the full m×n dense sum.
func AddLowRank(a1, b1, a2, b2 *mat.Dense, scale, eps float64, cap int) (a, b *mat.Dense) {
	m, _ := a1.Dims()
	n, _ := b1.Dims()
	k1 := a1.RawMatrix().Cols
	k2 := a2.RawMatrix().Cols

	if k1 == 0 && k2 == 0 {
		return mat.NewDense(m, 1, nil), mat.NewDense(n, 1, nil)
	}

	aCat := mat.NewDense(m, k1+k2, nil)
	aCat.Slice(0, m, 0, k1).(*mat.Dense).Copy(a1)
	scaledA2 := mat.NewDense(m, k2, nil)
	scaledA2.Scale(scale, a2)
	aCat.Slice(0, m, k1, k1+k2).(*mat.Dense).Copy(scaledA2)

	bCat := mat.NewDense(n, k1+k2, nil)
	bCat.Slice(0, n, 0, k1).(*mat.Dense).Copy(b1)
	bCat.Slice(0, n, k1, k1+k2).(*mat.Dense).Copy(b2)

	qa, ra := hkernel.QR(aCat)
	qb, rb := hkernel.QR(bCat)

	var rProd mat.Dense
	rProd.Mul(ra, rb.T())

	u, sigma, v := hkernel.SVD(&rProd)
	k := rankAtTolerance(sigma, eps)
	if cap > 0 && k > cap {
		k = cap
	}
	if k == 0 {
		return mat.NewDense(m, 1, nil), mat.NewDense(n, 1, nil)
	}

	uk := mat.NewDense(u.RawMatrix().Rows, k, nil)
	uk.Copy(u.Slice(0, u.RawMatrix().Rows, 0, k))
	vk := mat.NewDense(v.RawMatrix().Rows, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < v.RawMatrix().Rows; i++ {
			vk.Set(i, j, v.At(i, j)*sigma[j])
		}
	}

	a = mat.NewDense(m, k, nil)
	a.Mul(qa, uk)
	b = mat.NewDense(n, k, nil)
	b.Mul(qb, vk)
	return a, b
}

func isZero(c *mat.Dense) bool {
	m, n := c.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(c.At(i, j)) != 0 {
				return false
			}
		}
	}
	return true
}
