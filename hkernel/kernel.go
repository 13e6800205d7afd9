// Package hkernel adapts the handful of dense BLAS/LAPACK primitives the
// hmat engine needs — GEMM, GETRF, TRTRS, a thin QR, and a thin SVD — onto
// gonum's real BLAS/LAPACK bindings. Nothing here is a from-scratch
// numerical routine; every exported function is a thin, validated wrapper
// around blas64/lapack64/mat so the hierarchical-matrix layer above never
// touches raw LAPACK calling conventions directly.
package hkernel

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// kernelErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is/errors.As at call sites. Mirrors the matrixErrorf helper the
// rest of this codebase's ancestry uses for the same purpose.
func kernelErrorf(op string, err error) error {
	return fmt.Errorf("hkernel.%s: %w", op, err)
}

// Gemm computes c <- alpha*a*b + beta*c in place, delegating to blas64.Gemm.
// a must be m×k, b must be k×n, c must be m×n.
func Gemm(alpha float64, a, b *mat.Dense, beta float64, c *mat.Dense) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	cr, cc := c.Dims()
	if ac != br || ar != cr || bc != cc {
		return kernelErrorf("Gemm", ErrShapeMismatch)
	}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha, a.RawMatrix(), b.RawMatrix(), beta, c.RawMatrix())
	return nil
}

// Getrf factorizes c in place into its compact LU form (L strictly below
// the diagonal, U on and above it) using partial pivoting, and returns the
// final 0-based row permutation P such that P*C_original = L*U.
//
// The LAPACK convention returns ipiv as a sequence of row swaps performed
// during elimination rather than a final permutation vector; Getrf applies
// that sequence to an identity ordering so callers receive the composed
// permutation directly (see ipivToPerm).
func Getrf(c *mat.Dense) ([]int, error) {
	m, n := c.Dims()
	if m != n {
		return nil, kernelErrorf("Getrf", ErrNotSquare)
	}
	ipiv := make([]int, m)
	ok := lapack64.Getrf(c.RawMatrix(), ipiv)
	if !ok {
		return nil, kernelErrorf("Getrf", ErrSingular)
	}
	return ipivToPerm(ipiv, m), nil
}

// ipivToPerm converts a LAPACK ipiv swap-sequence (1-indexed-origin swaps
// applied row by row during elimination, as returned in 0-based form by
// lapack64) into the equivalent final permutation vector: perm[i] is the
// original row that now occupies row i.
func ipivToPerm(ipiv []int, m int) []int {
	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < m; i++ {
		j := ipiv[i]
		if j != i {
			perm[i], perm[j] = perm[j], perm[i]
		}
	}
	return perm
}

// Trtrs solves the triangular system a*X = b in place, overwriting b with
// X. a must be square; lower selects the triangle, unitDiag selects
// whether the diagonal is assumed to be all ones.
func Trtrs(lower, unitDiag bool, a, b *mat.Dense) error {
	am, an := a.Dims()
	bm, _ := b.Dims()
	if am != an {
		return kernelErrorf("Trtrs", ErrNotSquare)
	}
	if am != bm {
		return kernelErrorf("Trtrs", ErrShapeMismatch)
	}
	uplo := blas.Upper
	if lower {
		uplo = blas.Lower
	}
	diag := blas.NonUnit
	if unitDiag {
		diag = blas.Unit
	}
	araw := a.RawMatrix()
	tri := blas64.Triangular{
		Uplo:   uplo,
		Diag:   diag,
		N:      araw.Rows,
		Data:   araw.Data,
		Stride: araw.Stride,
	}
	ok := lapack64.Trtrs(blas.NoTrans, tri, b.RawMatrix())
	if !ok {
		return kernelErrorf("Trtrs", ErrSingular)
	}
	return nil
}

// QR returns the thin QR factorization of a: q is m×k, r is k×n, where
// k = min(m,n), and q*r reconstructs a exactly (up to floating point
// error). Built from gonum's full QR by slicing Q to its leading k columns
// and R to its leading k rows, the standard reduction from full to thin QR.
func QR(a *mat.Dense) (q, r *mat.Dense) {
	m, n := a.Dims()
	k := m
	if n < k {
		k = n
	}

	if m < n {
		// gonum's QR only factorizes m >= n: factor the leading m×m block
		// and carry the remaining columns through Q', exact since Q is square.
		var lead mat.QR
		lead.Factorize(a.Slice(0, m, 0, m))
		var qLead, rLead mat.Dense
		lead.QTo(&qLead)
		lead.RTo(&rLead)
		q = mat.NewDense(m, m, nil)
		q.Copy(&qLead)
		r = mat.NewDense(m, n, nil)
		r.Slice(0, m, 0, m).(*mat.Dense).Copy(&rLead)
		r.Slice(0, m, m, n).(*mat.Dense).Mul(q.T(), a.Slice(0, m, m, n))
		return q, r
	}

	var full mat.QR
	full.Factorize(a)

	var qFull mat.Dense
	full.QTo(&qFull)
	q = mat.NewDense(m, k, nil)
	q.Copy(qFull.Slice(0, m, 0, k))

	var rFull mat.Dense
	full.RTo(&rFull)
	r = mat.NewDense(k, n, nil)
	r.Copy(rFull.Slice(0, k, 0, n))

	return q, r
}

// SVD returns the thin singular value decomposition of a: u is m×k, sigma
// has length k in non-increasing order, v is n×k, where k = min(m,n), and
// u*diag(sigma)*v' reconstructs a.
func SVD(a *mat.Dense) (u *mat.Dense, sigma []float64, v *mat.Dense) {
	var svd mat.SVD
	ok := svd.Factorize(a, mat.SVDThin)
	if !ok {
		// Thin SVD factorization only fails on malformed input shapes,
		// which the H-matrix layer above never produces; a panic here
		// signals an engine bug, not a caller-recoverable condition.
		panic("hkernel.SVD: factorization failed")
	}

	var uFull, vFull mat.Dense
	svd.UTo(&uFull)
	svd.VTo(&vFull)
	sigma = svd.Values(nil)

	u = &uFull
	v = &vFull
	return u, sigma, v
}
