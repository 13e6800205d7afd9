// SPDX-License-Identifier: MIT
// Package hkernel: sentinel error set.
//
// Every message is prefixed with "hkernel: ..." so calling packages can
// wrap with fmt.Errorf("%s: %w", tag, err) at their own boundary while
// keeping errors.Is matching against these sentinels intact.

package hkernel

import "errors"

var (
	// ErrSingular is returned by Getrf when LU factorization detects a zero
	// pivot, and by Trtrs when the triangular operand is singular.
	ErrSingular = errors.New("hkernel: singular matrix")

	// ErrShapeMismatch is returned when operand dimensions are incompatible
	// with the requested operation (e.g. Gemm with a.Cols != b.Rows).
	ErrShapeMismatch = errors.New("hkernel: shape mismatch")

	// ErrNotSquare is returned when a square operand is required (Getrf,
	// Trtrs) but a rectangular matrix was supplied.
	ErrNotSquare = errors.New("hkernel: matrix is not square")
)
