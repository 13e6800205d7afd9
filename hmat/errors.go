// SPDX-License-Identifier: MIT
// Package hmat: sentinel error set. Every message is prefixed with
// "hmat: ..." for uniform grepping; tests and callers match via errors.Is.
// %w-wrapping at call-site boundaries (via hmatErrorf) preserves the
// sentinel while adding operation context.

package hmat

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// a.Cols != b.Rows in Mul, or mismatched child splits in Add.
	ErrDimensionMismatch = errors.New("hmat: dimension mismatch")

	// ErrVariantPrecondition indicates an operation was called on a block
	// variant it does not support, e.g. a low-rank diagonal block in LU.
	ErrVariantPrecondition = errors.New("hmat: unsupported block variant for operation")

	// ErrChildSplitMismatch indicates a hierarchical node's four children
	// do not agree on their row/column splits.
	ErrChildSplitMismatch = errors.New("hmat: child split mismatch")

	// ErrEmptyOperand indicates a zero-sized matrix was supplied where a
	// positive dimension is required.
	ErrEmptyOperand = errors.New("hmat: empty operand")

	// ErrPermutationCrossesBoundary indicates a row permutation applied to
	// a hierarchical node would move a row across the child-block boundary,
	// which the recursive permutation/LU machinery cannot represent.
	ErrPermutationCrossesBoundary = errors.New("hmat: permutation crosses block boundary")

	// ErrNotFactorized indicates Solve was called on a matrix that has not
	// been through LUInPlace (no permutation recorded).
	ErrNotFactorized = errors.New("hmat: matrix has not been LU-factorized")
)
