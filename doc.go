// Package hmatrix is a hierarchical-matrix (H-matrix) arithmetic engine: a
// data-sparse representation of dense matrices as a recursive 2×2 block
// partition where far-field blocks are compressed to low rank and near-field
// blocks are stored densely.
//
// 🚀 What is hmatrix?
//
//	A single-threaded, recursive block-algebra library that brings together:
//		• A tagged-union block model: dense, low-rank, and hierarchical nodes
//		• Block algebra: addition, multiplication, matrix-vector, transpose
//		• Block LU factorization with permutation propagation
//		• Triangular solve (lower/upper, unit/non-unit) against a factorized H-matrix
//		• SVD-based rank truncation to keep compressed blocks compact
//
// ✨ Why choose hmatrix?
//
//   - Format-preserving arithmetic — addition never silently changes an operand's shape
//   - Deterministic — no randomness beyond whatever the BLAS/LAPACK backend introduces at leaves
//   - Built on gonum — GEMM/GETRF/TRTRS/QR/SVD are real BLAS/LAPACK kernels, not hand-rolled loops
//   - Extensible — the cluster tree and dense kernels are consumed as collaborators, not owned
//
// Under the hood, everything is organized under four subpackages:
//
//	cluster/ — binary index-range partition tree consumed (not built) by the engine
//	hkernel/ — dense kernel adapter: Gemm, Getrf, Trtrs, QR, SVD over *mat.Dense
//	trunc/   — SVD-based rank truncation and rounded low-rank addition
//	hmat/    — the H-matrix node type and the block-algebra engine itself
//
// Quick shape example:
//
//	┌──────┬──────┐
//	│ H11  │ H12  │   H11, H22 dense or hierarchical (near-field)
//	├──────┼──────┤   H12, H21 low-rank (far-field, admissible)
//	│ H21  │ H22  │
//	└──────┴──────┘
//
// Out of scope: constructing the cluster tree or admissibility predicates,
// on-disk persistence, cross-block parallelism, and complex-valued entries.
//
//	go get github.com/arborwell/hmatrix/hmat
package hmatrix
