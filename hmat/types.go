// SPDX-License-Identifier: MIT

// Package hmat implements the hierarchical-matrix (H-matrix) node type and
// the block-algebra engine that operates on it: format-preserving
// addition, multiplication, matrix-vector product, triangular solve, and
// block LU factorization with permutation propagation.
//
// An H-matrix is, at every node, exactly one of three things: a dense
// block, a low-rank outer-product block, or a 2×2 partition of four child
// H-matrices. That "exactly one of three" constraint is structural here,
// not merely documented: the block field is a small unexported interface
// and each node holds exactly one concrete implementation of it.
package hmat

import (
	"github.com/arborwell/hmatrix/cluster"
	"gonum.org/v1/gonum/mat"
)

// block is the tagged-union member interface: denseBlock, lowRankBlock,
// and hierBlock are its only implementations. dims reports a block's shape
// without a type switch; Add and Mul read shape from Matrix.m/n instead and
// do not call it.
type block interface {
	dims() (m, n int)
}

// denseBlock stores an exact m×n block.
type denseBlock struct {
	C *mat.Dense
}

func (d *denseBlock) dims() (int, int) { return d.C.Dims() }

// lowRankBlock stores the outer-product approximation A*B' of an m×n
// block, where A is m×k and B is n×k. k == 0 (represented here as both
// factors having zero columns) denotes the zero matrix.
type lowRankBlock struct {
	A, B *mat.Dense
}

func (l *lowRankBlock) dims() (int, int) {
	m, _ := l.A.Dims()
	n, _ := l.B.Dims()
	return m, n
}

// rank returns the number of columns shared by A and B.
func (l *lowRankBlock) rank() int {
	_, k := l.A.Dims()
	return k
}

// hierBlock stores a 2×2 partition of an m×n block into four child
// H-matrices. rowSplit is children[0][0].m, colSplit is children[0][0].n;
// both are cached here so dispatch code does not re-derive them.
type hierBlock struct {
	children           [2][2]*Matrix
	rowSplit, colSplit int
}

func (h *hierBlock) dims() (int, int) {
	top := h.children[0][0].m + h.children[1][0].m
	left := h.children[0][0].n + h.children[0][1].n
	return top, left
}

// Matrix is an H-matrix node: a block of one of the three variants above,
// plus the row/column clusters it was built against (nil if the node was
// constructed directly from data rather than from a cluster tree) and an
// optional composed LU permutation, populated by LUInPlace.
//
// P lives on Matrix itself, not nested inside the dense variant only,
// because LUInPlace composes and stores a permutation on hierarchical
// nodes too: H.P after factorization is meaningful for any variant that
// has been through LUInPlace, and Solve reads it directly regardless of
// whether the node bottomed out in a dense leaf.
type Matrix struct {
	m, n int
	blk  block

	Row, Col *cluster.Node
	P        []int
}

func (h *Matrix) isDense() bool {
	_, ok := h.blk.(*denseBlock)
	return ok
}

func (h *Matrix) isLowRank() bool {
	_, ok := h.blk.(*lowRankBlock)
	return ok
}

func (h *Matrix) isHier() bool {
	_, ok := h.blk.(*hierBlock)
	return ok
}

func (h *Matrix) dense() *denseBlock     { return h.blk.(*denseBlock) }
func (h *Matrix) lowRank() *lowRankBlock { return h.blk.(*lowRankBlock) }
func (h *Matrix) hier() *hierBlock       { return h.blk.(*hierBlock) }
