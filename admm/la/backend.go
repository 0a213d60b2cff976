// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package la defines the linear-algebra contract the ADMM engine consumes
// and a dense CPU implementation of it. The engine never calls a matrix or
// BLAS/LAPACK routine directly; everything goes through a Backend so the
// same engine code serves a sparse or GPU implementation without change.
package la

import "github.com/cpmech/gosl/chk"

// Matrix is a dense m x n matrix stored row-major, matching the input
// buffer layout of the solver's public entry point: Data[i*Cols+j] == A[i][j].
type Matrix struct {
	Data []float64 // [Rows*Cols] row-major entries
	Rows int        // m
	Cols int        // n
}

// NewMatrix wraps an existing row-major buffer; it does not copy data.
func NewMatrix(data []float64, rows, cols int) *Matrix {
	if len(data) != rows*cols {
		chk.Panic("la: matrix data has length %d; expected %d (%d x %d)", len(data), rows*cols, rows, cols)
	}
	return &Matrix{Data: data, Rows: rows, Cols: cols}
}

// At returns A[i][j].
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.Cols+j] }

// Factor is an opaque handle to a Cholesky factorization produced by Potrf.
// Its only legal use is as an argument to the same Backend's Potrs.
type Factor interface {
	// Size returns the order of the factored system.
	Size() int
}

// Backend is the set of linear-algebra primitives the ADMM engine needs.
// See spec section 4.4: gemv, axpy, nrm2, syrk, potrf, potrs.
type Backend interface {
	// Gemv computes y = alpha*A*x + beta*y, or y = alpha*A^T*x + beta*y when trans is true.
	Gemv(alpha float64, trans bool, a *Matrix, x []float64, beta float64, y []float64)

	// Axpy computes y = alpha*x + y, in place.
	Axpy(alpha float64, x, y []float64)

	// Nrm2 returns the Euclidean norm of x.
	Nrm2(x []float64) float64

	// Syrk forms G = I + A^T*A (n x n) if aTrans is false, or G = I + A*A^T (m x m)
	// if aTrans is true, via a single symmetric-rank-k update plus the identity
	// added to the diagonal in place.
	Syrk(a *Matrix, aTrans bool) *SymMatrix

	// Potrf computes the Cholesky factor L of a symmetric positive-definite
	// matrix G such that L*L^T == G. It reports ok=false if G failed to
	// factor (not positive definite to working precision).
	Potrf(g *SymMatrix) (f Factor, ok bool)

	// Potrs solves L*L^T*z = r by forward/back triangular substitution and
	// returns z. r is not modified.
	Potrs(f Factor, r []float64) []float64
}

// SymMatrix is a dense symmetric matrix stored as its full square form;
// backends are free to only read/write the upper or lower triangle.
type SymMatrix struct {
	Data []float64 // [N*N]
	N    int
}

// NewSymMatrix allocates a zeroed N x N symmetric matrix.
func NewSymMatrix(n int) *SymMatrix {
	return &SymMatrix{Data: make([]float64, n*n), N: n}
}

// At returns G[i][j].
func (g *SymMatrix) At(i, j int) float64 { return g.Data[i*g.N+j] }

// Set assigns G[i][j] = v.
func (g *SymMatrix) Set(i, j int, v float64) { g.Data[i*g.N+j] = v }
