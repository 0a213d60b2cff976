// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// DenseBackend is the reference Backend for dense, CPU-resident A. It
// delegates gemv/syrk/potrf/potrs to gonum.org/v1/gonum/mat, which wraps
// BLAS/LAPACK-equivalent routines, and axpy/nrm2 to gosl/la's own vector
// helpers, the same ones gofem uses for in-place vector updates and
// Euclidean norms (e.g. fem/e_u_contact.go, shp/shp.go).
type DenseBackend struct{}

// NewDenseBackend returns the default CPU linear-algebra backend.
func NewDenseBackend() *DenseBackend { return &DenseBackend{} }

func (DenseBackend) Gemv(alpha float64, trans bool, a *Matrix, x []float64, beta float64, y []float64) {
	ad := mat.NewDense(a.Rows, a.Cols, a.Data)
	var dst mat.VecDense
	if trans {
		dst.MulVec(ad.T(), mat.NewVecDense(len(x), x))
	} else {
		dst.MulVec(ad, mat.NewVecDense(len(x), x))
	}
	for i := range y {
		y[i] = alpha*dst.AtVec(i) + beta*y[i]
	}
}

func (DenseBackend) Axpy(alpha float64, x, y []float64) {
	la.VecAdd(y, alpha, x)
}

func (DenseBackend) Nrm2(x []float64) float64 {
	return la.VecNorm(x)
}

// Syrk forms G = I + A^T*A (n x n, aTrans==false) or G = I + A*A^T (m x m,
// aTrans==true) via one symmetric-rank-k update, adding the identity to the
// diagonal in place afterwards.
func (DenseBackend) Syrk(a *Matrix, aTrans bool) *SymMatrix {
	ad := mat.NewDense(a.Rows, a.Cols, a.Data)
	n := a.Cols
	var x mat.Matrix = ad.T() // x*x^T == A^T*A
	if aTrans {
		n = a.Rows
		x = ad // x*x^T == A*A^T
	}
	var prod mat.SymDense
	prod.SymOuterK(1, x)
	g := NewSymMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := prod.At(i, j)
			if i == j {
				v += 1
			}
			g.Set(i, j, v)
		}
	}
	return g
}

// cholFactor is the Factor handle returned by DenseBackend.Potrf.
type cholFactor struct {
	chol mat.Cholesky
	n    int
}

func (f *cholFactor) Size() int { return f.n }

func (DenseBackend) Potrf(g *SymMatrix) (Factor, bool) {
	sym := mat.NewSymDense(g.N, g.Data)
	f := &cholFactor{n: g.N}
	ok := f.chol.Factorize(sym)
	if !ok {
		return nil, false
	}
	return f, true
}

func (DenseBackend) Potrs(f Factor, r []float64) []float64 {
	cf, ok := f.(*cholFactor)
	if !ok {
		chk.Panic("la: Potrs called with a Factor not produced by DenseBackend.Potrf")
	}
	var dst mat.VecDense
	if err := cf.chol.SolveVecTo(&dst, mat.NewVecDense(len(r), r)); err != nil {
		chk.Panic("la: Cholesky solve failed: %v", err)
	}
	z := make([]float64, len(r))
	for i := range z {
		z[i] = dst.AtVec(i)
	}
	return z
}
