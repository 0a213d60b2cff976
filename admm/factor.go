// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import "github.com/cpmech/admm/admm/la"

// factorCache is the one-time Cholesky factorization that makes every
// later projection step (spec section 4.2, step 2) a pair of triangular
// solves instead of a fresh linear solve. It is built once per Solve call
// and released at the end, mirroring the factor-once/solve-many pattern of
// a Newton solver that assembles and factors its Jacobian only on the
// first iteration and reuses it thereafter.
type factorCache struct {
	backend la.Backend
	factor  la.Factor
	wide    bool    // true when m < n: factor is m x m via the matrix-inversion lemma
	rho     float64 // rho this factor was built for; must not change across the solve
}

// newFactorCache builds G = I + A^T*A (n x n, when m >= n) or G = I + A*A^T
// (m x m, when m < n) via one symmetric-rank-k update and factors it.
// It reports ok=false if the Cholesky factorization fails, which the caller
// reports as Status FactorizationFailed rather than as a Go error: an
// ill-conditioned A perturbed to indefiniteness by rounding is an expected
// outcome, not a programming mistake.
func newFactorCache(backend la.Backend, a *la.Matrix, rho float64) (*factorCache, bool) {
	wide := a.Rows < a.Cols
	g := backend.Syrk(a, wide)
	f, ok := backend.Potrf(g)
	if !ok {
		return nil, false
	}
	return &factorCache{backend: backend, factor: f, wide: wide, rho: rho}, true
}

// project solves the graph-subspace projection's linear system for a given
// right-hand side s = x~+x̄ + A^T(ỹ+ȳ), returning x such that, together
// with y = A x (computed by the caller), (x, y) is the Euclidean projection
// of (x~+x̄, ỹ+ȳ) onto {(x,y): y = A x}.
func (fc *factorCache) project(a *la.Matrix, s []float64) []float64 {
	if !fc.wide {
		// n x n case: x = (I + A^T A)^-1 s directly.
		return fc.backend.Potrs(fc.factor, s)
	}
	// m x n case (matrix-inversion lemma): x = s - A^T (I + A A^T)^-1 (A s).
	as := make([]float64, a.Rows)
	fc.backend.Gemv(1, false, a, s, 0, as)
	z := fc.backend.Potrs(fc.factor, as)
	x := make([]float64, a.Cols)
	copy(x, s)
	fc.backend.Gemv(-1, true, a, z, 1, x)
	return x
}
