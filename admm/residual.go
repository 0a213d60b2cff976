// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"math"

	"github.com/cpmech/admm/admm/la"
)

// residuals holds the primal/dual residuals and their tolerances for one
// ADMM iteration (spec section 4.2).
type residuals struct {
	RPri, RDual   float64
	EpsPri, EpsDual float64
}

// Converged reports whether both residuals are within their tolerances.
func (r residuals) Converged() bool {
	return r.RPri <= r.EpsPri && r.RDual <= r.EpsDual
}

// pairNorm returns the Euclidean norm of the vector formed by
// concatenating a and b, i.e. sqrt(||a||^2 + ||b||^2).
func pairNorm(backend la.Backend, a, b []float64) float64 {
	na := backend.Nrm2(a)
	nb := backend.Nrm2(b)
	return math.Sqrt(na*na + nb*nb)
}

// computeResiduals evaluates the standard ADMM primal/dual residuals and
// tolerances for the graph-form splitting:
//
//	r_pri  = ||x - x~|| + ||y - y~||
//	r_dual = rho * (||x - x_prev|| + ||y - y_prev||)
//	eps_pri  = sqrt(m+n)*abs_tol + rel_tol * max(||(x,y)||, ||(x~,y~)||)
//	eps_dual = sqrt(m+n)*abs_tol + rel_tol * rho * ||(x̄,ȳ)||
func computeResiduals(backend la.Backend, rho, absTol, relTol float64,
	x, y, xTilde, yTilde, xPrev, yPrev, xBar, yBar []float64) residuals {

	m, n := len(y), len(x)
	dx := make([]float64, n)
	dy := make([]float64, m)
	for i := range dx {
		dx[i] = x[i] - xTilde[i]
	}
	for i := range dy {
		dy[i] = y[i] - yTilde[i]
	}
	rPri := backend.Nrm2(dx) + backend.Nrm2(dy)

	dxPrev := make([]float64, n)
	dyPrev := make([]float64, m)
	for i := range dxPrev {
		dxPrev[i] = x[i] - xPrev[i]
	}
	for i := range dyPrev {
		dyPrev[i] = y[i] - yPrev[i]
	}
	rDual := rho * (backend.Nrm2(dxPrev) + backend.Nrm2(dyPrev))

	sqrtMN := math.Sqrt(float64(m + n))
	epsPri := sqrtMN*absTol + relTol*math.Max(pairNorm(backend, x, y), pairNorm(backend, xTilde, yTilde))
	epsDual := sqrtMN*absTol + relTol*rho*pairNorm(backend, xBar, yBar)

	return residuals{RPri: rPri, RDual: rDual, EpsPri: epsPri, EpsDual: epsDual}
}
