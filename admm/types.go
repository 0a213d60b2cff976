// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package admm implements a solver for convex optimization problems posed
// in graph form,
//
//	minimize     f(y) + g(x)
//	subject to   y = A x
//
// where A is a dense m x n matrix and f, g are separable across
// coordinates, via the Alternating Direction Method of Multipliers
// specialized to the graph-form splitting of Parikh & Boyd.
package admm

import (
	"github.com/cpmech/admm/admm/la"
	"github.com/cpmech/admm/admm/prox"
	"github.com/cpmech/gosl/chk"
)

// FunctionObj represents one scalar convex function with affine
// pre-composition and quadratic post-addition:
//
//	phi(x) = c * h(a*x - b) + d*x + (e/2)*x^2
//
// The defaults (a=1, b=0, c=1, d=0, e=0) reduce phi to h itself.
type FunctionObj struct {
	H prox.Kind // the base function discriminator
	A float64   // pre-composition scale; must be nonzero
	B float64   // pre-composition shift
	C float64   // post-scale of h; must be >= 0
	D float64   // linear term coefficient
	E float64   // quadratic term coefficient; must be >= 0
}

// NewFunctionObj returns a FunctionObj for h with the library defaults
// (a=1, b=0, c=1, d=0, e=0).
func NewFunctionObj(h prox.Kind) FunctionObj {
	return FunctionObj{H: h, A: 1, B: 0, C: 1, D: 0, E: 0}
}

// Validate checks the invariants of spec section 3: a != 0, c >= 0, e >= 0,
// and indicator kinds carry only the default c=1, d=0, e=0 (pure
// set-membership, no rescaling of "infinity" makes sense).
func (f FunctionObj) Validate() error {
	if f.A == 0 {
		return chk.Err("FunctionObj(%v): a must be nonzero", f.H)
	}
	if f.C < 0 {
		return chk.Err("FunctionObj(%v): c must be >= 0, got %v", f.H, f.C)
	}
	if f.E < 0 {
		return chk.Err("FunctionObj(%v): e must be >= 0, got %v", f.H, f.E)
	}
	if f.H.IsIndicator() {
		if f.C != 1 || f.D != 0 || f.E != 0 {
			return chk.Err("FunctionObj(%v): indicator kinds require c=1, d=0, e=0; got c=%v d=%v e=%v", f.H, f.C, f.D, f.E)
		}
	}
	return nil
}

// Prox evaluates prox_{phi/rho}(v), reducing the composed function phi to a
// call into the base prox library via the standard shift-scale-unshift
// reparameterization (spec section 4.1):
//
//	rho'   = e + rho
//	v'     = (rho*v - d) / rho'
//	w      = a*v' - b
//	lambda = rho' / (a^2 * c)         (c > 0)
//	u*     = prox_{h/lambda}(w)
//	x*     = (u* + b) / a
//
// When c == 0 the h-term vanishes entirely and phi is purely affine plus
// quadratic, with a direct one-line minimizer.
func (f FunctionObj) Prox(v, rho float64) float64 {
	rhoP := f.E + rho
	vP := (rho*v - f.D) / rhoP
	if f.C == 0 {
		return vP
	}
	w := f.A*vP - f.B
	lambda := rhoP / (f.A * f.A * f.C)
	u := prox.Prox(f.H, w, lambda)
	return (u + f.B) / f.A
}

// Eval evaluates phi(x) = c*h(ax-b) + d*x + (e/2)*x^2. Used only for
// diagnostic objective reporting (spec section 4.1, 4.5).
func (f FunctionObj) Eval(x float64) float64 {
	return f.C*prox.Eval(f.H, f.A*x-f.B) + f.D*x + 0.5*f.E*x*x
}

// Params holds the solver configuration (spec section 3).
type Params struct {
	Rho     float64 // penalty parameter, > 0
	MaxIter int     // iteration cap
	RelTol  float64 // relative tolerance
	AbsTol  float64 // absolute tolerance
	Quiet   bool    // suppress per-iteration diagnostic output
}

// DefaultParams returns the library defaults: rho=1, max_iter=1000,
// rel_tol=1e-3, abs_tol=1e-4, quiet=false.
func DefaultParams() Params {
	return Params{Rho: 1, MaxIter: 1000, RelTol: 1e-3, AbsTol: 1e-4, Quiet: false}
}

// Status reports how Solve terminated.
type Status int

const (
	// Solved means both primal and dual residuals are within tolerance.
	Solved Status = iota
	// MaxIterReached means the iteration cap was hit before convergence;
	// this is not an error, and the partial iterate is still returned.
	MaxIterReached
	// InvalidInput means the problem failed validation before any
	// allocation or iteration took place.
	InvalidInput
	// FactorizationFailed means the one-time Cholesky factorization of
	// I + A^T*A (or I + A*A^T) was not positive definite to working
	// precision; the caller may retry with a larger rho.
	FactorizationFailed
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "Solved"
	case MaxIterReached:
		return "MaxIterReached"
	case InvalidInput:
		return "InvalidInput"
	case FactorizationFailed:
		return "FactorizationFailed"
	}
	return "Unknown"
}

// Data is the problem and solver configuration (spec section 3). A, X, Y
// are caller-owned: A is read-only, X and Y are overwritten with the
// solution on return. One Data must not be used by two concurrent Solve
// calls; distinct Data instances may be solved concurrently.
type Data struct {
	A *la.Matrix // m x n, row-major, read-only

	F []FunctionObj // length m, one per row (coordinate of y)
	G []FunctionObj // length n, one per column (coordinate of x)

	X []float64 // length n, output: primal solution
	Y []float64 // length m, output: A*X, written on return

	Params
}

// M returns the number of rows of A (the length of Y and F).
func (d *Data) M() int { return d.A.Rows }

// N returns the number of columns of A (the length of X and G).
func (d *Data) N() int { return d.A.Cols }
