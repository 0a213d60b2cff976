// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import "math"

const (
	logExpMaxNewton = 10
	logExpMaxBisect = 100
	logExpTol       = 1e-12
)

// proxNegLog: h(x) = -log(x), x>0.  v^2+4/rho > 0 always, so this is
// unconditionally well defined.
func proxNegLog(v, rho float64) float64 {
	return (v + math.Sqrt(v*v+4/rho)) / 2
}

// evalLogExp computes log(1+e^x) without overflow for large |x|.
func evalLogExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		z := math.Exp(-x)
		return 1 / (1 + z)
	}
	z := math.Exp(x)
	return z / (1 + z)
}

// proxLogExp finds the root of g(x) = x - v + (1/rho)*sigma(x), the
// stationarity condition for prox_{LogExp/rho}(v). g is strictly
// increasing (g'(x) = 1 + (1/rho)*sigma(x)*(1-sigma(x)) > 0) so there is
// exactly one root; Newton is warm-started at v and falls back to
// bisection whenever a step would leave the bracket or Newton has not
// converged after logExpMaxNewton iterations, guaranteeing convergence on
// this convex, everywhere-differentiable function.
func proxLogExp(v, rho float64) float64 {
	g := func(x float64) float64 { return x - v + sigmoid(x)/rho }

	lo, hi := v-1-1/rho, v+1+1/rho
	for g(lo) > 0 {
		lo -= 1 + math.Abs(lo)
	}
	for g(hi) < 0 {
		hi += 1 + math.Abs(hi)
	}

	x := v
	for i := 0; i < logExpMaxNewton; i++ {
		gx := g(x)
		if math.Abs(gx) < logExpTol {
			return x
		}
		if gx < 0 {
			lo = x
		} else {
			hi = x
		}
		s := sigmoid(x)
		dgx := 1 + s*(1-s)/rho
		xNext := x - gx/dgx
		if xNext <= lo || xNext >= hi {
			break // Newton left the bracket; fall through to bisection
		}
		x = xNext
	}

	for i := 0; i < logExpMaxBisect; i++ {
		mid := 0.5 * (lo + hi)
		if hi-lo < logExpTol {
			return mid
		}
		if g(mid) < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
