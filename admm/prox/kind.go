// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prox implements the closed-form proximal-operator library: for
// each scalar convex function h in the fixed discriminator set, Prox
// evaluates prox_{h/rho}(v) and Eval evaluates h(x). Dispatch is a single
// switch over a small Kind enum rather than a virtual call per coordinate,
// since prox bodies are a handful of arithmetic ops and this is called once
// per coordinate per ADMM iteration.
package prox

import "math"

// Kind discriminates the fixed closed set of base scalar functions h(.)
// supported by the proximal library (spec section 3).
type Kind int

// infeasible is the sentinel Eval returns for indicator functions evaluated
// outside their domain. It is only used for objective reporting, never for
// control flow.
const infeasible = 1e300

const (
	Abs Kind = iota
	Huber
	Identity
	IndBox01
	IndEq0
	IndGe0
	IndLe0
	NegLog
	LogExp
	MaxNeg0
	MaxPos0
	Square
	Zero
)

func (k Kind) String() string {
	switch k {
	case Abs:
		return "Abs"
	case Huber:
		return "Huber"
	case Identity:
		return "Identity"
	case IndBox01:
		return "IndBox01"
	case IndEq0:
		return "IndEq0"
	case IndGe0:
		return "IndGe0"
	case IndLe0:
		return "IndLe0"
	case NegLog:
		return "NegLog"
	case LogExp:
		return "LogExp"
	case MaxNeg0:
		return "MaxNeg0"
	case MaxPos0:
		return "MaxPos0"
	case Square:
		return "Square"
	case Zero:
		return "Zero"
	}
	return "Unknown"
}

// IsIndicator reports whether k is one of the Ind* set-membership kinds,
// whose FunctionObj composition is restricted to c=1, d=0, e=0.
func (k Kind) IsIndicator() bool {
	switch k {
	case IndBox01, IndEq0, IndGe0, IndLe0:
		return true
	}
	return false
}

// Prox computes x* = argmin_x h(x) + (rho/2)(x-v)^2 for the base function h
// named by k, with rho > 0. Callers needing the affine/quadratic composed
// form phi(x) = c.h(ax-b) + dx + (e/2)x^2 use FunctionObj.Prox instead.
func Prox(k Kind, v, rho float64) float64 {
	switch k {
	case Abs:
		return proxAbs(v, rho)
	case Huber:
		return proxHuber(v, rho)
	case Identity:
		return proxIdentity(v, rho)
	case IndBox01:
		return proxIndBox01(v)
	case IndEq0:
		return proxIndEq0(v)
	case IndGe0:
		return proxIndGe0(v)
	case IndLe0:
		return proxIndLe0(v)
	case NegLog:
		return proxNegLog(v, rho)
	case LogExp:
		return proxLogExp(v, rho)
	case MaxNeg0:
		return proxMaxNeg0(v, rho)
	case MaxPos0:
		return proxMaxPos0(v, rho)
	case Square:
		return proxSquare(v, rho)
	case Zero:
		return v
	}
	return v
}

// Eval computes h(x), returning the infeasible sentinel for indicator kinds
// evaluated outside their domain. Used only for diagnostic objective values.
func Eval(k Kind, x float64) float64 {
	switch k {
	case Abs:
		return math.Abs(x)
	case Huber:
		return evalHuber(x)
	case Identity:
		return x
	case IndBox01:
		if x < 0 || x > 1 {
			return infeasible
		}
		return 0
	case IndEq0:
		if x != 0 {
			return infeasible
		}
		return 0
	case IndGe0:
		if x < 0 {
			return infeasible
		}
		return 0
	case IndLe0:
		if x > 0 {
			return infeasible
		}
		return 0
	case NegLog:
		if x <= 0 {
			return infeasible
		}
		return -math.Log(x)
	case LogExp:
		return evalLogExp(x)
	case MaxNeg0:
		return math.Max(0, -x)
	case MaxPos0:
		return math.Max(0, x)
	case Square:
		return 0.5 * x * x
	case Zero:
		return 0
	}
	return 0
}
