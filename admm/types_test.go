// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"math"
	"testing"

	"github.com/cpmech/admm/admm/prox"
	"github.com/cpmech/gosl/chk"
)

// bruteForceProx minimizes phi(x) = c*h(ax-b) + d*x + (e/2)x^2 + (rho/2)(x-v)^2
// by a coarse golden-section-free grid-then-refine scan, as a generic 1-D
// convex solver independent of the composition rule under test.
func bruteForceProx(f FunctionObj, v, rho float64) float64 {
	obj := func(x float64) float64 {
		return f.Eval(x) + 0.5*rho*(x-v)*(x-v)
	}
	lo, hi := v-50, v+50
	for iter := 0; iter < 60; iter++ {
		step := (hi - lo) / 200
		best, bestObj := lo, math.Inf(1)
		for x := lo; x <= hi; x += step {
			if o := obj(x); o < bestObj {
				bestObj, best = o, x
			}
		}
		lo, hi = best-2*step, best+2*step
	}
	return (lo + hi) / 2
}

func TestFunctionObjReparameterization(tst *testing.T) {
	chk.PrintTitle("FunctionObjReparameterization. composed prox matches a generic 1-D solver")
	cases := []FunctionObj{
		{H: prox.Square, A: 2, B: 1, C: 3, D: 0.5, E: 0.2},
		{H: prox.Abs, A: -1.5, B: 0.3, C: 2, D: -1, E: 0.1},
		{H: prox.MaxPos0, A: 1, B: -1, C: 4, D: 0, E: 0},
		{H: prox.Identity, A: 3, B: 0, C: 1, D: 2, E: 1},
	}
	for _, f := range cases {
		if err := f.Validate(); err != nil {
			tst.Fatalf("test case should be valid: %v", err)
		}
		for _, rho := range []float64{0.1, 1, 10} {
			for _, v := range []float64{-2, 0, 1.7} {
				got := f.Prox(v, rho)
				want := bruteForceProx(f, v, rho)
				if math.Abs(got-want) > 1e-2 {
					tst.Errorf("%v rho=%v v=%v: composed prox=%v, brute force=%v", f.H, rho, v, got, want)
				}
			}
		}
	}
}

func TestFunctionObjValidate(tst *testing.T) {
	chk.PrintTitle("FunctionObjValidate. invariants from spec section 3")
	if err := (FunctionObj{H: prox.Square, A: 0, C: 1}).Validate(); err == nil {
		tst.Errorf("a == 0 should be rejected")
	}
	if err := (FunctionObj{H: prox.Square, A: 1, C: -1}).Validate(); err == nil {
		tst.Errorf("c < 0 should be rejected")
	}
	if err := (FunctionObj{H: prox.Square, A: 1, C: 1, E: -1}).Validate(); err == nil {
		tst.Errorf("e < 0 should be rejected")
	}
	if err := (FunctionObj{H: prox.IndGe0, A: 1, C: 1, D: 0, E: 0}).Validate(); err != nil {
		tst.Errorf("a plain indicator should be valid: %v", err)
	}
	if err := (FunctionObj{H: prox.IndGe0, A: 1, C: 1, D: 1, E: 0}).Validate(); err == nil {
		tst.Errorf("indicator with d != 0 should be rejected")
	}
}
