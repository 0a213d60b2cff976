// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"math/rand"
	"testing"

	"github.com/cpmech/admm/admm/la"
	"github.com/cpmech/admm/admm/prox"
	"github.com/cpmech/gosl/chk"
)

// buildNNLS constructs a non-negative least-squares problem:
//
//	minimize  (1/2)||A x - b||^2  s.t.  x >= 0
//
// via f = Square with offset b_i (one per row), g = IndGe0 (one per
// column), matching end-to-end scenario 1 of spec section 8.
func buildNNLS(seed int64, m, n int) *Data {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, m*n)
	for i := range data {
		data[i] = rng.Float64() / float64(n)
	}
	a := la.NewMatrix(data, m, n)

	s := make([]float64, n)
	for j := 0; j < n; j++ {
		if j < 2*n/3 {
			s[j] = 1
		} else {
			s[j] = -1
		}
	}
	b := make([]float64, m)
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a.At(i, j) * s[j]
		}
		b[i] = sum + 0.01*rng.NormFloat64()
	}

	f := make([]FunctionObj, m)
	for i := range f {
		fo := NewFunctionObj(prox.Square)
		fo.B = b[i]
		f[i] = fo
	}
	g := make([]FunctionObj, n)
	for j := range g {
		g[j] = NewFunctionObj(prox.IndGe0)
	}

	return &Data{
		A: a, F: f, G: g,
		X: make([]float64, n), Y: make([]float64, m),
		Params: Params{Rho: 1, MaxIter: 1000, RelTol: 1e-3, AbsTol: 1e-4, Quiet: true},
	}
}

func TestSolveNNLS(tst *testing.T) {
	chk.PrintTitle("SolveNNLS. non-negative least squares converges and stays feasible")
	data := buildNNLS(42, 200, 20)
	status, err := Solve(data)
	if err != nil {
		tst.Fatalf("Solve returned an error: %v", err)
	}
	if status != Solved {
		tst.Errorf("expected Solved, got %v", status)
	}
	for i, xi := range data.X {
		if xi < -1e-6 {
			tst.Errorf("x[%d]=%v violates x >= 0 to tolerance", i, xi)
		}
	}
	for i := range data.Y {
		var want float64
		for j := 0; j < data.N(); j++ {
			want += data.A.At(i, j) * data.X[j]
		}
		chk.Scalar(tst, "y == A*x", 1e-6, data.Y[i], want)
	}
}

func TestSolveWideSystem(tst *testing.T) {
	chk.PrintTitle("SolveWideSystem. m < n takes the matrix-inversion-lemma factor path")
	data := buildNNLS(7, 15, 120)
	status, err := Solve(data)
	if err != nil {
		tst.Fatalf("Solve returned an error: %v", err)
	}
	if status != Solved && status != MaxIterReached {
		tst.Errorf("expected Solved or MaxIterReached, got %v", status)
	}
	for i := range data.Y {
		var want float64
		for j := 0; j < data.N(); j++ {
			want += data.A.At(i, j) * data.X[j]
		}
		chk.Scalar(tst, "y == A*x", 1e-5, data.Y[i], want)
	}
}

func TestSolveMaxIterReached(tst *testing.T) {
	chk.PrintTitle("SolveMaxIterReached. a starved iteration cap reports MaxIterReached, not Solved")
	data := buildNNLS(42, 200, 20)
	data.MaxIter = 1
	status, err := Solve(data)
	if err != nil {
		tst.Fatalf("Solve returned an error: %v", err)
	}
	if status != MaxIterReached {
		tst.Errorf("expected MaxIterReached after a single iteration, got %v", status)
	}
}

func TestSolveInvalidInput(tst *testing.T) {
	chk.PrintTitle("SolveInvalidInput. dimension mismatches and bad rho are rejected before iterating")
	a := la.NewMatrix([]float64{1, 0, 0, 1}, 2, 2)

	badF := &Data{
		A: a,
		F: []FunctionObj{NewFunctionObj(prox.Square)}, // len 1, want 2
		G: []FunctionObj{NewFunctionObj(prox.IndGe0), NewFunctionObj(prox.IndGe0)},
		X: make([]float64, 2), Y: make([]float64, 2),
		Params: Params{Rho: 1},
	}
	status, err := Solve(badF)
	if status != InvalidInput || err == nil {
		tst.Errorf("expected InvalidInput with an error, got status=%v err=%v", status, err)
	}

	badRho := &Data{
		A: a,
		F: []FunctionObj{NewFunctionObj(prox.Square), NewFunctionObj(prox.Square)},
		G: []FunctionObj{NewFunctionObj(prox.IndGe0), NewFunctionObj(prox.IndGe0)},
		X: make([]float64, 2), Y: make([]float64, 2),
		Params: Params{Rho: -1},
	}
	status, err = Solve(badRho)
	if status != InvalidInput || err == nil {
		tst.Errorf("expected InvalidInput for rho<=0, got status=%v err=%v", status, err)
	}
}

func TestSolveIndicatorInvariant(tst *testing.T) {
	chk.PrintTitle("SolveIndicatorInvariant. indicator FunctionObj rejects c != 1")
	a := la.NewMatrix([]float64{1, 0, 0, 1}, 2, 2)
	bad := NewFunctionObj(prox.IndGe0)
	bad.C = 2
	data := &Data{
		A: a,
		F: []FunctionObj{NewFunctionObj(prox.Square), NewFunctionObj(prox.Square)},
		G: []FunctionObj{bad, NewFunctionObj(prox.IndGe0)},
		X: make([]float64, 2), Y: make([]float64, 2),
		Params: Params{Rho: 1},
	}
	status, err := Solve(data)
	if status != InvalidInput || err == nil {
		tst.Errorf("expected InvalidInput for a rescaled indicator, got status=%v err=%v", status, err)
	}
}
