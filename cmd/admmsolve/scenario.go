// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/cpmech/admm/admm"
	"github.com/cpmech/admm/admm/la"
	"github.com/cpmech/admm/admm/prox"
	"github.com/cpmech/gosl/chk"
)

// buildScenario synthesizes an in-memory admm.Data for one of the example
// problems of spec section 8. This driver is explicitly out of the core's
// scope (spec section 1: "test/example drivers that synthesize random
// problems... merely populate the solver's input structure"); it exists to
// exercise Solve end to end the way gofem's examples/ directory exercises
// a Simulation end to end.
func buildScenario(cfg *runConfig) *admm.Data {
	switch cfg.Scenario {
	case "nnls":
		return buildNNLS(cfg)
	case "lasso":
		return buildLasso(cfg)
	}
	chk.Panic("unknown scenario %q; expected \"nnls\" or \"lasso\"", cfg.Scenario)
	return nil
}

// buildNNLS builds end-to-end scenario 1: non-negative least squares.
//
//	minimize  (1/2)||A x - b||^2  s.t.  x >= 0
func buildNNLS(cfg *runConfig) *admm.Data {
	rng := rand.New(rand.NewSource(cfg.Seed))
	m, n := cfg.M, cfg.N
	adata := make([]float64, m*n)
	for i := range adata {
		adata[i] = rng.Float64() / float64(n)
	}
	a := la.NewMatrix(adata, m, n)

	s := make([]float64, n)
	split := 2 * n / 3
	for j := range s {
		if j < split {
			s[j] = 1
		} else {
			s[j] = -1
		}
	}

	f := make([]admm.FunctionObj, m)
	for i := range f {
		var b float64
		for j := 0; j < n; j++ {
			b += a.At(i, j) * s[j]
		}
		b += 0.01 * rng.NormFloat64()
		fo := admm.NewFunctionObj(prox.Square)
		fo.B = b
		f[i] = fo
	}
	g := make([]admm.FunctionObj, n)
	for j := range g {
		g[j] = admm.NewFunctionObj(prox.IndGe0)
	}

	return &admm.Data{
		A: a, F: f, G: g,
		X: make([]float64, n), Y: make([]float64, m),
		Params: admm.Params{Rho: cfg.Rho, MaxIter: cfg.MaxIter, RelTol: cfg.RelTol, AbsTol: cfg.AbsTol, Quiet: cfg.Quiet},
	}
}

// buildLasso builds end-to-end scenario 5: lasso regression.
//
//	minimize  (1/2)||A x - b||^2 + lambda ||x||_1
func buildLasso(cfg *runConfig) *admm.Data {
	rng := rand.New(rand.NewSource(cfg.Seed))
	m, n := cfg.M, cfg.N
	adata := make([]float64, m*n)
	for i := range adata {
		adata[i] = rng.NormFloat64() / float64(n)
	}
	a := la.NewMatrix(adata, m, n)

	xTrue := make([]float64, n)
	for j := range xTrue {
		if rng.Float64() < 0.2 {
			xTrue[j] = rng.NormFloat64()
		}
	}

	f := make([]admm.FunctionObj, m)
	for i := range f {
		var b float64
		for j := 0; j < n; j++ {
			b += a.At(i, j) * xTrue[j]
		}
		b += 0.5 * rng.NormFloat64()
		fo := admm.NewFunctionObj(prox.Square)
		fo.B = b
		f[i] = fo
	}
	const lambda = 0.1
	g := make([]admm.FunctionObj, n)
	for j := range g {
		gi := admm.NewFunctionObj(prox.Abs)
		gi.C = lambda
		g[j] = gi
	}

	return &admm.Data{
		A: a, F: f, G: g,
		X: make([]float64, n), Y: make([]float64, m),
		Params: admm.Params{Rho: cfg.Rho, MaxIter: cfg.MaxIter, RelTol: cfg.RelTol, AbsTol: cfg.AbsTol, Quiet: cfg.Quiet},
	}
}
