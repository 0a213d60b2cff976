// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"runtime"
	"sync"

	"github.com/cpmech/admm/admm/la"
	"github.com/cpmech/gosl/chk"
)

// parallelProxThreshold is the combined coordinate count (m+n) above which
// the prox step is fanned out across a worker pool instead of run as a
// single loop; below it the goroutine setup would cost more than the prox
// evaluations it parallelizes.
const parallelProxThreshold = 4096

// Engine holds the working state of one Solve call: the projection-subspace
// iterates (x, y), the prox iterates (x~, y~), the scaled duals (x̄, ȳ), and
// the cached factorization. It is allocated at entry to Solve and released
// on return; Data is only read from it (except for the final write of X, Y).
type Engine struct {
	data    *Data
	backend la.Backend
	fc      *factorCache

	x, y           []float64 // projection-subspace iterates
	xTilde, yTilde []float64 // prox iterates
	xBar, yBar     []float64 // scaled duals
	xPrev, yPrev   []float64 // previous projection-subspace iterates, for r_dual

	s []float64 // scratch: x~ + x̄ + A^T(y~ + ȳ), the projection right-hand side
}

// newEngine allocates an Engine's working buffers, all initialized to zero
// per spec section 3's lifecycle ("Initial values: all zero").
func newEngine(data *Data, backend la.Backend, fc *factorCache) *Engine {
	m, n := data.M(), data.N()
	return &Engine{
		data:    data,
		backend: backend,
		fc:      fc,
		x:       make([]float64, n),
		y:       make([]float64, m),
		xTilde:  make([]float64, n),
		yTilde:  make([]float64, m),
		xBar:    make([]float64, n),
		yBar:    make([]float64, m),
		xPrev:   make([]float64, n),
		yPrev:   make([]float64, m),
		s:       make([]float64, n),
	}
}

// Run executes the ADMM iteration loop until convergence or MaxIter,
// writing the final X and Y into data on return. The three substeps below
// (prox, project, dual update) must execute in this order each iteration;
// within the prox substep there is no ordering between coordinates.
func (e *Engine) Run() (status Status, iters int, r residuals) {
	d := e.data
	if d.Rho != e.fc.rho {
		chk.Panic("admm: rho changed from %v to %v after the factor was built; rho-adaptation requires rebuilding the factor", e.fc.rho, d.Rho)
	}
	diag := newDiagnostics(d.Quiet)
	diag.header()

	status = MaxIterReached
	for iters = 0; iters < d.MaxIter; iters++ {
		copy(e.xPrev, e.x)
		copy(e.yPrev, e.y)

		e.proxStep()
		e.projectStep()
		e.dualUpdate()

		r = computeResiduals(e.backend, d.Rho, d.AbsTol, d.RelTol,
			e.x, e.y, e.xTilde, e.yTilde, e.xPrev, e.yPrev, e.xBar, e.yBar)

		if !d.Quiet {
			diag.iteration(iters, r, e.objective())
		}

		if r.Converged() {
			status = Solved
			iters++
			break
		}
	}

	copy(d.X, e.x)
	copy(d.Y, e.y)
	diag.final(status)
	return status, iters, r
}

// proxStep computes x~_i = prox_{g_i/rho}(x_i - x̄_i) and
// y~_j = prox_{f_j/rho}(y_j - ȳ_j), independently per coordinate (spec
// section 4.2, step 1). Spec section 5 permits a work-sharing parallel-for
// here since coordinates need no synchronization; it is only worth the
// goroutine overhead once there are enough coordinates to amortize it.
func (e *Engine) proxStep() {
	d := e.data
	n, m := len(d.G), len(d.F)

	proxX := func(i int) { e.xTilde[i] = d.G[i].Prox(e.x[i]-e.xBar[i], d.Rho) }
	proxY := func(j int) { e.yTilde[j] = d.F[j].Prox(e.y[j]-e.yBar[j], d.Rho) }

	if n+m < parallelProxThreshold {
		for i := 0; i < n; i++ {
			proxX(i)
		}
		for j := 0; j < m; j++ {
			proxY(j)
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	runChunked := func(count int, f func(int)) {
		chunk := (count + workers - 1) / workers
		for start := 0; start < count; start += chunk {
			end := start + chunk
			if end > count {
				end = count
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					f(i)
				}
			}(start, end)
		}
	}
	runChunked(n, proxX)
	runChunked(m, proxY)
	wg.Wait()
}

// projectStep solves the Euclidean projection of (x~+x̄, ỹ+ȳ) onto the
// graph subspace {(x,y): y = A x} (spec section 4.2, step 2), using the
// cached factorization so each iteration costs two triangular solves
// rather than a fresh linear solve.
func (e *Engine) projectStep() {
	a := e.data.A
	copy(e.s, e.xTilde)
	e.backend.Axpy(1, e.xBar, e.s)

	sumY := make([]float64, len(e.yTilde))
	copy(sumY, e.yTilde)
	e.backend.Axpy(1, e.yBar, sumY)
	e.backend.Gemv(1, true, a, sumY, 1, e.s)

	x := e.fc.project(a, e.s)
	copy(e.x, x)
	e.backend.Gemv(1, false, a, e.x, 0, e.y)
}

// dualUpdate applies the scaled dual-variable update (spec section 4.2,
// step 3): x̄ += x~ - x, ȳ += ỹ - y.
func (e *Engine) dualUpdate() {
	for i := range e.xBar {
		e.xBar[i] += e.xTilde[i] - e.x[i]
	}
	for j := range e.yBar {
		e.yBar[j] += e.yTilde[j] - e.y[j]
	}
}

// objective evaluates f(y) + g(x) at the current projection-subspace
// iterate, purely for the diagnostic line (spec section 6); it never feeds
// back into the iteration.
func (e *Engine) objective() float64 {
	d := e.data
	var obj float64
	for i, g := range d.G {
		obj += g.Eval(e.x[i])
	}
	for j, f := range d.F {
		obj += f.Eval(e.y[j])
	}
	return obj
}
