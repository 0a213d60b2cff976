// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import (
	"time"

	"github.com/cpmech/admm/admm/la"
	"github.com/cpmech/gosl/io"
)

// Solve is the solver's public entry point (spec section 4.5). It reads
// A, F, G and the solver parameters from data, validates them, runs the
// graph-form ADMM iteration to convergence or MaxIter, and writes the
// final X and Y back into data's caller-owned buffers. Diagnostic lines
// are printed to stdout unless data.Quiet.
func Solve(data *Data) (Status, error) {
	return SolveWithBackend(data, la.NewDenseBackend())
}

// SolveWithBackend is Solve parameterized over the linear-algebra backend
// (spec section 4.4), so the same engine serves a sparse or GPU backend
// without change. Most callers want Solve.
func SolveWithBackend(data *Data, backend la.Backend) (Status, error) {
	data.fillDefaults()
	if err := data.validate(); err != nil {
		if !data.Quiet {
			io.Pfred("admm: invalid input: %v\n", err)
		}
		return InvalidInput, err
	}

	start := time.Now()
	fc, ok := newFactorCache(backend, data.A, data.Rho)
	if !ok {
		if !data.Quiet {
			io.Pfred("admm: Cholesky factorization failed; A is too ill-conditioned for rho=%v\n", data.Rho)
		}
		return FactorizationFailed, nil
	}

	engine := newEngine(data, backend, fc)
	status, iters, r := engine.Run()

	if !data.Quiet {
		io.Pf("iterations = %d\n", iters)
		io.Pf("cpu time   = %v\n", time.Since(start))
		io.Pf("final residuals: r_pri=%.4e (eps_pri=%.4e)  r_dual=%.4e (eps_dual=%.4e)\n",
			r.RPri, r.EpsPri, r.RDual, r.EpsDual)
	}
	return status, nil
}
