// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import "github.com/cpmech/gosl/io"

// diagnostics prints the per-iteration header/line/final-status report
// (spec section 6) unless quiet. Kept as a tiny struct, rather than free
// functions taking a bool every call, so the quiet check lives in one
// place.
type diagnostics struct {
	quiet bool
}

func newDiagnostics(quiet bool) diagnostics {
	return diagnostics{quiet: quiet}
}

func (d diagnostics) header() {
	if d.quiet {
		return
	}
	io.Pf("\n%6s%12s%12s%12s%12s%16s\n", "iter", "r_pri", "eps_pri", "r_dual", "eps_dual", "objective")
}

func (d diagnostics) iteration(iter int, r residuals, objective float64) {
	if d.quiet {
		return
	}
	io.Pf("%6d%12.4e%12.4e%12.4e%12.4e%16.6e\n", iter, r.RPri, r.EpsPri, r.RDual, r.EpsDual, objective)
}

func (d diagnostics) final(status Status) {
	if d.quiet {
		return
	}
	switch status {
	case Solved:
		io.Pfgreen("\nstatus: %v\n", status)
	case FactorizationFailed:
		io.Pfred("\nstatus: %v\n", status)
	default:
		io.Pfyel("\nstatus: %v\n", status)
	}
}
