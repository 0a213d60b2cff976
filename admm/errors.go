// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package admm

import "github.com/cpmech/gosl/chk"

// validate checks every invariant of spec section 7 before any allocation
// or iteration takes place: dimension mismatches, non-positive rho, and
// every FunctionObj's own (a, c, e) constraints.
func (d *Data) validate() error {
	if d.A == nil {
		return chk.Err("admm: A is nil")
	}
	m, n := d.M(), d.N()
	if m == 0 || n == 0 {
		return chk.Err("admm: m and n must both be > 0, got m=%d n=%d", m, n)
	}
	if len(d.F) != m {
		return chk.Err("admm: len(F)=%d does not match m=%d", len(d.F), m)
	}
	if len(d.G) != n {
		return chk.Err("admm: len(G)=%d does not match n=%d", len(d.G), n)
	}
	if len(d.X) != n {
		return chk.Err("admm: len(X)=%d does not match n=%d", len(d.X), n)
	}
	if len(d.Y) != m {
		return chk.Err("admm: len(Y)=%d does not match m=%d", len(d.Y), m)
	}
	if d.Rho <= 0 {
		return chk.Err("admm: rho must be > 0, got %v", d.Rho)
	}
	for i, f := range d.F {
		if err := f.Validate(); err != nil {
			return chk.Err("admm: f[%d]: %v", i, err)
		}
	}
	for j, g := range d.G {
		if err := g.Validate(); err != nil {
			return chk.Err("admm: g[%d]: %v", j, err)
		}
	}
	return nil
}

// fillDefaults applies the spec section 3 defaults to any zero-valued
// Rho/tolerance/iteration-cap field, so callers may leave Params entirely
// zero to mean "use the library defaults". A zero Rho becomes the default;
// only a negative Rho reaches validate and is rejected there.
func (d *Data) fillDefaults() {
	def := DefaultParams()
	if d.Rho == 0 {
		d.Rho = def.Rho
	}
	if d.MaxIter == 0 {
		d.MaxIter = def.MaxIter
	}
	if d.RelTol == 0 {
		d.RelTol = def.RelTol
	}
	if d.AbsTol == 0 {
		d.AbsTol = def.AbsTol
	}
}
