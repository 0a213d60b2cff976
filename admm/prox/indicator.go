// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

// Indicator kinds take value 0 on their domain and +infinity elsewhere; the
// prox of an indicator is Euclidean projection onto the set, independent of
// rho. FunctionObj enforces c=1, d=0, e=0 for these kinds (spec section 3).

func proxIndBox01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func proxIndEq0(v float64) float64 {
	return 0
}

func proxIndGe0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func proxIndLe0(v float64) float64 {
	if v > 0 {
		return 0
	}
	return v
}
