// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

// proxIdentity: h(x) = x  =>  prox_{h/rho}(v) = v - 1/rho
func proxIdentity(v, rho float64) float64 {
	return v - 1/rho
}

// proxSquare: h(x) = x^2/2  =>  prox_{h/rho}(v) = v*rho/(1+rho)
func proxSquare(v, rho float64) float64 {
	return v * rho / (1 + rho)
}
