// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prox

import "math"

// proxAbs: h(x) = |x|  =>  soft-thresholding at 1/rho.
func proxAbs(v, rho float64) float64 {
	t := 1 / rho
	if v > t {
		return v - t
	}
	if v < -t {
		return v + t
	}
	return 0
}

// evalHuber is the Huber penalty with the standard kink at |x| == 1:
// quadratic inside the kink, linear (with matching slope/value) outside.
func evalHuber(x float64) float64 {
	ax := math.Abs(x)
	if ax <= 1 {
		return 0.5 * x * x
	}
	return ax - 0.5
}

// proxHuber uses the threshold 1+1/rho separating the region where the
// quadratic branch of Huber is active from the region where only the
// linear (constant-subgradient) branch contributes; within the quadratic
// region the minimizer shrinks v by rho/(rho+1), outside it the gradient
// of the linear branch is all that matters and the prox is a
// soft-threshold by 1/rho.
func proxHuber(v, rho float64) float64 {
	if math.Abs(v) <= 1+1/rho {
		return v * rho / (rho + 1)
	}
	return v - sign(v)/rho
}

// proxMaxNeg0: h(x) = max(0, -x).
func proxMaxNeg0(v, rho float64) float64 {
	t := 1 / rho
	if v < -t {
		return v + t
	}
	if v <= 0 {
		return 0
	}
	return v
}

// proxMaxPos0: h(x) = max(0, x).
func proxMaxPos0(v, rho float64) float64 {
	t := 1 / rho
	if v > t {
		return v - t
	}
	if v >= 0 {
		return 0
	}
	return v
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
