// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package la

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGemv(tst *testing.T) {
	chk.PrintTitle("Gemv. y = alpha*A*x + beta*y and the transpose form")
	a := NewMatrix([]float64{1, 2, 3, 4, 5, 6}, 2, 3) // 2x3
	x := []float64{1, 1, 1}
	y := []float64{10, 10}
	NewDenseBackend().Gemv(1, false, a, x, 0, y)
	chk.Vector(tst, "A*[1,1,1]", 1e-14, y, []float64{6, 15})

	xt := []float64{1, 1}
	yt := make([]float64, 3)
	NewDenseBackend().Gemv(2, true, a, xt, 0, yt)
	chk.Vector(tst, "2*A^T*[1,1]", 1e-14, yt, []float64{10, 14, 18})
}

func TestAxpyNrm2(tst *testing.T) {
	chk.PrintTitle("Axpy/Nrm2")
	x := []float64{3, 4}
	chk.Scalar(tst, "||[3,4]||", 1e-14, NewDenseBackend().Nrm2(x), 5)

	y := []float64{1, 1}
	NewDenseBackend().Axpy(2, x, y)
	chk.Vector(tst, "y+2x", 1e-14, y, []float64{7, 9})
}

func TestSyrkPotrfPotrs(tst *testing.T) {
	chk.PrintTitle("Syrk/Potrf/Potrs. factor I+A^T*A and solve against it")
	a := NewMatrix([]float64{1, 0, 0, 1, 1, 1}, 3, 2) // 3x2, m > n
	be := NewDenseBackend()
	g := be.Syrk(a, false) // 2x2: I + A^T A
	// A^T A = [[2,1],[1,2]]; G = [[3,1],[1,3]]
	chk.Scalar(tst, "G[0][0]", 1e-12, g.At(0, 0), 3)
	chk.Scalar(tst, "G[0][1]", 1e-12, g.At(0, 1), 1)
	chk.Scalar(tst, "G[1][1]", 1e-12, g.At(1, 1), 3)

	f, ok := be.Potrf(g)
	if !ok {
		tst.Fatal("Potrf should succeed on a positive-definite matrix")
	}
	r := []float64{4, 8}
	z := be.Potrs(f, r)
	// check G*z == r
	res0 := g.At(0, 0)*z[0] + g.At(0, 1)*z[1]
	res1 := g.At(1, 0)*z[0] + g.At(1, 1)*z[1]
	if math.Abs(res0-r[0]) > 1e-10 || math.Abs(res1-r[1]) > 1e-10 {
		tst.Errorf("G*z should equal r: got G*z=[%v,%v], r=%v", res0, res1, r)
	}
}

func TestPotrfRejectsIndefinite(tst *testing.T) {
	chk.PrintTitle("Potrf. reports ok=false on a non-positive-definite matrix")
	g := NewSymMatrix(2)
	g.Set(0, 0, 1)
	g.Set(1, 1, 1)
	g.Set(0, 1, 5)
	g.Set(1, 0, 5)
	be := NewDenseBackend()
	_, ok := be.Potrf(g)
	if ok {
		tst.Errorf("Potrf should fail on an indefinite matrix")
	}
}
