// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qty

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gofv/mesh"
)

func square(tst *testing.T) *mesh.Mesh {
	coords := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	triangles := [][3]int{{0, 1, 2}, {0, 2, 3}}
	boundary := map[mesh.Edge]string{
		{Cell: 0, Edge: 0}: "right",
		{Cell: 0, Edge: 2}: "bottom",
		{Cell: 1, Edge: 0}: "top",
		{Cell: 1, Edge: 1}: "left",
	}
	m, err := mesh.New(coords, triangles, boundary)
	if err != nil {
		tst.Fatalf("mesh.New failed: %v", err)
	}
	return m
}

func Test_field01a(tst *testing.T) {

	chk.PrintTitle("field01a. constant set, min/max with location")

	m := square(tst)
	f := NewField(m)
	chk.IntAssert(f.N, 2)
	chk.IntAssert(f.B, 4)

	f.SetConstant(3.0)
	chk.Scalar(tst, "max", 1e-15, f.GetMaximumValue(nil), 3.0)
	chk.Scalar(tst, "min", 1e-15, f.GetMinimumValue(nil), 3.0)

	if err := f.SetFromSlice([]float64{1.0, 5.0}); err != nil {
		tst.Fatalf("SetFromSlice failed: %v", err)
	}
	chk.Scalar(tst, "max", 1e-15, f.GetMaximumValue(nil), 5.0)
	chk.Scalar(tst, "min", 1e-15, f.GetMinimumValue(nil), 1.0)
	x, y := f.GetMaximumLocation(nil)
	if x == 0 && y == 0 {
		tst.Fatalf("expected a non-origin maximum location")
	}
}

func Test_field01b(tst *testing.T) {

	chk.PrintTitle("field01b. backup and saxpy round trip")

	m := square(tst)
	f := NewField(m)
	f.SetFromSlice([]float64{2.0, 4.0})
	f.BackupCentroid()

	f.Centroid[0] = 100
	f.Centroid[1] = 200

	// centroid <- 0*centroid + 1*backup restores the original values
	f.SaxpyCentroid(0, 1)
	chk.Vector(tst, "restored", 1e-15, f.Centroid, []float64{2.0, 4.0})
}

func Test_field01c(tst *testing.T) {

	chk.PrintTitle("field01c. explicit update advances centroid values")

	m := square(tst)
	f := NewField(m)
	f.SetConstant(1.0)
	f.ExplicitUpdate[0] = 2.0
	f.ExplicitUpdate[1] = -1.0

	f.Update(0.5)
	chk.Vector(tst, "updated", 1e-15, f.Centroid, []float64{2.0, 0.5})

	// SemiImplicitUpdate must be zeroed by Update, ExplicitUpdate left alone
	chk.Scalar(tst, "semi implicit zeroed", 1e-15, f.SemiImplicitUpdate[0], 0)
	chk.Scalar(tst, "explicit untouched", 1e-15, f.ExplicitUpdate[0], 2.0)
}

func Test_field01d(tst *testing.T) {

	chk.PrintTitle("field01d. first order extrapolation copies centroid to vertex/edge")

	m := square(tst)
	f := NewField(m)
	f.SetFromSlice([]float64{7.0, -3.0})
	f.ExtrapolateFirstOrder()

	for i := 0; i < f.N; i++ {
		for k := 0; k < 3; k++ {
			chk.Scalar(tst, "vertex", 1e-15, f.Vertex[i][k], f.Centroid[i])
			chk.Scalar(tst, "edge", 1e-15, f.Edge[i][k], f.Centroid[i])
		}
	}
}

func Test_field01e(tst *testing.T) {

	chk.PrintTitle("field01e. arithmetic for the expression evaluator")

	m := square(tst)
	a := NewField(m)
	b := NewField(m)
	a.SetFromSlice([]float64{4.0, 9.0})
	b.SetFromSlice([]float64{2.0, 3.0})

	sum, err := Binary(a, b, '+')
	if err != nil {
		tst.Fatalf("Binary(+) failed: %v", err)
	}
	chk.Vector(tst, "sum", 1e-15, sum.Centroid, []float64{6.0, 12.0})

	diff, _ := Binary(a, b, '-')
	chk.Vector(tst, "diff", 1e-15, diff.Centroid, []float64{2.0, 6.0})

	prod, _ := Binary(a, b, '*')
	chk.Vector(tst, "prod", 1e-15, prod.Centroid, []float64{8.0, 27.0})

	quot, _ := Binary(a, b, '/')
	chk.Vector(tst, "quot", 1e-15, quot.Centroid, []float64{2.0, 3.0})

	pow, _ := Binary(a, b, '^')
	chk.Vector(tst, "pow", 1e-15, pow.Centroid, []float64{16.0, 729.0})

	c := Constant(a, 5.0)
	chk.Vector(tst, "constant", 1e-15, c.Centroid, []float64{5.0, 5.0})

	if _, err := Binary(a, c, '?'); err == nil {
		tst.Fatalf("expected an error for an unknown operator")
	}
}

func Test_field01f(tst *testing.T) {

	chk.PrintTitle("field01f. ZeroExplicitUpdate clears the accumulator")

	m := square(tst)
	f := NewField(m)
	f.ExplicitUpdate[0] = 9
	f.ExplicitUpdate[1] = -9
	f.ZeroExplicitUpdate()
	chk.Vector(tst, "zeroed", 1e-15, f.ExplicitUpdate, []float64{0, 0})
}
