// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_domain01a(tst *testing.T) {

	chk.PrintTitle("domain01a. New rejects evolved not prefixed by conserved")

	m := oneTriangle(tst)
	_, err := New(m, []string{"stage", "xmomentum"}, []string{"xmomentum", "stage"}, nil, nil, 0, nil, DefaultConfig())
	if err == nil {
		tst.Fatalf("expected an error when evolved[0:len(conserved)] != conserved")
	}
}

func Test_domain01b(tst *testing.T) {

	chk.PrintTitle("domain01b. New defaults evolved to conserved and allocates a field per name")

	m := oneTriangle(tst)
	o, err := New(m, []string{"stage", "xmomentum"}, nil, []string{"elevation"}, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.IntAssert(len(o.Evolved), 2)
	if o.Evolved[0] != "stage" || o.Evolved[1] != "xmomentum" {
		tst.Fatalf("evolved should default to conserved, got %v", o.Evolved)
	}
	for _, name := range []string{"stage", "xmomentum", "elevation"} {
		if _, ok := o.Fields[name]; !ok {
			tst.Fatalf("expected a field for %q", name)
		}
	}
	if err := o.CheckIntegrity(); err != nil {
		tst.Fatalf("CheckIntegrity failed: %v", err)
	}
}

func Test_domain01c(tst *testing.T) {

	chk.PrintTitle("domain01c. tri_full_flag is all 1 with no ghosts and integrity holds")

	m := twoTriangles(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	for i, g := range o.TriFullFlag {
		if g != 1 {
			tst.Fatalf("expected tri_full_flag[%d]=1 with no ghosts, got %d", i, g)
		}
	}
	if err := o.CheckIntegrity(); err != nil {
		tst.Fatalf("CheckIntegrity failed: %v", err)
	}
}

func Test_domain01d(tst *testing.T) {

	chk.PrintTitle("domain01d. get_conserved_quantities with both vertex and edge set errors")

	m := oneTriangle(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	v, e := 0, 0
	if _, err := o.GetConservedQuantities(0, &v, &e); err == nil {
		tst.Fatalf("expected an error when both vertex and edge are given")
	}
}

func Test_domain01e(tst *testing.T) {

	chk.PrintTitle("domain01e. set_default_order(3) and an unknown timestepping method error")

	m := oneTriangle(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := o.SetDefaultOrder(3); err == nil {
		tst.Fatalf("expected an error for default order 3")
	}
	if err := o.SetTimesteppingMethod("foo"); err == nil {
		tst.Fatalf("expected an error for an unknown timestepping method")
	}
}

func Test_domain01f(tst *testing.T) {

	chk.PrintTitle("domain01f. integer method selectors map to the named schemes")

	m := oneTriangle(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := o.SetTimesteppingMethodIndex(2); err != nil {
		tst.Fatalf("SetTimesteppingMethodIndex failed: %v", err)
	}
	if o.Config.TimesteppingMethod != "rk2" {
		tst.Fatalf("expected rk2, got %q", o.Config.TimesteppingMethod)
	}
	if err := o.SetTimesteppingMethodIndex(9); err == nil {
		tst.Fatalf("expected an error for an out of range index")
	}
}

func Test_domain01g(tst *testing.T) {

	chk.PrintTitle("domain01g. set_quantity round trips a constant vector")

	m := twoTriangles(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := o.SetQuantity("stage", []float64{3.0, 3.0}); err != nil {
		tst.Fatalf("SetQuantity failed: %v", err)
	}
	f, err := o.GetQuantity("stage")
	if err != nil {
		tst.Fatalf("GetQuantity failed: %v", err)
	}
	chk.Vector(tst, "round trip", 1e-15, f.Centroid, []float64{3.0, 3.0})
}
