// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_extrema01a(tst *testing.T) {

	chk.PrintTitle("extrema01a. monitoring an unknown quantity fails at registration")

	m := oneTriangle(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := o.SetQuantitiesToBeMonitored("bogus", "", nil, nil); err == nil {
		tst.Fatalf("expected an error for monitoring an unregistered quantity")
	}
}

func Test_extrema01b(tst *testing.T) {

	chk.PrintTitle("extrema01b. min/max and their locations track the current extreme")

	m := twoTriangles(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := o.SetQuantitiesToBeMonitored("stage", "", nil, nil); err != nil {
		tst.Fatalf("SetQuantitiesToBeMonitored failed: %v", err)
	}
	if err := o.SetQuantity("stage", []float64{1.0, 5.0}); err != nil {
		tst.Fatalf("SetQuantity failed: %v", err)
	}
	if err := o.UpdateExtrema(); err != nil {
		tst.Fatalf("UpdateExtrema failed: %v", err)
	}

	mon := o.Extrema["stage"]
	chk.Scalar(tst, "max", 1e-15, *mon.Max, 5.0)
	chk.Scalar(tst, "min", 1e-15, *mon.Min, 1.0)

	// triangle 1's centroid is (1/3, 2/3) and holds the current max
	chk.Scalar(tst, "max_location x", 1e-12, mon.MaxX, 1.0/3.0)
	chk.Scalar(tst, "max_location y", 1e-12, mon.MaxY, 2.0/3.0)
}

// Test_extrema01c: a polygon-restricted monitor only
// sees the cells inside it.
func Test_extrema01c(tst *testing.T) {

	chk.PrintTitle("extrema01c. polygon-restricted monitoring ignores cells outside it")

	m := twoTriangles(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	// triangle 0's centroid (2/3,1/3) is inside this polygon; triangle 1's (1/3,2/3) is not
	square := [][2]float64{{0.5, 0}, {1, 0}, {1, 0.6}, {0.5, 0.6}}
	if err := o.SetQuantitiesToBeMonitored("stage", "", square, nil); err != nil {
		tst.Fatalf("SetQuantitiesToBeMonitored failed: %v", err)
	}
	if err := o.SetQuantity("stage", []float64{5.0, 1.0}); err != nil {
		tst.Fatalf("SetQuantity failed: %v", err)
	}
	if err := o.UpdateExtrema(); err != nil {
		tst.Fatalf("UpdateExtrema failed: %v", err)
	}

	mon := o.Extrema["stage"]
	chk.IntAssert(len(mon.MonitorCells), 1)
	chk.IntAssert(mon.MonitorCells[0], 0)
	chk.Scalar(tst, "max restricted to the polygon", 1e-15, *mon.Max, 5.0)
	chk.Scalar(tst, "min restricted to the polygon", 1e-15, *mon.Min, 5.0)
}

func Test_extrema01d(tst *testing.T) {

	chk.PrintTitle("extrema01d. a time window gates updates outside [t0,t1]")

	m := oneTriangle(tst)
	o, err := New(m, []string{"stage"}, nil, nil, nil, 0, nil, DefaultConfig())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	if err := o.SetQuantitiesToBeMonitored("stage", "", nil, &[2]float64{5.0, 10.0}); err != nil {
		tst.Fatalf("SetQuantitiesToBeMonitored failed: %v", err)
	}
	o.SetQuantity("stage", []float64{1.0})
	o.Time = 0
	if err := o.UpdateExtrema(); err != nil {
		tst.Fatalf("UpdateExtrema failed: %v", err)
	}
	if o.Extrema["stage"].Max != nil {
		tst.Fatalf("expected no update before the time window opens")
	}
	o.Time = 7
	if err := o.UpdateExtrema(); err != nil {
		tst.Fatalf("UpdateExtrema failed: %v", err)
	}
	if o.Extrema["stage"].Max == nil {
		tst.Fatalf("expected an update once inside the time window")
	}
}
