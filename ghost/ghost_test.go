// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ghost

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_ghost01a(tst *testing.T) {

	chk.PrintTitle("ghost01a. NewDescriptor sizes scratch by the larger side")

	d := NewDescriptor(1, []int{0, 1, 2}, []int{5}, 2)
	chk.IntAssert(len(d.Scratch), 3)
	for _, row := range d.Scratch {
		chk.IntAssert(len(row), 2)
	}
	chk.IntAssert(d.Peer, 1)
}

func Test_ghost01b(tst *testing.T) {

	chk.PrintTitle("ghost01b. LocalExchanger is a no-op")

	var e Exchanger = LocalExchanger{}
	descriptors := map[int]*Descriptor{1: NewDescriptor(1, []int{0}, []int{1}, 1)}
	conserved := [][]float64{{1.0, 2.0}}
	if err := e.Exchange(descriptors, conserved); err != nil {
		tst.Fatalf("LocalExchanger.Exchange must never fail: %v", err)
	}
}

func Test_ghost01c(tst *testing.T) {

	chk.PrintTitle("ghost01c. MPIExchanger packs the requested full cells into scratch")

	conserved := [][]float64{
		{10.0, 20.0, 30.0}, // quantity 0, one value per full cell
		{1.0, 2.0, 3.0},    // quantity 1
	}
	d := NewDescriptor(1, []int{2, 0}, []int{0, 1}, 2)
	descriptors := map[int]*Descriptor{1: d}

	var sent [][]float64
	e := &MPIExchanger{
		Rank:     0,
		NumProcs: 2,
		Transport: func(peer int, buf [][]float64) error {
			sent = buf
			return nil
		},
	}
	if err := e.Exchange(descriptors, conserved); err != nil {
		tst.Fatalf("Exchange failed: %v", err)
	}
	chk.Vector(tst, "full cell 2", 1e-15, sent[0], []float64{30.0, 3.0})
	chk.Vector(tst, "full cell 0", 1e-15, sent[1], []float64{10.0, 1.0})
}

func Test_ghost01d(tst *testing.T) {

	chk.PrintTitle("ghost01d. MPIExchanger skips its own rank")

	conserved := [][]float64{{1.0}}
	d := NewDescriptor(0, []int{0}, []int{0}, 1)
	descriptors := map[int]*Descriptor{0: d}

	called := false
	e := &MPIExchanger{
		Rank: 0,
		Transport: func(peer int, buf [][]float64) error {
			called = true
			return nil
		},
	}
	if err := e.Exchange(descriptors, conserved); err != nil {
		tst.Fatalf("Exchange failed: %v", err)
	}
	if called {
		tst.Fatalf("Transport must not be called for the local rank's own descriptor")
	}
}
