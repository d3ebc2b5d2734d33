// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checkpoint

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_checkpoint01a(tst *testing.T) {

	chk.PrintTitle("checkpoint01a. Latest returns false on an empty ring")

	r := NewMemRing(3)
	if _, ok := r.Latest(); ok {
		tst.Fatalf("expected Latest to report false on an empty ring")
	}
}

func Test_checkpoint01b(tst *testing.T) {

	chk.PrintTitle("checkpoint01b. Latest always returns the most recently stored state")

	r := NewMemRing(3)
	for t := 0.0; t < 3; t++ {
		if _, err := r.Store(&State{Time: t}); err != nil {
			tst.Fatalf("Store failed: %v", err)
		}
	}
	s, ok := r.Latest()
	if !ok {
		tst.Fatalf("expected a stored state")
	}
	chk.Float64(tst, "latest time", 1e-15, s.Time, 2.0)
}

func Test_checkpoint01c(tst *testing.T) {

	chk.PrintTitle("checkpoint01c. the ring evicts the oldest entry beyond capacity")

	r := NewMemRing(2)
	r.Store(&State{Time: 1})
	r.Store(&State{Time: 2})
	r.Store(&State{Time: 3})
	chk.IntAssert(len(r.items), 2)
	chk.Float64(tst, "oldest surviving", 1e-15, r.items[0].Time, 2.0)
	chk.Float64(tst, "newest surviving", 1e-15, r.items[1].Time, 3.0)
}

func Test_checkpoint01d(tst *testing.T) {

	chk.PrintTitle("checkpoint01d. DeleteOld trims to the requested count")

	r := NewMemRing(5)
	for i := 0; i < 5; i++ {
		r.Store(&State{Time: float64(i)})
	}
	if err := r.DeleteOld(2); err != nil {
		tst.Fatalf("DeleteOld failed: %v", err)
	}
	chk.IntAssert(len(r.items), 2)
	chk.Float64(tst, "kept the two most recent", 1e-15, r.items[0].Time, 3.0)
}

func Test_checkpoint01e(tst *testing.T) {

	chk.PrintTitle("checkpoint01e. NewMemRing clamps a non-positive capacity to 1")

	r := NewMemRing(0)
	chk.IntAssert(r.Capacity, 1)
}
