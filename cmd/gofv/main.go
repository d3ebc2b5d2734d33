// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gofv runs a small demonstration Domain: two triangles, a
// transmissive boundary everywhere, a constant forcing term, and RK2
// timestepping, evolved one yield at a time and reported via the
// diagnostics surface.
package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/gofv/bdry"
	"github.com/cpmech/gofv/domain"
	"github.com/cpmech/gofv/frc"
	"github.com/cpmech/gofv/mesh"
)

func main() {

	finaltime := flag.Float64("finaltime", 3.0, "final simulation time")
	yieldstep := flag.Float64("yieldstep", 1.0, "yield step")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\nGofv -- a cell-centred finite-volume time-evolution driver\n\n")
	}

	defer utl.DoProf(false)()

	m, err := mesh.New(
		[][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][3]int{{0, 1, 2}, {0, 2, 3}},
		map[mesh.Edge]string{
			{Cell: 0, Edge: 0}: "right",
			{Cell: 0, Edge: 2}: "bottom",
			{Cell: 1, Edge: 0}: "top",
			{Cell: 1, Edge: 1}: "left",
		},
	)
	if err != nil {
		chk.Panic("mesh.New failed: %v\n", err)
	}

	cfg := domain.DefaultConfig()
	cfg.TimesteppingMethod = "rk2"

	dom, err := domain.New(m, []string{"stage"}, nil, nil, nil, 0, nil, cfg)
	if err != nil {
		chk.Panic("domain.New failed: %v\n", err)
	}

	dom.ComputeFluxes = func(d *domain.Domain) float64 {
		f := d.Fields["stage"]
		flux := 0.1 * (f.Centroid[1] - f.Centroid[0])
		f.ExplicitUpdate[0] += flux
		f.ExplicitUpdate[1] -= flux
		return cfg.MaxTimestep
	}
	dom.ForcingTerms = []frc.Term{
		frc.Constant{Quantity: "stage", Rate: 0.0},
	}

	bound := bdry.Transmissive{
		Interior: func(cell, edge int) []float64 {
			q, err := dom.GetEvolvedQuantities(cell, nil, nil)
			if err != nil {
				chk.Panic("GetEvolvedQuantities failed: %v\n", err)
			}
			return q
		},
	}
	if err := dom.SetBoundary(map[string]bdry.Object{
		"right":  bound,
		"bottom": bound,
		"top":    bound,
		"left":   bound,
	}); err != nil {
		chk.Panic("SetBoundary failed: %v\n", err)
	}

	if err := dom.SetQuantity("stage", []float64{5.0, 1.0}); err != nil {
		chk.Panic("SetQuantity failed: %v\n", err)
	}

	ev, err := dom.Evolve(yieldstep, finaltime, nil, false)
	if err != nil {
		chk.Panic("Evolve failed: %v\n", err)
	}

	for {
		r := ev.Step()
		if r.Kind == domain.Failed {
			chk.Panic("evolve failed: %v\n", r.Err)
		}
		if r.Kind == domain.Done {
			break
		}
		if mpi.Rank() == 0 {
			io.Pf("%s", dom.TimesteppingStatistics(false, nil))
		}
	}

	if mpi.Rank() == 0 {
		io.PfGreen("\ndone.\n")
	}
}
