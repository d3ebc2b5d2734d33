// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"testing"

	"github.com/cpmech/gofv/bdry"
	"github.com/cpmech/gofv/mesh"
)

// oneTriangle builds a single right triangle with all three edges on the boundary.
func oneTriangle(tst *testing.T) *mesh.Mesh {
	coords := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	triangles := [][3]int{{0, 1, 2}}
	boundary := map[mesh.Edge]string{
		{Cell: 0, Edge: 0}: "hyp",
		{Cell: 0, Edge: 1}: "left",
		{Cell: 0, Edge: 2}: "bottom",
	}
	m, err := mesh.New(coords, triangles, boundary)
	if err != nil {
		tst.Fatalf("mesh.New failed: %v", err)
	}
	return m
}

// twoTriangles builds the unit square split along its diagonal, tagged on all four sides.
func twoTriangles(tst *testing.T) *mesh.Mesh {
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

// transmissiveAll binds every tag present on m's boundary to a
// Transmissive object reading the evolved vector of the same quantities.
func transmissiveAll(tst *testing.T, o *Domain, m *mesh.Mesh) {
	bound := make(map[string]bdry.Object)
	for _, tag := range m.BoundaryTagSet() {
		bound[tag] = bdry.Transmissive{Interior: func(cell, edge int) []float64 {
			q, err := o.GetEvolvedQuantities(cell, nil, nil)
			if err != nil {
				tst.Fatalf("GetEvolvedQuantities failed: %v", err)
			}
			return q
		}}
	}
	if err := o.SetBoundary(bound); err != nil {
		tst.Fatalf("SetBoundary failed: %v", err)
	}
}

// zeroFlux is a ComputeFluxes kernel that never accumulates anything
// and never tightens the timestep.
func zeroFlux(maxdt float64) func(d *Domain) float64 {
	return func(d *Domain) float64 { return maxdt }
}
