// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"sort"

	"github.com/cpmech/gofv/bdry"
)

// SetBoundary stores (merging by tag on repeated calls) the tag →
// BoundaryObject map and re-derives BoundaryObjects from scratch in
// ascending (cell, edge) order. A nil Object for a tag means
// that tag's edges are left unbound: no entry is added and the
// neighbour slot keeps its prior (boundary, negative) value.
func (o *Domain) SetBoundary(m map[string]bdry.Object) error {
	if o.BoundaryMap == nil {
		o.BoundaryMap = make(map[string]bdry.Object)
	}
	for tag, obj := range m {
		o.BoundaryMap[tag] = obj
	}
	o.BoundarySet = true

	edges := o.Mesh.BoundaryEdgesSorted()
	o.BoundaryObjects = o.BoundaryObjects[:0]
	for _, e := range edges {
		tag := o.Mesh.BoundaryTags[e]
		obj, present := o.BoundaryMap[tag]
		if !present {
			return configErr("domain: boundary tag %q is not bound; known tags: %v", tag, boundaryTagList(o.BoundaryMap))
		}
		if obj == nil {
			continue
		}
		position := len(o.BoundaryObjects)
		o.BoundaryObjects = append(o.BoundaryObjects, BoundaryBinding{Cell: e.Cell, Edge: e.Edge, Obj: obj})
		o.Mesh.SetNeighbour(e.Cell, e.Edge, -(position + 1))
	}
	return nil
}

func boundaryTagList(m map[string]bdry.Object) []string {
	tags := make([]string, 0, len(m))
	for t := range m {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// UpdateBoundary refreshes every bound quantity's Boundary array from
// its BoundaryObject. update_ghosts and the vertex/edge reconstruction
// must run before this; in the evolve loop it is the last refresh of a
// step.
func (o *Domain) UpdateBoundary() error {
	for i, b := range o.BoundaryObjects {
		if b.Obj == nil {
			warn(o.Config, "domain: boundary (%d,%d) has a nil object bound, skipping", b.Cell, b.Edge)
			continue
		}
		q := b.Obj.Evaluate(b.Cell, b.Edge)
		var evol []float64
		switch {
		case len(q) == len(o.Evolved):
			evol = q
		case len(q) == len(o.Conserved):
			current, err := o.GetEvolvedQuantities(b.Cell, nil, edgePtr(b.Edge))
			if err != nil {
				return err
			}
			evol, err = o.ConservedValuesToEvolvedValues(q, current)
			if err != nil {
				return err
			}
		default:
			return contractErr("domain: boundary object at (%d,%d) returned %d values, want %d (conserved) or %d (evolved)",
				b.Cell, b.Edge, len(q), len(o.Conserved), len(o.Evolved))
		}
		for j, name := range o.Evolved {
			o.Fields[name].Boundary[i] = evol[j]
		}
	}
	return nil
}

func edgePtr(e int) *int { return &e }
