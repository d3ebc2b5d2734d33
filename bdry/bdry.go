// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bdry implements boundary condition objects bindable to
// tagged mesh edges: reflective, transmissive, Dirichlet and
// time-series-driven boundaries.
package bdry

import "github.com/cpmech/gosl/fun"

// Object is any boundary condition bindable to a tagged mesh edge.
// Evaluate must return either a vector of conserved-quantity length or
// evolved-quantity length; the domain distinguishes the two
// by comparing len(q) against its own registries.
//
// A boundary object is a read-only consumer of the domain: it may
// hold its own state, and concrete objects that need the interior state
// of the cell they are bound to (e.g. Reflective) receive it through an
// Interior callback supplied at construction time rather than by
// reaching back into the domain themselves.
type Object interface {
	Evaluate(cell, edge int) []float64
}

// Interior reads the current evolved (or conserved) quantity vector on
// the interior side of (cell,edge). Whoever constructs a boundary object
// that needs it supplies it; the domain does not bind it.
type Interior func(cell, edge int) []float64

// Reflective mirrors the interior vector back, negating the components
// listed in Negate (e.g. the velocity/momentum component normal to the
// boundary), leaving the rest unchanged. This is the zero-flux solid-wall
// condition every shallow-water/advection test fixture binds to "wall".
type Reflective struct {
	Interior Interior
	Negate   []int // indices (into the interior vector) to negate
}

// Evaluate returns a copy of the interior vector with the configured components negated.
func (o Reflective) Evaluate(cell, edge int) []float64 {
	out := append([]float64(nil), o.Interior(cell, edge)...)
	for _, i := range o.Negate {
		if i >= 0 && i < len(out) {
			out[i] = -out[i]
		}
	}
	return out
}

// Transmissive passes the interior value through unchanged ("outflow").
type Transmissive struct {
	Interior Interior
}

// Evaluate returns the interior vector unchanged.
func (o Transmissive) Evaluate(cell, edge int) []float64 {
	return append([]float64(nil), o.Interior(cell, edge)...)
}

// Dirichlet returns a fixed vector of values regardless of interior state.
type Dirichlet struct {
	Values []float64
}

// Evaluate returns the fixed Values.
func (o Dirichlet) Evaluate(cell, edge int) []float64 {
	return append([]float64(nil), o.Values...)
}

// TimeVarying evaluates a fun.TimeSpace per component at the current
// time and boundary point.
type TimeVarying struct {
	Time  func() float64                 // current model time, supplied by the caller
	Funcs []fun.TimeSpace                // one function per output component
	Coord func(cell, edge int) []float64 // boundary point, supplied by the caller (nil passes x=nil)
}

// Evaluate calls each component function at the current time and boundary point.
func (o TimeVarying) Evaluate(cell, edge int) []float64 {
	t := o.Time()
	var x []float64
	if o.Coord != nil {
		x = o.Coord(cell, edge)
	}
	out := make([]float64, len(o.Funcs))
	for i, f := range o.Funcs {
		out[i] = f.F(t, x)
	}
	return out
}

// FileDriven looks up a vector from a pre-loaded time series by nearest
// time <= t. Parsing the series out of a file stays with the caller;
// only the lookup lives here.
type FileDriven struct {
	Times  []float64   // ascending
	Values [][]float64 // Values[i] applies from Times[i] onward
	Time   func() float64
}

// Evaluate returns the series entry for the latest Times[i] <= current
// time, or the first entry when the current time precedes every Times[i].
func (o FileDriven) Evaluate(cell, edge int) []float64 {
	t := o.Time()
	idx := 0
	for i, ti := range o.Times {
		if ti <= t {
			idx = i
		} else {
			break
		}
	}
	if len(o.Values) == 0 {
		return nil
	}
	return append([]float64(nil), o.Values[idx]...)
}
