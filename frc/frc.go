// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frc implements forcing terms: callables that read the
// domain and accumulate source contributions into each quantity's
// update arrays. Two concrete terms apply to any conservation law: a
// constant source and a linear-drag friction term.
package frc

// Reader is the narrow read-only view of the domain a forcing term is
// allowed to use: it may only read quantities and write into the two
// update accumulators handed to Apply, never mutate the Domain
// directly.
type Reader interface {
	CentroidValues(name string) []float64
	ExplicitUpdate(name string) []float64
	SemiImplicitUpdate(name string) []float64
	TightenFluxTimestep(dt float64)
}

// Term is a callable that reads the domain and accumulates into
// explicit_update/semi_implicit_update; it may also tighten
// flux_timestep to preserve stability.
type Term interface {
	Apply(d Reader)
}

// Constant adds a fixed rate to the named quantity's explicit update
// every step, e.g. a steady rainfall/source term.
type Constant struct {
	Quantity string
	Rate     float64
}

// Apply adds Rate to every cell's explicit update for Quantity.
func (o Constant) Apply(d Reader) {
	upd := d.ExplicitUpdate(o.Quantity)
	for i := range upd {
		upd[i] += o.Rate
	}
}

// LinearFriction drags a momentum-like quantity toward zero
// proportionally to Coefficient, added as a semi-implicit update so
// Field.Update can fold it in implicitly rather than risk
// overshoot from a purely explicit drag term.
type LinearFriction struct {
	Quantity    string
	Coefficient float64
}

// Apply subtracts Coefficient*value from the semi-implicit update of Quantity.
func (o LinearFriction) Apply(d Reader) {
	vals := d.CentroidValues(o.Quantity)
	upd := d.SemiImplicitUpdate(o.Quantity)
	for i, v := range vals {
		upd[i] += -o.Coefficient * v
	}
}
