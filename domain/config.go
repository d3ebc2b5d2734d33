// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain implements the core time-evolution driver: Domain
// construction and quantity registry, boundary binding, ghost update,
// the adaptive timestep controller, the three evolution schemes,
// extrema monitoring and the evolve loop.
package domain

// Config collects the integration parameters, passed explicitly to
// New rather than read from process globals.
type Config struct {
	CFL   float64 // safety factor on flux_timestep, default 1
	BetaW float64 // limiter parameter handed to every QuantityField

	Epsilon float64 // ε_single_precision: tolerance for finaltime overshoot and extrema comparison

	DefaultOrder       int    // 1 or 2
	TimesteppingMethod string // "euler", "rk2" or "rk3"

	MaxTimestep   float64 // evolve_max_timestep
	MinTimestep   float64 // evolve_min_timestep
	MaxSmallsteps int     // max_smallsteps

	ProtectAgainstIsolatedDegenerateTimesteps bool

	// RecomputeSubStepTimestep, when true, recomputes Δt via update_timestep
	// on every RK2/RK3 sub-step instead of reusing the Δt chosen on the
	// first sub-step. Default false reuses the first Δt, accepting the
	// stability of SSP sub-steps as an empirical property.
	RecomputeSubStepTimestep bool

	CentroidTransmissiveBC bool

	// ShowMsg gates progress/warning output through io.Pf-family calls.
	ShowMsg bool
}

// DefaultConfig returns the stock integration defaults.
func DefaultConfig() Config {
	return Config{
		CFL:                1.0,
		BetaW:              0.5,
		Epsilon:            1.0e-12,
		DefaultOrder:       2,
		TimesteppingMethod: "euler",
		MaxTimestep:        1.0,
		MinTimestep:        1.0e-6,
		MaxSmallsteps:      50,

		ProtectAgainstIsolatedDegenerateTimesteps: false,
		RecomputeSubStepTimestep:                  false,
		CentroidTransmissiveBC:                    false,
		ShowMsg:                                   true,
	}
}
