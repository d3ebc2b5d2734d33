// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// Domain implements frc.Reader so ForcingTerms can read quantities and
// accumulate into the update arrays without being handed the Domain
// itself.

// CentroidValues returns the named field's centroid values.
func (o *Domain) CentroidValues(name string) []float64 { return o.Fields[name].Centroid }

// ExplicitUpdate returns the named field's explicit-update accumulator.
func (o *Domain) ExplicitUpdate(name string) []float64 { return o.Fields[name].ExplicitUpdate }

// SemiImplicitUpdate returns the named field's semi-implicit-update accumulator.
func (o *Domain) SemiImplicitUpdate(name string) []float64 { return o.Fields[name].SemiImplicitUpdate }

// TightenFluxTimestep lowers FluxTimestep if dt is smaller, the hook
// forcing terms use to preserve stability.
func (o *Domain) TightenFluxTimestep(dt float64) {
	if dt < o.FluxTimestep {
		o.FluxTimestep = dt
	}
}

// DistributeToVerticesAndEdges reconstructs vertex/edge values for
// every evolved quantity at the currently active Order.
func (o *Domain) DistributeToVerticesAndEdges() {
	for _, name := range o.Evolved {
		f := o.Fields[name]
		if o.Order <= 1 {
			f.ExtrapolateFirstOrder()
		} else {
			f.ExtrapolateSecondOrder()
		}
	}
}

func (o *Domain) computeFluxesAndForcing() {
	for _, name := range o.Conserved {
		o.Fields[name].ZeroExplicitUpdate()
	}
	if o.ComputeFluxes != nil {
		o.FluxTimestep = o.ComputeFluxes(o)
	} else {
		o.FluxTimestep = o.Config.MaxTimestep
	}
	for _, term := range o.ForcingTerms {
		term.Apply(o)
	}
}

func (o *Domain) updateConservedQuantities(dt float64) {
	for _, name := range o.Conserved {
		o.Fields[name].Update(dt)
	}
}

func (o *Domain) backupConserved() {
	for _, name := range o.Conserved {
		o.Fields[name].BackupCentroid()
	}
}

func (o *Domain) saxpyConserved(a, b float64) {
	for _, name := range o.Conserved {
		o.Fields[name].SaxpyCentroid(a, b)
	}
}

// fullEulerSubstep is the primitive Euler sub-step E(Δt) shared by
// every scheme: compute_fluxes, compute_forcing_terms,
// update_timestep (this is the "first call" that fixes Δt for the
// remainder of the step), update_conserved_quantities, update_ghosts,
// time advance, reconstruction and boundary refresh.
func (o *Domain) fullEulerSubstep(finaltime *float64) (dt float64, err error) {
	o.computeFluxesAndForcing()
	if err = o.UpdateTimestep(finaltime); err != nil {
		return 0, err
	}
	dt = o.Timestep
	o.updateConservedQuantities(dt)
	if err = o.UpdateGhosts(); err != nil {
		return dt, err
	}
	o.Time += dt
	o.DistributeToVerticesAndEdges()
	if err = o.UpdateBoundary(); err != nil {
		return dt, err
	}
	return dt, nil
}

// partialSubstep recomputes fluxes/forcing at the current state and
// applies update_conserved_quantities(dt) without the ghost/vertex/
// boundary refresh that closes out a full sub-step. When
// Config.RecomputeSubStepTimestep is set, Δt is recomputed here
// instead of reusing the one the caller passed in.
func (o *Domain) partialSubstep(dt float64) (float64, error) {
	o.computeFluxesAndForcing()
	if o.Config.RecomputeSubStepTimestep {
		if err := o.UpdateTimestep(nil); err != nil {
			return dt, err
		}
		dt = o.Timestep
	}
	o.updateConservedQuantities(dt)
	return dt, nil
}

func (o *Domain) refreshAfterCombination() error {
	if err := o.UpdateGhosts(); err != nil {
		return err
	}
	o.DistributeToVerticesAndEdges()
	return o.UpdateBoundary()
}

// runEulerStep is the Euler scheme: one full sub-step.
func (o *Domain) runEulerStep(finaltime *float64) error {
	_, err := o.fullEulerSubstep(finaltime)
	return err
}

// runRK2Step is the SSP RK2 scheme: Q^{n+1} = ½Q^n + ½E(Δt)²Q^n.
func (o *Domain) runRK2Step(finaltime *float64) error {
	o.backupConserved()
	dt, err := o.fullEulerSubstep(finaltime) // Q1
	if err != nil {
		return err
	}
	if _, err = o.partialSubstep(dt); err != nil { // Q2
		return err
	}
	o.saxpyConserved(0.5, 0.5)
	return o.refreshAfterCombination()
}

// runRK3Step is the SSP RK3 Shu-Osher scheme.
func (o *Domain) runRK3Step(finaltime *float64) error {
	t0 := o.Time
	o.backupConserved()

	dt, err := o.fullEulerSubstep(finaltime) // Q1, time = t0+dt
	if err != nil {
		return err
	}

	if _, err = o.partialSubstep(dt); err != nil { // Q2
		return err
	}
	o.saxpyConserved(0.25, 0.75)
	if err = o.refreshAfterCombination(); err != nil {
		return err
	}
	o.Time = t0 + dt/2

	if _, err = o.partialSubstep(dt); err != nil { // Q3
		return err
	}
	o.saxpyConserved(2.0/3.0, 1.0/3.0)
	if err = o.refreshAfterCombination(); err != nil {
		return err
	}
	o.Time = t0 + dt

	return nil
}

func (o *Domain) runSchemeStep(finaltime *float64) error {
	switch o.Config.TimesteppingMethod {
	case "euler":
		return o.runEulerStep(finaltime)
	case "rk2":
		return o.runRK2Step(finaltime)
	case "rk3":
		return o.runRK3Step(finaltime)
	default:
		return configErr("domain: unknown timestepping method %q", o.Config.TimesteppingMethod)
	}
}

// SetTimesteppingMethod sets the scheme by name.
func (o *Domain) SetTimesteppingMethod(name string) error {
	switch name {
	case "euler", "rk2", "rk3":
		o.Config.TimesteppingMethod = name
		return nil
	default:
		return configErr("domain: unknown timestepping method %q; valid: euler, rk2, rk3", name)
	}
}

// SetTimesteppingMethodIndex sets the scheme by the integer selector
// 1=euler, 2=rk2, 3=rk3.
func (o *Domain) SetTimesteppingMethodIndex(i int) error {
	switch i {
	case 1:
		o.Config.TimesteppingMethod = "euler"
	case 2:
		o.Config.TimesteppingMethod = "rk2"
	case 3:
		o.Config.TimesteppingMethod = "rk3"
	default:
		return configErr("domain: unknown timestepping method index %d; valid: 1, 2, 3", i)
	}
	return nil
}

// SetDefaultOrder sets the default reconstruction order (1 or 2).
func (o *Domain) SetDefaultOrder(order int) error {
	if order != 1 && order != 2 {
		return configErr("domain: default order must be 1 or 2, got %d", order)
	}
	o.Config.DefaultOrder = order
	o.Order = order
	return nil
}

// SetCFL sets the CFL safety factor: must be positive; a value
// above 1 is accepted but logged as a warning.
func (o *Domain) SetCFL(x float64) error {
	if x <= 0 {
		return configErr("domain: CFL must be positive, got %g", x)
	}
	if x > 1 {
		warn(o.Config, "domain: CFL=%g is greater than 1, timestepping may be unstable", x)
	}
	o.Config.CFL = x
	return nil
}

// SetEvolveMinTimestep sets evolve_min_timestep.
func (o *Domain) SetEvolveMinTimestep(x float64) { o.Config.MinTimestep = x }

// SetEvolveMaxTimestep sets evolve_max_timestep.
func (o *Domain) SetEvolveMaxTimestep(x float64) { o.Config.MaxTimestep = x }

// SetBeta sets the limiter parameter on every registered field.
func (o *Domain) SetBeta(beta float64) {
	o.Config.BetaW = beta
	for _, f := range o.Fields {
		f.SetBeta(beta)
	}
}

// SetCentroidTransmissiveBC sets Config.CentroidTransmissiveBC; nothing
// in this package reads the flag, so boundary handling is unchanged by it.
func (o *Domain) SetCentroidTransmissiveBC(flag bool) { o.Config.CentroidTransmissiveBC = flag }
