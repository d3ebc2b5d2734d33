// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// StepKind classifies one Step() result.
type StepKind int

// Step outcomes.
const (
	Yielded StepKind = iota
	Done
	Failed
)

// StepResult is the return value of Evolution.Step.
type StepResult struct {
	Kind StepKind
	Time float64
	Err  error
}

// Evolution is the cooperative, pull-style iterator Evolve returns:
// the caller repeatedly calls Step(), inspecting or mutating the
// Domain between calls. No sub-step of a scheme yields.
type Evolution struct {
	d *Domain

	yieldStep   float64
	finalTime   float64
	skipInitial bool

	started bool
	done    bool
	failed  error
}

// Evolve begins an evolution: exactly one of finaltime/duration may be
// given. Time state is reset, ghosts/reconstruction/extrema/boundary
// are refreshed once up front, and the latest checkpoint is restored
// if a Checkpointer is set.
func (o *Domain) Evolve(yieldstep, finaltime, duration *float64, skipInitial bool) (*Evolution, error) {
	if !o.BoundarySet {
		return nil, configErr("domain: evolve requires set_boundary to have been called")
	}
	if finaltime != nil && duration != nil {
		return nil, configErr("domain: evolve: exactly one of finaltime or duration may be given")
	}
	if finaltime == nil && duration == nil {
		return nil, configErr("domain: evolve requires finaltime or duration")
	}

	ys := o.Config.MaxTimestep
	if yieldstep != nil {
		ys = *yieldstep
	}
	var ft float64
	if finaltime != nil {
		ft = *finaltime
	} else {
		ft = o.StartTime + *duration
	}

	o.Order = o.Config.DefaultOrder
	o.Time = o.StartTime
	o.YieldTime = o.Time + ys
	o.NumberOfSteps = 0
	o.NumberOfFirstOrderSteps = 0
	o.SmallSteps = 0
	o.RecordedMinTimestep = 0
	o.RecordedMaxTimestep = 0
	for i := range o.MaxSpeed {
		o.MaxSpeed[i] = 0
	}

	if err := o.ExchangeGhosts(); err != nil {
		return nil, err
	}
	if err := o.UpdateGhosts(); err != nil {
		return nil, err
	}
	o.DistributeToVerticesAndEdges()
	if err := o.UpdateExtrema(); err != nil {
		return nil, err
	}
	if err := o.UpdateBoundary(); err != nil {
		return nil, err
	}

	o.RestoreLatestCheckpoint()

	return &Evolution{d: o, yieldStep: ys, finalTime: ft, skipInitial: skipInitial}, nil
}

// Step advances the evolution, running sub-steps internally until the
// next yield point: the optional initial yield, every yieldtime
// crossing, or the terminal yield at finaltime.
func (e *Evolution) Step() StepResult {
	d := e.d

	if e.done {
		if e.failed != nil {
			return StepResult{Kind: Failed, Time: d.Time, Err: e.failed}
		}
		return StepResult{Kind: Done, Time: d.Time}
	}

	if !e.started {
		e.started = true
		if !e.skipInitial {
			return StepResult{Kind: Yielded, Time: d.Time}
		}
	}

	for {
		ft := e.finalTime
		if err := d.runSchemeStep(&ft); err != nil {
			e.done, e.failed = true, err
			return StepResult{Kind: Failed, Time: d.Time, Err: err}
		}
		if err := d.UpdateExtrema(); err != nil {
			e.done, e.failed = true, err
			return StepResult{Kind: Failed, Time: d.Time, Err: err}
		}
		d.NumberOfSteps++
		if d.Order == 1 {
			d.NumberOfFirstOrderSteps++
		}

		if d.Time >= e.finalTime-d.Config.Epsilon {
			if d.Time > e.finalTime+d.Config.Epsilon {
				err := stabilityErr("domain: finaltime overshoot: time=%.6g > finaltime=%.6g", d.Time, e.finalTime)
				e.done, e.failed = true, err
				return StepResult{Kind: Failed, Time: d.Time, Err: err}
			}
			d.Time = e.finalTime
			e.done = true
			return StepResult{Kind: Yielded, Time: d.Time}
		}

		if d.Time >= d.YieldTime {
			if err := d.Checkpoint(); err != nil {
				e.done, e.failed = true, err
				return StepResult{Kind: Failed, Time: d.Time, Err: err}
			}
			yieldedAt := d.Time
			d.YieldTime += e.yieldStep
			d.RecordedMinTimestep = 0
			d.RecordedMaxTimestep = 0
			d.NumberOfSteps = 0
			d.NumberOfFirstOrderSteps = 0
			for i := range d.MaxSpeed {
				d.MaxSpeed[i] = 0
			}
			return StepResult{Kind: Yielded, Time: yieldedAt}
		}
		// no yield due yet: keep sub-stepping without returning to the caller
	}
}

// EvolveToEnd is the convenience that drains the sequence.
func (e *Evolution) EvolveToEnd() error {
	for {
		r := e.Step()
		switch r.Kind {
		case Failed:
			return r.Err
		case Done:
			return nil
		}
	}
}
