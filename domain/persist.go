// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/cpmech/gofv/checkpoint"

// snapshot builds a checkpoint.State from the domain's current state.
func (o *Domain) snapshot() *checkpoint.State {
	s := &checkpoint.State{
		Time:                o.Time,
		Fields:              make(map[string]checkpoint.FieldState, len(o.Fields)),
		NumberOfSteps:       o.NumberOfSteps,
		RecordedMinTimestep: o.RecordedMinTimestep,
		RecordedMaxTimestep: o.RecordedMaxTimestep,
		YieldTime:           o.YieldTime,
		Order:               o.Order,
		SmallSteps:          o.SmallSteps,
		Extrema:             make(map[string]checkpoint.ExtremaState, len(o.Extrema)),
	}
	for name, f := range o.Fields {
		s.Fields[name] = checkpoint.FieldState{
			Centroid: append([]float64(nil), f.Centroid...),
			Vertex:   append([][3]float64(nil), f.Vertex...),
			Edge:     append([][3]float64(nil), f.Edge...),
			Boundary: append([]float64(nil), f.Boundary...),
		}
	}
	for name, m := range o.Extrema {
		s.Extrema[name] = checkpoint.ExtremaState{
			Min: m.Min, Max: m.Max,
			MinX: m.MinX, MinY: m.MinY, MaxX: m.MaxX, MaxY: m.MaxY,
			MinTime: m.MinTime, MaxTime: m.MaxTime,
		}
	}
	return s
}

// restore applies a previously stored checkpoint.State back onto the domain.
func (o *Domain) restore(s *checkpoint.State) {
	o.Time = s.Time
	o.NumberOfSteps = s.NumberOfSteps
	o.RecordedMinTimestep = s.RecordedMinTimestep
	o.RecordedMaxTimestep = s.RecordedMaxTimestep
	o.YieldTime = s.YieldTime
	o.Order = s.Order
	o.SmallSteps = s.SmallSteps
	for name, fs := range s.Fields {
		f, ok := o.Fields[name]
		if !ok {
			continue
		}
		copy(f.Centroid, fs.Centroid)
		copy(f.Vertex, fs.Vertex)
		copy(f.Edge, fs.Edge)
		copy(f.Boundary, fs.Boundary)
	}
	for name, es := range s.Extrema {
		m, ok := o.Extrema[name]
		if !ok {
			continue
		}
		m.Min, m.Max = es.Min, es.Max
		m.MinX, m.MinY, m.MaxX, m.MaxY = es.MinX, es.MinY, es.MaxX, es.MaxY
		m.MinTime, m.MaxTime = es.MinTime, es.MaxTime
	}
}

// Checkpoint stores the current state via the configured Checkpointer, if any.
func (o *Domain) Checkpoint() error {
	if o.Checkpointer == nil {
		return nil
	}
	_, err := o.Checkpointer.Store(o.snapshot())
	return err
}

// RestoreLatestCheckpoint restores the most recently stored checkpoint, if any.
func (o *Domain) RestoreLatestCheckpoint() bool {
	if o.Checkpointer == nil {
		return false
	}
	s, ok := o.Checkpointer.Latest()
	if !ok {
		return false
	}
	o.restore(s)
	return true
}
