// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/cpmech/gofv/expr"

// SetQuantitiesToBeMonitored registers an extrema monitor for name.
// If expression is non-empty, name is a derived quantity:
// the expression is trial-evaluated here so a bad reference fails at
// registration rather than mid-evolve. If polygon is non-nil, the set
// of cells whose centroid lies strictly inside it (absolute
// coordinates) is computed once, now. timeWindow, if non-nil, gates
// every future UpdateExtrema call to t∈[timeWindow[0],timeWindow[1]].
func (o *Domain) SetQuantitiesToBeMonitored(name, expression string, polygon [][2]float64, timeWindow *[2]float64) error {
	if expression != "" {
		if _, err := expr.Eval(expression, o.Fields); err != nil {
			return err
		}
	} else if _, ok := o.Fields[name]; !ok {
		return configErr("domain: cannot monitor unknown quantity %q", name)
	}

	m := &ExtremaMonitor{Name: name, Expression: expression}
	if polygon != nil {
		m.Polygon = polygon
		m.MonitorCells = o.Mesh.InsidePolygon(polygon)
	}
	if timeWindow != nil {
		m.HasTimeWindow = true
		m.T0, m.T1 = timeWindow[0], timeWindow[1]
	}
	o.Extrema[name] = m
	return nil
}

// UpdateExtrema refreshes every registered monitor against the current
// state, called once when Evolve starts and once after every scheme
// step of the evolve loop.
func (o *Domain) UpdateExtrema() error {
	eps := o.Config.Epsilon
	for _, m := range o.Extrema {
		if m.HasTimeWindow && (o.Time < m.T0 || o.Time > m.T1) {
			continue
		}
		if m.Polygon != nil && len(m.MonitorCells) == 0 {
			continue // no cell centroid lies inside the polygon
		}
		f := o.Fields[m.Name]
		if m.Expression != "" {
			var err error
			f, err = expr.Eval(m.Expression, o.Fields)
			if err != nil {
				return err
			}
		}

		maxV := f.GetMaximumValue(m.MonitorCells)
		if m.Max == nil || maxV > *m.Max+eps {
			v := maxV
			m.Max = &v
			m.MaxX, m.MaxY = f.GetMaximumLocation(m.MonitorCells)
			t := o.Time
			m.MaxTime = &t
		}

		minV := f.GetMinimumValue(m.MonitorCells)
		if m.Min == nil || minV < *m.Min-eps {
			v := minV
			m.Min = &v
			m.MinX, m.MinY = f.GetMinimumLocation(m.MonitorCells)
			t := o.Time
			m.MinTime = &t
		}
	}
	return nil
}
