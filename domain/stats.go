// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Diagnostics: TimesteppingStatistics includes the 10-bin max_speed
// histogram the numerical-stability abort path dumps in full (no
// percentile summary is computed);
// BoundaryStatistics/QuantityStatistics are the per-tag and
// per-quantity summaries. WriteTime/WriteBoundaryStatistics are thin
// logging wrappers over the same reports.
package domain

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// TimesteppingStatistics formats a status line plus, when trackSpeeds
// is set, a max_speed histogram; triangleID optionally adds a line
// with that single cell's max_speed after the domain-wide status line.
func (o *Domain) TimesteppingStatistics(trackSpeeds bool, triangleID *int) string {
	s := io.Sf("time=%.6g timestep=%.6g (min=%.6g max=%.6g) order=%d steps=%d first_order_steps=%d smallsteps=%d\n",
		o.Time, o.Timestep, o.RecordedMinTimestep, o.RecordedMaxTimestep, o.Order, o.NumberOfSteps, o.NumberOfFirstOrderSteps, o.SmallSteps)

	if triangleID != nil && *triangleID >= 0 && *triangleID < len(o.MaxSpeed) {
		s += io.Sf("triangle %d: max_speed=%.6g\n", *triangleID, o.MaxSpeed[*triangleID])
	}

	if trackSpeeds {
		s += io.Sf("%s", o.speedHistogram())
	}
	return s
}

func (o *Domain) speedHistogram() string {
	maxOfMax := 0.0
	for _, v := range o.MaxSpeed {
		if v > maxOfMax {
			maxOfMax = v
		}
	}
	if maxOfMax == 0 {
		return "max_speed histogram: all zero\n"
	}
	const nbins = 10
	w := maxOfMax / nbins
	hist := make([]int, nbins)
	for _, v := range o.MaxSpeed {
		bin := int(v / w)
		if bin >= nbins {
			bin = nbins - 1
		}
		hist[bin]++
	}
	s := "max_speed histogram:\n"
	for b := 0; b < nbins; b++ {
		s += io.Sf("  [%6.3g, %6.3g): %d\n", float64(b)*w, float64(b+1)*w, hist[b])
	}
	return s
}

// BoundaryStatistics reports per-tag min/max over the Boundary arrays
// of the requested quantities (nil means every evolved quantity, every
// tag).
func (o *Domain) BoundaryStatistics(quantities, tags []string) string {
	if quantities == nil {
		quantities = o.Evolved
	}
	wantTag := make(map[string]bool)
	for _, t := range tags {
		wantTag[t] = true
	}

	edges := o.Mesh.BoundaryEdgesSorted()
	s := "boundary statistics:\n"
	for _, name := range quantities {
		f, ok := o.Fields[name]
		if !ok {
			continue
		}
		perTag := make(map[string][2]float64) // tag -> [min,max]
		seen := make(map[string]bool)
		for i, e := range edges {
			if i >= len(f.Boundary) {
				break
			}
			tag := o.Mesh.BoundaryTags[e]
			if len(wantTag) > 0 && !wantTag[tag] {
				continue
			}
			v := f.Boundary[i]
			if !seen[tag] {
				perTag[tag] = [2]float64{v, v}
				seen[tag] = true
				continue
			}
			mm := perTag[tag]
			if v < mm[0] {
				mm[0] = v
			}
			if v > mm[1] {
				mm[1] = v
			}
			perTag[tag] = mm
		}
		tagNames := make([]string, 0, len(perTag))
		for t := range perTag {
			tagNames = append(tagNames, t)
		}
		sort.Strings(tagNames)
		for _, t := range tagNames {
			mm := perTag[t]
			s += io.Sf("  %s @ %s: min=%.6g max=%.6g\n", name, t, mm[0], mm[1])
		}
	}
	return s
}

// QuantityStatistics reports min/mean/max of every registered field's
// centroid values with the given number of significant digits (%g).
func (o *Domain) QuantityStatistics(precision int) string {
	format := io.Sf("  %%s: min=%%.%dg mean=%%.%dg max=%%.%dg\n", precision, precision, precision)
	names := o.GetQuantityNames()
	s := "quantity statistics:\n"
	for _, name := range names {
		f := o.Fields[name]
		min, max, sum := f.Centroid[0], f.Centroid[0], 0.0
		for _, v := range f.Centroid {
			min = utl.Min(min, v)
			max = utl.Max(max, v)
			sum += v
		}
		mean := sum / float64(len(f.Centroid))
		s += io.Sf(format, name, min, mean, max)
	}
	return s
}

// WriteTime logs the current status line via the ambient io palette.
func (o *Domain) WriteTime() {
	if o.Config.ShowMsg {
		io.Pf("%s", o.TimesteppingStatistics(false, nil))
	}
}

// WriteBoundaryStatistics logs the full boundary statistics report.
func (o *Domain) WriteBoundaryStatistics(quantities, tags []string) {
	if o.Config.ShowMsg {
		io.Pf("%s", o.BoundaryStatistics(quantities, tags))
	}
}
