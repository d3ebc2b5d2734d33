// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import "github.com/cpmech/gosl/io"

// UpdateTimestep implements the adaptive timestep controller:
// protection, CFL-limited timestep, small-step/order-fallback handling,
// and clamping against finaltime/yieldtime overshoot.
func (o *Domain) UpdateTimestep(finaltime *float64) error {
	o.applyProtectionAgainstIsolatedDegenerateTimesteps()

	o.Timestep = o.Config.CFL * o.FluxTimestep
	if o.Timestep > o.Config.MaxTimestep {
		o.Timestep = o.Config.MaxTimestep
	}

	if o.NumberOfSteps == 0 || o.Timestep < o.RecordedMinTimestep {
		o.RecordedMinTimestep = o.Timestep
	}
	if o.NumberOfSteps == 0 || o.Timestep > o.RecordedMaxTimestep {
		o.RecordedMaxTimestep = o.Timestep
	}

	if o.Timestep < o.Config.MinTimestep {
		o.SmallSteps++
		if o.SmallSteps > o.Config.MaxSmallsteps {
			o.SmallSteps = 0
			if o.Order == 1 {
				o.Timestep = o.Config.MinTimestep
				if o.Config.ShowMsg {
					io.PfRed(o.TimesteppingStatistics(true, nil))
				}
				return stabilityErr("domain: timestep stayed below min_timestep (%g) for more than %d consecutive steps at order 1",
					o.Config.MinTimestep, o.Config.MaxSmallsteps)
			}
			o.Order = 1
			warn(o.Config, "domain: dropping reconstruction order to 1 after %d consecutive small steps", o.Config.MaxSmallsteps)
		}
	} else {
		o.SmallSteps = 0
		if o.Order == 1 && o.Config.DefaultOrder == 2 {
			o.Order = 2
		}
	}

	if finaltime != nil {
		if rem := *finaltime - o.Time; rem < o.Timestep {
			o.Timestep = rem
		}
	}
	if rem := o.YieldTime - o.Time; rem < o.Timestep {
		o.Timestep = rem
	}
	return nil
}

// applyProtectionAgainstIsolatedDegenerateTimesteps is a
// stability hack that zeroes momentum-like quantities on the signature
// of a single triangle driving the whole timestep down.
func (o *Domain) applyProtectionAgainstIsolatedDegenerateTimesteps() {
	if !o.Config.ProtectAgainstIsolatedDegenerateTimesteps || len(o.ProtectionQuantities) == 0 {
		return
	}

	maxOfMax := 0.0
	for _, v := range o.MaxSpeed {
		if v > maxOfMax {
			maxOfMax = v
		}
	}
	if maxOfMax < 10 {
		return
	}

	const nbins = 10
	binWidth := maxOfMax / float64(nbins)
	if binWidth == 0 {
		return
	}
	hist := make([]int, nbins)
	for _, v := range o.MaxSpeed {
		bin := int(v / binWidth)
		if bin >= nbins {
			bin = nbins - 1
		}
		if bin < 0 {
			bin = 0
		}
		hist[bin]++
	}

	middleBinsEmpty := true
	for b := 4; b <= 8; b++ {
		if hist[b] != 0 {
			middleBinsEmpty = false
			break
		}
	}
	if !middleBinsEmpty || hist[9] == 0 || nbins <= 1 {
		return
	}

	threshold := 9 * binWidth // upper edge of bin 8
	for i, v := range o.MaxSpeed {
		if i >= len(o.TriFullFlag) || o.TriFullFlag[i] != 1 {
			continue
		}
		if v <= threshold {
			continue
		}
		for _, name := range o.ProtectionQuantities {
			if f, ok := o.Fields[name]; ok {
				f.Centroid[i] = 0
			}
		}
		o.MaxSpeed[i] = 0
		warn(o.Config, "domain: isolated degenerate timestep protection zeroed momentum at cell %d (max_speed=%g)", i, v)
	}
}
