// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// ExchangeGhosts runs the cross-process half of ghost exchange.
// Evolve calls it once before its initial refresh; after that, callers
// invoke it between yields. The steps themselves only run the
// UpdateGhosts local scatter.
func (o *Domain) ExchangeGhosts() error {
	return o.Exchanger.Exchange(o.GhostDescriptors, o.conservedCentroidSlices())
}

func (o *Domain) conservedCentroidSlices() [][]float64 {
	out := make([][]float64, len(o.Conserved))
	for i, name := range o.Conserved {
		out[i] = o.Fields[name].Centroid
	}
	return out
}

// UpdateGhosts performs the in-process local scatter: for this
// processor's own descriptor entry (if present), copy conserved-quantity
// centroid values from full_ids slots to ghost_ids slots, one
// conserved name at a time in list order. Cross-process transport is
// assumed to have already happened via ExchangeGhosts.
func (o *Domain) UpdateGhosts() error {
	local, ok := o.GhostDescriptors[o.ProcessorRank]
	if !ok || local == nil {
		return nil
	}
	n := len(local.FullIds)
	if len(local.GhostIds) < n {
		n = len(local.GhostIds)
	}
	for _, name := range o.Conserved {
		f := o.Fields[name]
		for k := 0; k < n; k++ {
			f.Centroid[local.GhostIds[k]] = f.Centroid[local.FullIds[k]]
		}
	}
	return nil
}
