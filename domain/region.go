// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

// RegionFunc applies some domain mutation (typically SetQuantity-style
// assignment) to the cells tagged Tag.
type RegionFunc struct {
	Tag   string
	Apply func(cellIDs []int, d *Domain)
}

// SetRegion applies each region function, in order, over its tagged
// cell group.
func (o *Domain) SetRegion(regions ...RegionFunc) error {
	for _, r := range regions {
		cells := o.Mesh.TaggedElements(r.Tag)
		if len(cells) == 0 {
			return configErr("domain: region tag %q has no tagged cells", r.Tag)
		}
		r.Apply(cells, o)
	}
	return nil
}
