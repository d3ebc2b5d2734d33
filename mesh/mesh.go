// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the triangular-mesh collaborator consumed by
// package domain: geometry, connectivity and boundary-tag lookup for a
// 2-D unstructured triangular mesh. Mesh file parsing is out of scope;
// a Mesh is always built from coordinates, triangles and a boundary map
// already resolved in memory.
package mesh

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Edge identifies a half-edge of the mesh: the cell it belongs to and
// the local edge index (0, 1 or 2) opposite the vertex of the same index.
type Edge struct {
	Cell int
	Edge int
}

// Mesh holds the geometry and connectivity of a 2-D triangular mesh.
//
// Full triangles (owned by this processor) are stored first; ghost
// triangles (mirroring triangles owned by other processors) follow.
// NumberOfFullTriangles and NumberOfFullNodes mark that split.
type Mesh struct {
	Coordinates [][2]float64 // [nverts] node coordinates
	Triangles   [][3]int     // [ntri] vertex ids, one triangle per row

	Neighbours     [][3]int        // [ntri][3] neighbour triangle id per edge; negative => boundary slot
	NeighbourEdges [][3]int        // [ntri][3] local edge index in the neighbour, -1 on boundary
	Surrogates     [][3]int        // [ntri][3] neighbour id used for gradient reconstruction (falls back to self across boundaries)
	Normals        [][3][2]float64 // [ntri][3] outward unit normal per edge
	EdgeLengths    [][3]float64    // [ntri][3]
	Radii          []float64       // [ntri] inscribed circle radius
	CellAreas      []float64       // [ntri]
	CentroidXY     [][2]float64    // [ntri]
	VertexXY       [][3][2]float64 // [ntri][3]

	BoundaryTags map[Edge]string  // (cell,edge) => tag, for edges on the boundary
	TaggedCells  map[string][]int // tag => cell ids (region tagging, independent of boundary tags)

	GeoRefX, GeoRefY float64 // georeference offset added to get absolute coordinates

	NumberOfFullTriangles int // triangles owned by this processor
	NumberOfFullNodes     int // nodes owned by this processor
}

// New builds a Mesh from coordinates, triangle connectivity and a
// boundary tag map, computing all derived geometric quantities.
//
// boundary maps (cell,edge) pairs lying on the mesh boundary (no
// neighbour across that edge) to a symbolic tag string.
func New(coords [][2]float64, triangles [][3]int, boundary map[Edge]string) (o *Mesh, err error) {
	o = new(Mesh)
	o.Coordinates = coords
	o.Triangles = triangles
	o.BoundaryTags = boundary
	if o.BoundaryTags == nil {
		o.BoundaryTags = make(map[Edge]string)
	}
	o.TaggedCells = make(map[string][]int)
	o.NumberOfFullTriangles = len(triangles)
	o.NumberOfFullNodes = len(coords)

	n := len(triangles)
	o.Neighbours = make([][3]int, n)
	o.NeighbourEdges = make([][3]int, n)
	o.Surrogates = make([][3]int, n)
	o.Normals = make([][3][2]float64, n)
	o.EdgeLengths = make([][3]float64, n)
	o.Radii = make([]float64, n)
	o.CellAreas = make([]float64, n)
	o.CentroidXY = make([][2]float64, n)
	o.VertexXY = make([][3][2]float64, n)

	// build an edge => (cell,localedge) map to find neighbours by shared vertex pairs
	type halfedge struct{ cell, edge int }
	edgeOwner := make(map[[2]int]halfedge)

	for i, tri := range triangles {
		for k := 0; k < 3; k++ {
			o.VertexXY[i][k] = coords[tri[k]]
		}
		o.Neighbours[i] = [3]int{-1, -1, -1}
		o.NeighbourEdges[i] = [3]int{-1, -1, -1}

		// edge k is opposite vertex k, i.e. spans vertices (k+1, k+2) mod 3
		for k := 0; k < 3; k++ {
			a, b := tri[(k+1)%3], tri[(k+2)%3]
			key := sortedPair(a, b)
			if owner, found := edgeOwner[key]; found {
				o.Neighbours[i][k] = owner.cell
				o.NeighbourEdges[i][k] = owner.edge
				o.Neighbours[owner.cell][owner.edge] = i
				o.NeighbourEdges[owner.cell][owner.edge] = k
			} else {
				edgeOwner[key] = halfedge{i, k}
			}
		}
	}

	for i, tri := range triangles {
		x0, y0 := coords[tri[0]][0], coords[tri[0]][1]
		x1, y1 := coords[tri[1]][0], coords[tri[1]][1]
		x2, y2 := coords[tri[2]][0], coords[tri[2]][1]

		cx, cy := (x0+x1+x2)/3.0, (y0+y1+y2)/3.0
		o.CentroidXY[i] = [2]float64{cx, cy}

		area := triangleArea(x0, y0, x1, y1, x2, y2)
		o.CellAreas[i] = area

		// edge k opposite vertex k: (v(k+1), v(k+2))
		verts := [3][2]float64{{x0, y0}, {x1, y1}, {x2, y2}}
		perim := 0.0
		for k := 0; k < 3; k++ {
			p1 := verts[(k+1)%3]
			p2 := verts[(k+2)%3]
			dx, dy := p2[0]-p1[0], p2[1]-p1[1]
			length := hypot(dx, dy)
			o.EdgeLengths[i][k] = length
			perim += length

			// outward normal: rotate edge vector -90deg, pointing away from centroid
			nx, ny := dy, -dx
			norm := hypot(nx, ny)
			if norm > 0 {
				nx, ny = nx/norm, ny/norm
			}
			mx, my := (p1[0]+p2[0])/2.0, (p1[1]+p2[1])/2.0
			if (mx-cx)*nx+(my-cy)*ny < 0 {
				nx, ny = -nx, -ny
			}
			o.Normals[i][k] = [2]float64{nx, ny}

			o.Surrogates[i][k] = i
			if o.Neighbours[i][k] >= 0 {
				o.Surrogates[i][k] = o.Neighbours[i][k]
			}
		}
		if perim > 0 {
			o.Radii[i] = 2.0 * area / perim
		}
	}

	// validate the supplied boundary map references real boundary edges
	for e := range o.BoundaryTags {
		if e.Cell < 0 || e.Cell >= n {
			return nil, chk.Err("boundary edge references unknown cell %d", e.Cell)
		}
		if o.Neighbours[e.Cell][e.Edge] >= 0 {
			return nil, chk.Err("boundary edge (%d,%d) is not on the mesh boundary (has a neighbour)", e.Cell, e.Edge)
		}
	}
	return o, nil
}

// NTriangles returns the total number of triangles (full + ghost).
func (o *Mesh) NTriangles() int { return len(o.Triangles) }

// NBoundaryEdges returns the number of tagged boundary edges; this is
// also the size of every QuantityField's Boundary array and the length
// of BoundaryEdgesSorted(). Package domain fills Boundary[i] from the
// i-th bound boundary object; edges whose tag is bound to nil have no
// slot, so positions match BoundaryEdgesSorted() only when every tag
// is bound to an object.
func (o *Mesh) NBoundaryEdges() int { return len(o.BoundaryTags) }

// CentroidCoords returns the per-triangle centroid coordinates, the
// accessor form package qty's narrow Mesh interface consumes.
func (o *Mesh) CentroidCoords() [][2]float64 { return o.CentroidXY }

// VertexCoords returns the per-triangle vertex coordinates.
func (o *Mesh) VertexCoords() [][3][2]float64 { return o.VertexXY }

// SurrogateNeighbours returns the per-edge gradient-reconstruction neighbour ids.
func (o *Mesh) SurrogateNeighbours() [][3]int { return o.Surrogates }

// Areas returns the per-triangle area.
func (o *Mesh) Areas() []float64 { return o.CellAreas }

// SetNeighbour overrides the neighbour slot of a half-edge; used by
// package domain to encode boundary-object positions as negative
// neighbour indices.
func (o *Mesh) SetNeighbour(cell, edge, value int) {
	o.Neighbours[cell][edge] = value
}

// BoundaryEdgesSorted returns the boundary (cell,edge) pairs in
// ascending order, the iteration order boundary binding and
// boundary-value update rely on for reproducibility.
func (o *Mesh) BoundaryEdgesSorted() []Edge {
	edges := make([]Edge, 0, len(o.BoundaryTags))
	for e := range o.BoundaryTags {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Cell != edges[j].Cell {
			return edges[i].Cell < edges[j].Cell
		}
		return edges[i].Edge < edges[j].Edge
	})
	return edges
}

// BoundaryTagSet returns the set of distinct tags bound to boundary edges.
func (o *Mesh) BoundaryTagSet() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, tag := range o.BoundaryTags {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// TagCells records cell ids under a region tag (independent of the
// boundary-tag map), used by Domain.SetRegion.
func (o *Mesh) TagCells(tag string, cells []int) {
	o.TaggedCells[tag] = cells
}

// TaggedElements returns the cell ids registered under tag.
func (o *Mesh) TaggedElements(tag string) []int {
	return o.TaggedCells[tag]
}

// AbsoluteCentroid returns the centroid of cell i in absolute (georeferenced) coordinates.
func (o *Mesh) AbsoluteCentroid(i int) (x, y float64) {
	return o.CentroidXY[i][0] + o.GeoRefX, o.CentroidXY[i][1] + o.GeoRefY
}

// InsidePolygon returns the indices i for which the centroid of
// triangle i (in absolute coordinates) lies strictly inside polygon,
// using the standard ray-casting test.
func (o *Mesh) InsidePolygon(polygon [][2]float64) []int {
	var inside []int
	for i := range o.Triangles {
		x, y := o.AbsoluteCentroid(i)
		if pointInPolygon(x, y, polygon) {
			inside = append(inside, i)
		}
	}
	return inside
}

// CheckIntegrity validates basic mesh invariants: every triangle has
// positive area and the neighbour/neighbour-edge tables are
// consistent on non-boundary edges.
func (o *Mesh) CheckIntegrity() error {
	for i, a := range o.CellAreas {
		if a <= 0 {
			return chk.Err("triangle %d has non-positive area %g", i, a)
		}
	}
	for i := range o.Triangles {
		for k := 0; k < 3; k++ {
			j := o.Neighbours[i][k]
			if j < 0 {
				continue
			}
			ke := o.NeighbourEdges[i][k]
			if o.Neighbours[j][ke] != i {
				return chk.Err("inconsistent neighbour table between triangles %d and %d", i, j)
			}
		}
	}
	return nil
}

// auxiliary geometry helpers /////////////////////////////////////////////////////////////////////

func sortedPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

func triangleArea(x0, y0, x1, y1, x2, y2 float64) float64 {
	a := 0.5 * ((x1-x0)*(y2-y0) - (x2-x0)*(y1-y0))
	if a < 0 {
		return -a
	}
	return a
}

func hypot(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

func pointInPolygon(x, y float64, poly [][2]float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) {
			xcross := xi + (y-yi)*(xj-xi)/(yj-yi)
			if x < xcross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
