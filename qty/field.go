// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qty implements the QuantityField collaborator consumed by
// package domain: per-quantity centroid/vertex/edge/boundary storage
// and the extrapolation, update and arithmetic operations the driver
// delegates to it.
package qty

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Mesh is the narrow slice of mesh.Mesh that a Field needs: cell count,
// geometry for limiting, and boundary-edge count. Declared locally
// (rather than importing package mesh) so qty has no dependency on the
// concrete mesh implementation.
type Mesh interface {
	NTriangles() int
	NBoundaryEdges() int
	CentroidCoords() [][2]float64
	VertexCoords() [][3][2]float64
	SurrogateNeighbours() [][3]int
	Areas() []float64
}

// Field is one named mesh-resident quantity.
type Field struct {
	N int // number of triangles
	B int // number of boundary edges

	Centroid []float64    // [N]
	Vertex   [][3]float64 // [N]
	Edge     [][3]float64 // [N]
	Boundary []float64    // [B]

	ExplicitUpdate     []float64 // [N] accumulator, zeroed by the driver before each flux pass
	SemiImplicitUpdate []float64 // [N] accumulator, zeroed by the Field itself on Update

	Beta float64 // limiter parameter

	backupCentroid []float64 // scratch for backup/saxpy

	mesh Mesh
}

// NewField allocates a zeroed Field sized to the given mesh.
func NewField(m Mesh) *Field {
	n, b := m.NTriangles(), m.NBoundaryEdges()
	return &Field{
		N:                  n,
		B:                  b,
		Centroid:           make([]float64, n),
		Vertex:             make([][3]float64, n),
		Edge:               make([][3]float64, n),
		Boundary:           make([]float64, b),
		ExplicitUpdate:     make([]float64, n),
		SemiImplicitUpdate: make([]float64, n),
		mesh:               m,
	}
}

// SetBeta sets the limiter coefficient used by ExtrapolateSecondOrder.
func (o *Field) SetBeta(beta float64) { o.Beta = beta }

// SetConstant sets every centroid value to v.
func (o *Field) SetConstant(v float64) {
	for i := range o.Centroid {
		o.Centroid[i] = v
	}
}

// SetFromSlice copies vals into the centroid array.
func (o *Field) SetFromSlice(vals []float64) error {
	if len(vals) != o.N {
		return chk.Err("SetFromSlice: expected %d values, got %d", o.N, len(vals))
	}
	copy(o.Centroid, vals)
	return nil
}

// SetFromFunction evaluates fcn(t, x) at every centroid, as given by
// the mesh's CentroidCoords (no georeference offset is added), and
// stores the result.
func (o *Field) SetFromFunction(t float64, fcn fun.TimeSpace) {
	coords := o.mesh.CentroidCoords()
	for i := 0; i < o.N; i++ {
		o.Centroid[i] = fcn.F(t, coords[i][:])
	}
}

// Clone returns a deep copy of the field sharing the same mesh handle.
func (o *Field) Clone() *Field {
	c := &Field{N: o.N, B: o.B, Beta: o.Beta, mesh: o.mesh}
	c.Centroid = append([]float64(nil), o.Centroid...)
	c.Vertex = append([][3]float64(nil), o.Vertex...)
	c.Edge = append([][3]float64(nil), o.Edge...)
	c.Boundary = append([]float64(nil), o.Boundary...)
	c.ExplicitUpdate = append([]float64(nil), o.ExplicitUpdate...)
	c.SemiImplicitUpdate = append([]float64(nil), o.SemiImplicitUpdate...)
	return c
}

// BackupCentroid saves the current centroid values for a later SaxpyCentroid.
func (o *Field) BackupCentroid() {
	if o.backupCentroid == nil {
		o.backupCentroid = make([]float64, o.N)
	}
	la.VecCopy(o.backupCentroid, 1, o.Centroid)
}

// SaxpyCentroid sets centroid <- a*centroid + b*backup.
func (o *Field) SaxpyCentroid(a, b float64) {
	for i := range o.Centroid {
		o.Centroid[i] = a*o.Centroid[i] + b*o.backupCentroid[i]
	}
}

// Update applies one explicit timestep: centroid += dt*explicit +
// dt*semi_implicit/(1-0.5*dt*semi_implicit/centroid). ExplicitUpdate
// is left alone (the driver zeroes it before the next flux pass);
// SemiImplicitUpdate is zeroed here.
func (o *Field) Update(dt float64) {
	for i := range o.Centroid {
		c := o.Centroid[i]
		c += dt * o.ExplicitUpdate[i]
		if s := o.SemiImplicitUpdate[i]; s != 0 {
			denom := 1.0 - 0.5*dt*s/safeDiv(o.Centroid[i])
			if denom != 0 {
				c += dt * s / denom
			}
		}
		o.Centroid[i] = c
		o.SemiImplicitUpdate[i] = 0
	}
}

func safeDiv(v float64) float64 {
	if v == 0 {
		return 1e-30
	}
	return v
}

// ExtrapolateFirstOrder copies each centroid value to its vertices and edges.
func (o *Field) ExtrapolateFirstOrder() {
	for i := 0; i < o.N; i++ {
		c := o.Centroid[i]
		o.Vertex[i] = [3]float64{c, c, c}
		o.Edge[i] = [3]float64{c, c, c}
	}
}

// ExtrapolateSecondOrder reconstructs a linear function per cell from
// its centroid value and its surrogate neighbours' centroid values,
// using a Barth-Jespersen style limiter scaled by Beta, then evaluates
// that linear function at the cell's vertices and edge midpoints.
func (o *Field) ExtrapolateSecondOrder() {
	coords := o.mesh.CentroidCoords()
	verts := o.mesh.VertexCoords()
	surrogates := o.mesh.SurrogateNeighbours()

	for i := 0; i < o.N; i++ {
		cx, cy := coords[i][0], coords[i][1]
		c := o.Centroid[i]

		// least-squares-free gradient estimate: average of the three
		// neighbour secant slopes, a common cheap FV gradient.
		var gx, gy float64
		var nterms int
		for k := 0; k < 3; k++ {
			j := surrogates[i][k]
			if j == i {
				continue
			}
			dx, dy := coords[j][0]-cx, coords[j][1]-cy
			dq := o.Centroid[j] - c
			d2 := dx*dx + dy*dy
			if d2 == 0 {
				continue
			}
			gx += dq * dx / d2
			gy += dq * dy / d2
			nterms++
		}
		if nterms > 0 {
			gx /= float64(nterms)
			gy /= float64(nterms)
		}

		// limit the gradient so the reconstructed vertex values stay
		// within beta times the neighbourhood's min/max spread
		qmin, qmax := c, c
		for k := 0; k < 3; k++ {
			j := surrogates[i][k]
			if o.Centroid[j] < qmin {
				qmin = o.Centroid[j]
			}
			if o.Centroid[j] > qmax {
				qmax = o.Centroid[j]
			}
		}
		limiter := 1.0
		for k := 0; k < 3; k++ {
			vx, vy := verts[i][k][0], verts[i][k][1]
			dq := gx*(vx-cx) + gy*(vy-cy)
			var l float64
			switch {
			case dq > 1e-14 && qmax > c:
				l = o.Beta * (qmax - c) / dq
			case dq < -1e-14 && qmin < c:
				l = o.Beta * (qmin - c) / dq
			default:
				l = 1.0
			}
			if l < limiter {
				limiter = l
			}
		}
		if limiter < 0 {
			limiter = 0
		}
		if limiter > 1 {
			limiter = 1
		}
		gx *= limiter
		gy *= limiter

		for k := 0; k < 3; k++ {
			vx, vy := verts[i][k][0], verts[i][k][1]
			o.Vertex[i][k] = c + gx*(vx-cx) + gy*(vy-cy)
		}
		// edge midpoint k is the midpoint of vertices (k+1,k+2)
		for k := 0; k < 3; k++ {
			v1 := o.Vertex[i][(k+1)%3]
			v2 := o.Vertex[i][(k+2)%3]
			o.Edge[i][k] = 0.5 * (v1 + v2)
		}
	}
}

// GetMaximumValue returns the maximum centroid value, optionally
// restricted to indices (nil means all cells).
func (o *Field) GetMaximumValue(indices []int) float64 {
	return o.reduce(indices, math.Inf(-1), func(a, b float64) float64 {
		if b > a {
			return b
		}
		return a
	})
}

// GetMinimumValue returns the minimum centroid value, optionally
// restricted to indices (nil means all cells).
func (o *Field) GetMinimumValue(indices []int) float64 {
	return o.reduce(indices, math.Inf(1), func(a, b float64) float64 {
		if b < a {
			return b
		}
		return a
	})
}

func (o *Field) reduce(indices []int, init float64, combine func(a, b float64) float64) float64 {
	acc := init
	if indices == nil {
		for _, v := range o.Centroid {
			acc = combine(acc, v)
		}
		return acc
	}
	for _, i := range indices {
		acc = combine(acc, o.Centroid[i])
	}
	return acc
}

// GetMaximumLocation returns the (x,y) centroid location of the cell
// holding the current maximum value among indices.
func (o *Field) GetMaximumLocation(indices []int) (x, y float64) {
	return o.locationOf(indices, o.GetMaximumValue(indices))
}

// GetMinimumLocation returns the (x,y) centroid location of the cell
// holding the current minimum value among indices.
func (o *Field) GetMinimumLocation(indices []int) (x, y float64) {
	return o.locationOf(indices, o.GetMinimumValue(indices))
}

func (o *Field) locationOf(indices []int, value float64) (x, y float64) {
	coords := o.mesh.CentroidCoords()
	idxs := indices
	if idxs == nil {
		idxs = make([]int, o.N)
		for i := range idxs {
			idxs[i] = i
		}
	}
	for _, i := range idxs {
		if o.Centroid[i] == value {
			return coords[i][0], coords[i][1]
		}
	}
	return 0, 0
}

// arithmetic, for the expr evaluator //////////////////////////////////////////////////

// Binary applies op element-wise between two centroid-only fields and
// returns a new field of the same mesh. Only centroid values carry
// meaning for a derived field; vertex/edge/boundary arrays are left zero
// until the result is assigned into a registered quantity and extrapolated.
func Binary(a, b *Field, op byte) (*Field, error) {
	if a.N != b.N {
		return nil, chk.Err("cannot combine fields of different size (%d != %d)", a.N, b.N)
	}
	out := &Field{N: a.N, B: a.B, mesh: a.mesh}
	out.Centroid = make([]float64, a.N)
	out.Vertex = make([][3]float64, a.N)
	out.Edge = make([][3]float64, a.N)
	out.Boundary = make([]float64, a.B)
	out.ExplicitUpdate = make([]float64, a.N)
	out.SemiImplicitUpdate = make([]float64, a.N)
	for i := range out.Centroid {
		switch op {
		case '+':
			out.Centroid[i] = a.Centroid[i] + b.Centroid[i]
		case '-':
			out.Centroid[i] = a.Centroid[i] - b.Centroid[i]
		case '*':
			out.Centroid[i] = a.Centroid[i] * b.Centroid[i]
		case '/':
			out.Centroid[i] = a.Centroid[i] / b.Centroid[i]
		case '^':
			out.Centroid[i] = math.Pow(a.Centroid[i], b.Centroid[i])
		default:
			return nil, chk.Err("unknown quantity operator %q", string(op))
		}
	}
	return out, nil
}

// Constant builds a field whose centroid values are all c, sized like like.
func Constant(like *Field, c float64) *Field {
	out := like.Clone()
	for i := range out.Centroid {
		out.Centroid[i] = c
	}
	return out
}

// la-backed helpers ////////////////////////////////////////////////////////////////////////////

// ZeroExplicitUpdate zeroes the ExplicitUpdate accumulator; the driver
// calls this before the flux kernel accumulates a fresh step.
func (o *Field) ZeroExplicitUpdate() {
	la.VecFill(o.ExplicitUpdate, 0)
}
