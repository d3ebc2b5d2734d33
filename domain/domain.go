// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gofv/bdry"
	"github.com/cpmech/gofv/checkpoint"
	"github.com/cpmech/gofv/frc"
	"github.com/cpmech/gofv/ghost"
	"github.com/cpmech/gofv/mesh"
	"github.com/cpmech/gofv/qty"
)

// BoundaryBinding is one entry of the ordered boundary_objects list:
// a tagged boundary edge bound to a concrete object.
type BoundaryBinding struct {
	Cell, Edge int
	Obj        bdry.Object
}

// ExtremaMonitor is the per-name block registered by
// SetQuantitiesToBeMonitored.
type ExtremaMonitor struct {
	Name       string
	Expression string // "" when Name directly addresses a registered Field

	Polygon       [][2]float64
	MonitorCells  []int // nil means "all cells"; set once at registration when Polygon given
	HasTimeWindow bool
	T0, T1        float64

	Min, Max           *float64
	MinX, MinY         float64
	MaxX, MaxY         float64
	MinTime, MaxTime   *float64
}

// Domain is the core time-evolution driver.
type Domain struct {
	Mesh *mesh.Mesh

	Conserved []string
	Evolved   []string
	Other     []string

	Fields map[string]*qty.Field

	BoundaryMap     map[string]bdry.Object
	BoundaryObjects []BoundaryBinding
	BoundarySet     bool // true once SetBoundary has been called at least once

	ForcingTerms []frc.Term

	GhostDescriptors map[int]*ghost.Descriptor
	Exchanger        ghost.Exchanger
	ProcessorRank    int

	TriFullFlag         []int
	AlreadyComputedFlux [][3]int
	MaxSpeed            []float64

	Time                    float64
	StartTime               float64
	FinalTime               *float64
	YieldTime               float64
	Timestep                float64
	FluxTimestep            float64
	RecordedMinTimestep     float64
	RecordedMaxTimestep     float64
	NumberOfSteps           int
	NumberOfFirstOrderSteps int
	SmallSteps              int

	Order int

	Config Config

	Extrema map[string]*ExtremaMonitor

	// ConservedValuesToEvolvedValues is the injectable subclass hook:
	// default identity when lengths already match, error otherwise.
	// Concrete solvers register their own.
	ConservedValuesToEvolvedValues func(q, evol []float64) ([]float64, error)

	// ComputeFluxes is the external flux kernel: it must
	// accumulate into each conserved Field's ExplicitUpdate and return
	// the stability-limited flux_timestep for this state.
	ComputeFluxes func(d *Domain) float64

	// ProtectionQuantities lists the quantity names the isolated-
	// degenerate-timestep heuristic zeroes; physics-subclass
	// provided, nil means the protection routine is a no-op.
	ProtectionQuantities []string

	Name    string
	DataDir string

	Checkpointer checkpoint.Checkpointer
}

// New constructs a Domain. evolved may be nil (defaults to a
// copy of conserved); other may be nil. ghostDescriptors may be nil for
// a single-process Domain. exchanger performs cross-process ghost
// exchange and may be ghost.LocalExchanger{} for serial runs.
func New(m *mesh.Mesh, conserved, evolved, other []string, ghostDescriptors map[int]*ghost.Descriptor, rank int, exchanger ghost.Exchanger, cfg Config) (o *Domain, err error) {
	if m == nil {
		return nil, configErr("domain: mesh is required")
	}

	if evolved == nil {
		evolved = append([]string(nil), conserved...)
	}

	// step 2: evolved[0:len(conserved)] == conserved
	if len(evolved) < len(conserved) {
		return nil, configErr("domain: evolved list shorter than conserved list")
	}
	for i, name := range conserved {
		if evolved[i] != name {
			return nil, configErr("domain: evolved[0:%d] must equal conserved, got evolved[%d]=%q want %q", len(conserved), i, evolved[i], name)
		}
	}

	o = &Domain{
		Mesh:             m,
		Conserved:        conserved,
		Evolved:          evolved,
		Other:            other,
		GhostDescriptors: ghostDescriptors,
		Exchanger:        exchanger,
		ProcessorRank:    rank,
		Config:           cfg,
		Order:            cfg.DefaultOrder,
		Extrema:          make(map[string]*ExtremaMonitor),
	}
	if o.Exchanger == nil {
		o.Exchanger = ghost.LocalExchanger{}
	}

	// step 3: a QuantityField for every name in evolved ∪ other
	o.Fields = make(map[string]*qty.Field)
	for _, name := range evolved {
		if _, ok := o.Fields[name]; !ok {
			o.Fields[name] = qty.NewField(m)
			o.Fields[name].SetBeta(cfg.BetaW)
		}
	}
	for _, name := range other {
		if _, ok := o.Fields[name]; !ok {
			o.Fields[name] = qty.NewField(m)
			o.Fields[name].SetBeta(cfg.BetaW)
		}
	}

	// step 4: ghost scratch buffers shaped [k, len(conserved)]
	for peer, d := range ghostDescriptors {
		if len(d.Scratch) > 0 && len(d.Scratch[0]) != len(conserved) {
			*d = *ghost.NewDescriptor(peer, d.FullIds, d.GhostIds, len(conserved))
		}
	}

	// step 5: tri_full_flag
	n := m.NTriangles()
	o.TriFullFlag = make([]int, n)
	for i := range o.TriFullFlag {
		o.TriFullFlag[i] = 1
	}
	for _, d := range ghostDescriptors {
		for _, i := range d.GhostIds {
			if i >= 0 && i < n {
				o.TriFullFlag[i] = 0
			}
		}
	}
	for i := 0; i < m.NumberOfFullTriangles && i < n; i++ {
		if o.TriFullFlag[i] == 0 {
			warn(cfg, "domain: tri_full_flag inconsistency at full triangle %d", i)
		}
	}

	// step 7
	o.AlreadyComputedFlux = make([][3]int, n)
	o.MaxSpeed = make([]float64, n)

	o.ConservedValuesToEvolvedValues = defaultConservedToEvolved

	if cfg.ShowMsg {
		io.Pf("domain: constructed with %d triangles, %d conserved, %d evolved\n", n, len(conserved), len(evolved))
	}
	return o, nil
}

func defaultConservedToEvolved(q, evol []float64) ([]float64, error) {
	if len(q) == len(evol) {
		return q, nil
	}
	return nil, contractErr("no default mapping from %d conserved to %d evolved values; register a solver-specific ConservedValuesToEvolvedValues hook", len(q), len(evol))
}

// GetQuantity returns the named Field.
func (o *Domain) GetQuantity(name string) (*qty.Field, error) {
	f, ok := o.Fields[name]
	if !ok {
		return nil, configErr("domain: unknown quantity %q", name)
	}
	return f, nil
}

// GetQuantityNames returns the registered field names (evolved first, then other-only names).
func (o *Domain) GetQuantityNames() []string {
	names := append([]string(nil), o.Evolved...)
	seen := make(map[string]bool)
	for _, n := range names {
		seen[n] = true
	}
	for _, n := range o.Other {
		if !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	return names
}

// GetConservedQuantities returns the conserved vector at cell, optionally
// at a vertex or edge local index; exactly one of vertex/edge may be given.
func (o *Domain) GetConservedQuantities(cell int, vertex, edge *int) ([]float64, error) {
	return o.getQuantities(o.Conserved, cell, vertex, edge)
}

// GetEvolvedQuantities returns the evolved vector at cell, optionally at
// a vertex or edge local index; exactly one of vertex/edge may be given.
func (o *Domain) GetEvolvedQuantities(cell int, vertex, edge *int) ([]float64, error) {
	return o.getQuantities(o.Evolved, cell, vertex, edge)
}

func (o *Domain) getQuantities(names []string, cell int, vertex, edge *int) ([]float64, error) {
	if vertex != nil && edge != nil {
		return nil, configErr("domain: both vertex and edge given; supply at most one")
	}
	out := make([]float64, len(names))
	for i, name := range names {
		f := o.Fields[name]
		switch {
		case vertex != nil:
			out[i] = f.Vertex[cell][*vertex]
		case edge != nil:
			out[i] = f.Edge[cell][*edge]
		default:
			out[i] = f.Centroid[cell]
		}
	}
	return out, nil
}

// simulation-identity accessors: output/checkpoint file naming needs these.

// SetName sets the simulation name used for output/checkpoint file naming.
func (o *Domain) SetName(name string) { o.Name = name }

// GetName returns the simulation name.
func (o *Domain) GetName() string { return o.Name }

// SetDataDir sets the directory external writers should use for this simulation's output.
func (o *Domain) SetDataDir(dir string) { o.DataDir = dir }

// GetDataDir returns the configured output directory.
func (o *Domain) GetDataDir() string { return o.DataDir }

// SetStartTime sets the time origin used to reset Time on the next evolve call.
func (o *Domain) SetStartTime(t float64) { o.StartTime = t }

// GetStartTime returns the configured start time.
func (o *Domain) GetStartTime() float64 { return o.StartTime }

// CentroidNorm applies normFunc over the named Field's centroid
// values, a convenience for convergence tests.
func (o *Domain) CentroidNorm(name string, normFunc func([]float64) float64) (float64, error) {
	f, err := o.GetQuantity(name)
	if err != nil {
		return 0, err
	}
	return normFunc(f.Centroid), nil
}

// CheckIntegrity runs the mesh's integrity check plus the tri_full_flag
// invariant: flag has 1s and 0s only, sum(1-flag) == ghost count.
func (o *Domain) CheckIntegrity() error {
	if err := o.Mesh.CheckIntegrity(); err != nil {
		return err
	}
	ghosts := 0
	for i, g := range o.TriFullFlag {
		if g != 0 && g != 1 {
			return chk.Err("domain: tri_full_flag[%d]=%d is neither 0 nor 1", i, g)
		}
		if g == 0 {
			ghosts++
		}
	}
	var wantGhosts int
	for _, d := range o.GhostDescriptors {
		wantGhosts += len(d.GhostIds)
	}
	if ghosts != wantGhosts {
		return chk.Err("domain: tri_full_flag ghost count %d does not match descriptor ghost_ids count %d", ghosts, wantGhosts)
	}
	return nil
}
