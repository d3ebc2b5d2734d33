// Copyright 2016 The Gofv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ghost implements the ghost-cell exchange contract: per-peer
// descriptors of which local cells to send (FullIds) and which to
// overwrite (GhostIds), plus the Exchanger transport interface the
// driver assumes has already run before it performs its own local
// scatter.
package ghost

import "github.com/cpmech/gosl/mpi"

// Descriptor is one peer's ghost-exchange bookkeeping.
type Descriptor struct {
	Peer    int         // processor rank of the peer
	FullIds []int       // local cell ids this processor must send to Peer
	GhostIds []int      // local cell ids to overwrite with values received from Peer
	Scratch [][]float64 // [len(GhostIds) or FullIds][nsys] exchange buffer
}

// NewDescriptor allocates a descriptor with a scratch buffer shaped
// [k, nsys], k = max(len(fullIds), len(ghostIds)).
func NewDescriptor(peer int, fullIds, ghostIds []int, nsys int) *Descriptor {
	k := len(fullIds)
	if len(ghostIds) > k {
		k = len(ghostIds)
	}
	scratch := make([][]float64, k)
	for i := range scratch {
		scratch[i] = make([]float64, nsys)
	}
	return &Descriptor{Peer: peer, FullIds: fullIds, GhostIds: ghostIds, Scratch: scratch}
}

// Exchanger performs the cross-process half of ghost exchange: given
// the per-peer descriptors, send each peer the values of its FullIds
// cells and place what the peers send back into the GhostIds cells.
// The Domain's own local scatter only copies within the descriptor
// keyed by its own rank and never reads Scratch.
//
// The driver calls Exchange once when Evolve starts and not from within
// its steps; callers run it between yields, the same way flux and
// forcing kernels are supplied from outside.
type Exchanger interface {
	Exchange(descriptors map[int]*Descriptor, conserved [][]float64) error
}

// LocalExchanger is the single-process implementation: there are no
// peers to talk to, so Exchange is a no-op.
type LocalExchanger struct{}

// Exchange does nothing.
func (LocalExchanger) Exchange(map[int]*Descriptor, [][]float64) error { return nil }

// MPIExchanger performs the exchange over gosl/mpi: it packs each
// peer's requested cells into that peer's Scratch buffer and hands the
// actual point-to-point transfer to Transport, which the caller
// supplies. The wire-level send/recv primitives are cluster-specific;
// only the topology decision and buffer packing belong here.
type MPIExchanger struct {
	Rank      int
	NumProcs  int
	Transport func(peer int, buf [][]float64) error
}

// NewMPIExchanger returns an Exchanger wired to the current MPI rank,
// or nil if MPI is not active.
func NewMPIExchanger(transport func(peer int, buf [][]float64) error) *MPIExchanger {
	if !mpi.IsOn() {
		return nil
	}
	return &MPIExchanger{Rank: mpi.Rank(), NumProcs: mpi.Size(), Transport: transport}
}

// Exchange packs each peer's requested cells and sends/receives them
// via Transport.
func (o *MPIExchanger) Exchange(descriptors map[int]*Descriptor, conserved [][]float64) error {
	for peer, d := range descriptors {
		if peer == o.Rank {
			continue
		}
		for i, cid := range d.FullIds {
			for q, field := range conserved {
				d.Scratch[i][q] = field[cid]
			}
		}
		if err := o.Transport(peer, d.Scratch); err != nil {
			return err
		}
	}
	return nil
}
