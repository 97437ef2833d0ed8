// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import "github.com/20-S2-2-C-Flood-Modelling/Stormwater-Management-Model/xsect"

// FullState classifies how much of a conduit's two ends are flowing full,
// used by the surcharge-damping rule in the momentum integrator and written
// back to Conduit.FullState each sub-iteration.
type FullState int

const (
	NeitherFull FullState = iota
	UpstreamFull
	DownstreamFull
	BothFull
)

// FlowClass is the discrete state produced by the flow classifier.
type FlowClass int

const (
	Dry FlowClass = iota
	UpCritical
	DnCritical
	Subcritical
	Supcritical
	UpDry
	DnDry
)

func (c FlowClass) String() string {
	switch c {
	case Dry:
		return "DRY"
	case UpCritical:
		return "UP_CRITICAL"
	case DnCritical:
		return "DN_CRITICAL"
	case Subcritical:
		return "SUBCRITICAL"
	case Supcritical:
		return "SUPCRITICAL"
	case UpDry:
		return "UP_DRY"
	case DnDry:
		return "DN_DRY"
	}
	return "?"
}

// ConduitStatic holds the per-conduit parameters that are immutable for the
// duration of one sub-iteration.
type ConduitStatic struct {
	Barrels        int     // number of parallel identical barrels
	Length         float64 // physical length
	CourantLength  float64 // Courant-modified length, >= Length
	RoughFactor    float64 // derived from Manning's n
	Beta           float64 // normal-flow conveyance coefficient
	CLossInlet     float64 // local-loss coefficient at inlet
	CLossOutlet    float64 // local-loss coefficient at outlet
	CLossAvg       float64 // average local-loss coefficient
	HasLosses      bool    // whether local losses are active at all
	CulvertCode    int     // 0 == not a culvert
	CulvertCoeff   float64 // inlet-control capacity coefficient, used when CulvertCode != 0
	ForceMain      bool    // pressurised closed conduit
	HazenWilliamsC float64 // Hazen-Williams roughness coefficient, used when ForceMain && full
	HasFlapGate    bool    // one-way valve preventing reverse flow
}

// ConduitState holds the per-conduit values mutated every sub-iteration.
// A1 is the current estimate of mid-conduit area; A2 is the mid-conduit
// area at the end of the previous real time step and is only advanced by
// the outer time-stepping loop (outside this package), not by
// UpdateConduitFlow.
type ConduitState struct {
	Q1, Q2    float64 // current-iteration flow estimates at the two ends (single barrel)
	A1, A2    float64
	FullState FullState
}

// Link holds the per-sub-iteration runtime state of one conduit, keyed by
// index into Network.Links. Node1 is the upstream end, Node2 the downstream
// end, consistent with the positive-flow convention used throughout the
// momentum integrator.
type Link struct {
	Name string

	Node1, Node2 *Node
	Z1, Z2       float64 // upstream/downstream invert offsets from the connecting nodes' inverts

	Xsect  xsect.Shape
	Static ConduitStatic
	State  ConduitState

	Setting float64 // 0 == closed by external control, otherwise an open fraction
	QLimit  float64 // user flow cap (0 == uncapped)

	// written by UpdateConduitFlow
	FlowClass              FlowClass
	Froude                 float64
	NewDepth               float64
	NewVolume              float64
	NewFlow                float64 // multi-barrel
	Dqdh                   float64
	SurfArea1, SurfArea2   float64
	InletControl           bool
	NormalFlow             bool
}
