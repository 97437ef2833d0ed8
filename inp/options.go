// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// NormalFlowLimit selects which trigger(s) enable the normal-flow cap on a
// conduit's candidate flow.
type NormalFlowLimit int

const (
	NormalFlowNone   NormalFlowLimit = iota
	NormalFlowSlope                  // trigger when y1 < y2
	NormalFlowFroude                 // trigger when the upstream Froude number >= 1
	NormalFlowBoth                   // either trigger
)

// DampingMode selects how the inertial-damping factor sigma is applied in
// the momentum integrator.
type DampingMode int

const (
	PartialDamping DampingMode = iota // sigma computed from Froude number
	NoDamping                         // sigma forced to 1
	FullDamping                       // sigma forced to 0
)

// Options holds the global solver options read from a run's configuration,
// analogous to the FEM solver's SolverData: a small flat struct of
// JSON-tagged fields plus a verbose-logging switch. Gravity, MaxVelocity
// and Fudge are overridable knobs that default to the package's standard
// values; leave them at their zero value in JSON input and call
// SetDefault to fill them in.
type Options struct {
	NormalFlowLtd NormalFlowLimit `json:"normalflowltd"` // normal-flow limitation trigger
	Damping       DampingMode     `json:"damping"`       // inertial-damping mode
	ShowR         bool            `json:"showr"`         // log per-conduit momentum terms during UpdateConduitFlow

	Gravity     float64 `json:"gravity"`     // gravitational acceleration, ft/s^2; 0 means "use the default"
	MaxVelocity float64 `json:"maxvelocity"` // velocity cap used in momentum terms, ft/s; 0 means "use the default"
	Fudge       float64 `json:"fudge"`       // small positive depth/area floor; 0 means "use the default"
}

// SetDefault fills any zero-valued Gravity/MaxVelocity/Fudge field with the
// package's standard constant, following the SolverData.SetDefault
// convention of filling in unset JSON-loaded fields after Unmarshal.
func (o *Options) SetDefault() {
	if o.Gravity == 0 {
		o.Gravity = DefaultGravity
	}
	if o.MaxVelocity == 0 {
		o.MaxVelocity = DefaultMaxVelocity
	}
	if o.Fudge == 0 {
		o.Fudge = DefaultFudge
	}
}

// DefaultGravity, DefaultMaxVelocity and DefaultFudge are the standard
// values SetDefault fills in when a run's configuration leaves the
// corresponding Options field unset.
const (
	DefaultGravity     = 32.2
	DefaultMaxVelocity = 50.0
	DefaultFudge       = 1e-6
)
