// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/20-S2-2-C-Flood-Modelling/Stormwater-Management-Model/inp"
	"github.com/cpmech/gosl/io"
)

// Network is the per-run context borrowed by a sub-iteration's conduit
// update: node and link records plus the configuration and helper
// collaborators shared read-only across conduits. It replaces a single
// global project handle with an explicit value every call takes as its
// receiver.
type Network struct {
	Nodes   []*Node
	Links   []*Link
	Helpers Helpers
	Options *inp.Options
}

// NewNetwork builds an empty network with the given options, using
// opts.Gravity/MaxVelocity/Fudge (defaulted in place by SetDefault if left
// at zero) to build the Helpers. Callers populate Nodes and Links directly.
func NewNetwork(opts *inp.Options) *Network {
	if opts == nil {
		opts = &inp.Options{}
	}
	opts.SetDefault()
	return &Network{Helpers: NewHelpers(opts.Gravity, opts.MaxVelocity, opts.Fudge), Options: opts}
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// UpdateConduitFlow performs the full per-conduit momentum-equation step
// for the link at linkIndex: it assembles the six momentum terms, solves
// for a candidate new flow, applies the flow-limitation gates, blends with
// the prior iterate under relaxation weight omega, and writes the new link
// and conduit state in place. steps is the sub-iteration index within the
// current real time step (0 on the first call); dt is the time step length
// in seconds.
func (n *Network) UpdateConduitFlow(linkIndex int, steps int, omega float64, dt float64) {
	l := n.Links[linkIndex]
	cs := &l.State

	// 1. per-barrel old flow and prior-iteration estimate
	qOld := cs.Q2 / float64(l.Static.Barrels)
	qLast := cs.Q1

	// 2. heads and raw depths, floored at invert
	h1 := math.Max(l.Node1.Head(), l.Node1.InvertElev)
	h2 := math.Max(l.Node2.Head(), l.Node2.InvertElev)
	z1, z2 := l.Z1, l.Z2
	y1 := clamp(h1-l.Node1.InvertElev-z1, n.Helpers.Fudge, l.Xsect.YFull())
	y2 := clamp(h2-l.Node2.InvertElev-z2, n.Helpers.Fudge, l.Xsect.YFull())

	// 3. prior-timestep area and Courant length
	aOld := math.Max(cs.A2, n.Helpers.Fudge)
	courantLength := l.Static.CourantLength

	// 4. distribute surface area, possibly revising h1/h2/y1/y2
	h1, h2, y1, y2 = n.distribute(l, qLast, h1, h2, y1, y2)

	// 5. endpoint and mid-conduit geometry
	a1 := l.Xsect.AofY(y1)
	a2 := l.Xsect.AofY(y2)
	r1 := l.Xsect.RofY(y1)
	yMid := (y1 + y2) / 2
	aMid := l.Xsect.AofY(yMid)
	rMid := l.Xsect.RofY(yMid)

	// 6. early-out: dry classes, closed by control, or degenerate mid-area
	if l.FlowClass == Dry || l.FlowClass == UpDry || l.FlowClass == DnDry || l.Setting == 0 || aMid <= n.Helpers.Fudge {
		cs.Q1, cs.Q2 = 0, 0
		cs.A1 = (a1 + a2) / 2
		l.NewDepth = math.Min(yMid, l.Xsect.YFull())
		l.NewVolume = cs.A1 * l.Static.Length * float64(l.Static.Barrels)
		l.NewFlow = 0
		l.Dqdh = n.Helpers.Gravity * dt * aMid / courantLength * float64(l.Static.Barrels)
		l.Froude = 0
		cs.FullState = n.Helpers.GetFullState(a1, a2, l.Xsect.AFull())
		return
	}

	// 7. velocity, Froude, subcritical -> supercritical promotion
	v := clamp(qLast/aMid, -n.Helpers.MaxVelocity, n.Helpers.MaxVelocity)
	l.Froude = n.Helpers.GetFroude(l, v, yMid)
	if l.FlowClass == Subcritical && l.Froude > 1 {
		l.FlowClass = Supcritical
	}

	// 8. inertial damping and upstream weighting
	fr := l.Froude
	var sigma float64
	switch {
	case fr <= 0.5:
		sigma = 1
	case fr >= 1:
		sigma = 0
	default:
		sigma = 2 * (1 - fr)
	}
	full := cs.FullState != NeitherFull
	rho := 1.0
	if !full && qLast > 0 && h1 >= h2 {
		rho = sigma
	}
	aWtd := a1 + (aMid-a1)*rho
	rWtd := r1 + (rMid-r1)*rho

	// 9. global damping-mode override
	switch n.Options.Damping {
	case inp.NoDamping:
		sigma = 1
	case inp.FullDamping:
		sigma = 0
	}
	if full && !l.Xsect.IsOpen() {
		sigma = 0
	}

	// 10. momentum terms
	absV := math.Abs(v)
	var dq1 float64
	if l.Static.ForceMain && full {
		dq1 = dt * n.Helpers.ForceMainFricSlope(l, absV, rMid)
	} else if rWtd > n.Helpers.Fudge {
		dq1 = dt * l.Static.RoughFactor / math.Pow(rWtd, 4.0/3.0) * absV
	}

	dq2 := dt * n.Helpers.Gravity * aWtd * (h2 - h1) / courantLength

	dq3 := 2 * v * (aMid - aOld) * sigma

	dq4 := dt * v * v * (a2 - a1) / courantLength * sigma

	var dq5 float64
	if l.Static.HasLosses {
		var sum float64
		if a1 > n.Helpers.Fudge {
			sum += l.Static.CLossInlet * math.Abs(qLast) / a1
		}
		if a2 > n.Helpers.Fudge {
			sum += l.Static.CLossOutlet * math.Abs(qLast) / a2
		}
		if aMid > n.Helpers.Fudge {
			sum += l.Static.CLossAvg * math.Abs(qLast) / aMid
		}
		dq5 = sum / 2 / courantLength * dt
	}

	lossRate := n.Helpers.GetLossRate(l, qOld, dt)
	dq6 := lossRate * 2.5 * dt * v / l.Static.Length

	// 11. solve
	denom := 1 + dq1 + dq5
	q := (qOld - dq2 + dq3 + dq4 - dq6) / denom

	// 12. head derivative
	l.Dqdh = (1 / denom) * n.Helpers.Gravity * dt * aWtd / courantLength * float64(l.Static.Barrels)

	if n.Options.ShowR {
		io.Pfgrey("link %-12s q=%.6f dq1=%.6f dq2=%.6f dq3=%.6f dq4=%.6f dq5=%.6f dq6=%.6f\n",
			l.Name, q, dq1, dq2, dq3, dq4, dq5, dq6)
	}

	// 13. flow-limitation gates, only applied to a positive candidate flow
	if q > 0 {
		if l.Static.CulvertCode != 0 && cs.FullState == NeitherFull {
			capped, inletCtl := n.Helpers.CulvertInflow(l, q, h1)
			q = capped
			l.InletControl = inletCtl
		} else if y1 < l.Xsect.YFull() && (l.FlowClass == Subcritical || l.FlowClass == Supcritical) {
			q = n.applyNormalFlow(l, q, y1, y2, a1, r1, yMid)
		}
	}

	// 14. under-relaxation
	if steps > 0 {
		q = (1-omega)*qLast + omega*q
		if q*qLast < 0 {
			q = 0.001 * sign(q)
		}
	}

	// 15. user flow cap
	if l.QLimit > 0 && math.Abs(q) > l.QLimit {
		q = sign(q) * l.QLimit
	}

	// 16. flap gate
	if n.Helpers.SetFlapGate(l, q) {
		q = 0
	}

	// 17. dry-node choke
	if q > n.Helpers.Fudge && l.Node1.NewDepth <= n.Helpers.Fudge {
		q = n.Helpers.Fudge
	} else if q < -n.Helpers.Fudge && l.Node2.NewDepth <= n.Helpers.Fudge {
		q = -n.Helpers.Fudge
	}

	// 18. write state
	cs.A1 = aMid
	cs.Q1, cs.Q2 = q, q
	l.NewDepth = math.Min(yMid, l.Xsect.YFull())
	aMidFinal := math.Min((a1+a2)/2, l.Xsect.AFull())
	cs.FullState = n.Helpers.GetFullState(a1, a2, l.Xsect.AFull())
	l.NewVolume = aMidFinal * l.Static.Length * float64(l.Static.Barrels)
	l.NewFlow = q * float64(l.Static.Barrels)

	// a NaN result is a safety net, not an error signal: coerce to zero
	// rather than propagate it into the node continuity equation.
	if math.IsNaN(l.NewFlow) {
		cs.Q1, cs.Q2 = 0, 0
		l.NewFlow = 0
	}
}
