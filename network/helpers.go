// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/20-S2-2-C-Flood-Modelling/Stormwater-Management-Model/inp"
)

// Helpers collects the small scalar functions that the momentum integrator
// calls but does not own: Froude number, normal/critical depth solves,
// evaporation/seepage loss rate, flap-gate logic, full-state classification,
// force-main friction, and culvert inflow capping, plus the Gravity,
// MaxVelocity and Fudge knobs those functions close over. Each function
// field defaults to a working implementation via DefaultHelpers; a caller
// with a richer model (e.g. one driven by precomputed geometry tables) may
// override individual fields after construction.
type Helpers struct {
	Gravity     float64
	MaxVelocity float64
	Fudge       float64

	GetFroude          func(l *Link, v, yMid float64) float64
	GetYnorm           func(l *Link, absQ float64) float64
	GetYcrit           func(l *Link, absQ float64) float64
	GetLossRate        func(l *Link, qOld, dt float64) float64
	SetFlapGate        func(l *Link, q float64) bool
	GetFullState       func(a1, a2, aFull float64) FullState
	ForceMainFricSlope func(l *Link, absV, rMid float64) float64
	CulvertInflow      func(l *Link, q, h1 float64) (float64, bool)
}

// DefaultHelpers returns a Helpers value using inp's standard
// Gravity/MaxVelocity/Fudge constants and concrete, self-contained function
// implementations suitable for a network with no external hydraulic model
// attached.
func DefaultHelpers() Helpers {
	return NewHelpers(inp.DefaultGravity, inp.DefaultMaxVelocity, inp.DefaultFudge)
}

// NewHelpers returns a Helpers value using the given gravity, velocity cap
// and depth/area floor instead of the package defaults, with the same
// concrete function implementations as DefaultHelpers bound to them.
func NewHelpers(gravity, maxVelocity, fudge float64) Helpers {
	hp := Helpers{Gravity: gravity, MaxVelocity: maxVelocity, Fudge: fudge}
	hp.GetFroude = func(l *Link, v, yMid float64) float64 { return defaultFroude(hp, l, v, yMid) }
	hp.GetYnorm = defaultYnorm
	hp.GetYcrit = func(l *Link, absQ float64) float64 { return defaultYcrit(hp, l, absQ) }
	hp.GetLossRate = defaultLossRate
	hp.SetFlapGate = defaultFlapGate
	hp.GetFullState = func(a1, a2, aFull float64) FullState { return defaultFullState(hp, a1, a2, aFull) }
	hp.ForceMainFricSlope = func(l *Link, absV, rMid float64) float64 { return defaultForceMainFricSlope(hp, l, absV, rMid) }
	hp.CulvertInflow = func(l *Link, q, h1 float64) (float64, bool) { return defaultCulvertInflow(hp, l, q, h1) }
	return hp
}

// defaultFroude computes Fr = v / sqrt(g * yHydraulic), using yMid as the
// hydraulic depth. Returns 0 for a degenerate (near-zero) depth.
func defaultFroude(hp Helpers, l *Link, v, yMid float64) float64 {
	if yMid <= hp.Fudge {
		return 0
	}
	return v / math.Sqrt(hp.Gravity*yMid)
}

// defaultYnorm solves Manning's equation beta*A(y)*R(y)^(2/3) = absQ for y
// by bisection over [0, yFull]. Returns yFull if absQ exceeds full-flow
// conveyance, 0 if absQ is non-positive.
func defaultYnorm(l *Link, absQ float64) float64 {
	if absQ <= 0 {
		return 0
	}
	yFull := l.Xsect.YFull()
	conveyance := func(y float64) float64 {
		return l.Static.Beta * l.Xsect.AofY(y) * math.Pow(l.Xsect.RofY(y), 2.0/3.0)
	}
	if conveyance(yFull) <= absQ {
		return yFull
	}
	lo, hi := 0.0, yFull
	for i := 0; i < 40; i++ {
		mid := 0.5 * (lo + hi)
		if conveyance(mid) < absQ {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// defaultYcrit solves for the critical depth where Q^2*W(y) = g*A(y)^3 by
// bisection over [0, yFull].
func defaultYcrit(hp Helpers, l *Link, absQ float64) float64 {
	if absQ <= 0 {
		return 0
	}
	yFull := l.Xsect.YFull()
	f := func(y float64) float64 {
		a := l.Xsect.AofY(y)
		w := l.Xsect.WofY(y)
		return absQ*absQ*w - hp.Gravity*a*a*a
	}
	lo, hi := 0.0, yFull
	if f(hi) >= 0 {
		return yFull
	}
	for i := 0; i < 40; i++ {
		mid := 0.5 * (lo + hi)
		if f(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

// defaultLossRate returns zero evaporation/seepage coupling; a network with
// no hydrology model attached has no loss to report.
func defaultLossRate(l *Link, qOld, dt float64) float64 {
	return 0
}

// defaultFlapGate blocks flow whenever the conduit carries a flap gate and
// the candidate flow direction is negative (i.e. from node2 back to node1).
func defaultFlapGate(l *Link, q float64) bool {
	return l.Static.HasFlapGate && q < 0
}

// defaultFullState classifies fullness from the two end areas against the
// full-conduit area.
func defaultFullState(hp Helpers, a1, a2, aFull float64) FullState {
	up := a1 >= aFull-hp.Fudge
	dn := a2 >= aFull-hp.Fudge
	switch {
	case up && dn:
		return BothFull
	case up:
		return UpstreamFull
	case dn:
		return DownstreamFull
	}
	return NeitherFull
}

// defaultForceMainFricSlope computes a Hazen-Williams friction slope for a
// full force main: Sf = (v / (1.318 * C * R^0.63))^1.852 / R, expressed as a
// rate (1/seconds) consistent with the Manning-based friction term it
// substitutes for.
func defaultForceMainFricSlope(hp Helpers, l *Link, absV, rMid float64) float64 {
	if rMid <= hp.Fudge {
		return 0
	}
	c := l.Static.HazenWilliamsC
	if c <= 0 {
		c = 120
	}
	k := absV / (1.318 * c * math.Pow(rMid, 0.63))
	return math.Pow(k, 1.852) / rMid
}

// defaultCulvertInflow applies an orifice-like inlet-control cap:
// q <= coeff * sqrt(2*g*h1). Returns the (possibly capped) flow and whether
// the cap was active.
func defaultCulvertInflow(hp Helpers, l *Link, q, h1 float64) (float64, bool) {
	if l.Static.CulvertCoeff <= 0 || h1 <= 0 {
		return q, false
	}
	cap := l.Static.CulvertCoeff * math.Sqrt(2*hp.Gravity*h1)
	if q > cap {
		return cap, true
	}
	return q, false
}
