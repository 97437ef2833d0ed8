// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import "math"

// classResult is the output of classify: the discrete flow class plus the
// normal/critical depths and blending fraction the surface-area distributor
// needs for SUBCRITICAL and *_CRITICAL classes.
type classResult struct {
	Class  FlowClass
	YNorm  float64
	YCrit  float64
	FasNh  float64
}

// classify is the pure flow classifier. It never mutates l; the caller
// writes the result back onto the link. z1, z2 are the (possibly
// outfall-adjusted) invert offsets computed by the caller.
func (n *Network) classify(l *Link, q, h1, h2, y1, y2, z1 float64, z2 float64) classResult {
	r := classResult{FasNh: 1.0}

	dry1 := y1 <= n.Helpers.Fudge
	dry2 := y2 <= n.Helpers.Fudge

	if dry1 && dry2 {
		r.Class = Dry
		return r
	}

	if !dry1 && !dry2 {
		absQ := math.Abs(q)
		yN := n.Helpers.GetYnorm(l, absQ)
		yC := n.Helpers.GetYcrit(l, absQ)
		ycMin, ycMax := yN, yC
		if ycMin > ycMax {
			ycMin, ycMax = ycMax, ycMin
		}

		if q < 0 && z1 > 0 && y1 < ycMin {
			r.Class = UpCritical
			r.YNorm, r.YCrit = yN, yC
			return r
		}
		if q >= 0 && z2 > 0 && y2 < ycMin {
			r.Class = DnCritical
			r.YNorm, r.YCrit = yN, yC
			return r
		}
		if q >= 0 && z2 > 0 && y2 >= ycMin && y2 < ycMax {
			r.Class = Subcritical
			r.YNorm, r.YCrit = yN, yC
			if ycMax-ycMin < n.Helpers.Fudge {
				r.FasNh = 0
			} else {
				r.FasNh = (ycMax - y2) / (ycMax - ycMin)
			}
			return r
		}
		r.Class = Subcritical
		return r
	}

	if dry1 && !dry2 {
		if h2 < l.Node1.InvertElev+z1 {
			r.Class = UpDry
			return r
		}
		if z1 > 0 {
			r.Class = UpCritical
			r.YNorm = n.Helpers.GetYnorm(l, math.Abs(q))
			r.YCrit = n.Helpers.GetYcrit(l, math.Abs(q))
			return r
		}
		r.Class = Subcritical
		return r
	}

	// dry2 && !dry1
	if h1 < l.Node2.InvertElev+z2 {
		r.Class = DnDry
		return r
	}
	if z2 > 0 {
		r.Class = DnCritical
		r.YNorm = n.Helpers.GetYnorm(l, math.Abs(q))
		r.YCrit = n.Helpers.GetYcrit(l, math.Abs(q))
		return r
	}
	r.Class = Subcritical
	return r
}

// effectiveOffsets returns the invert offsets z1, z2 used by the classifier,
// reducing an outfall-adjacent offset by the outfall's own water depth
// (floored at 0) so a rising outfall pool can lift the effective invert.
// An offset reduced to exactly 0 makes classify's z > 0 branches unreachable
// for that end, so such a conduit is classified SUBCRITICAL there even when
// its depth is below critical.
func (n *Network) effectiveOffsets(l *Link) (z1, z2 float64) {
	z1, z2 = l.Z1, l.Z2
	if l.Node1.IsOutfall {
		z1 -= l.Node1.NewDepth
		if z1 < 0 {
			z1 = 0
		}
	}
	if l.Node2.IsOutfall {
		z2 -= l.Node2.NewDepth
		if z2 < 0 {
			z2 = 0
		}
	}
	return
}
