// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/20-S2-2-C-Flood-Modelling/Stormwater-Management-Model/inp"
)

// applyNormalFlow checks whether the conduit's candidate flow q should be
// capped to the normal-flow value qNorm = beta*a1*r1^(2/3), triggered by the
// configured NormalFlowLtd mode. An outfall-adjacent conduit always enables
// the slope trigger and disables the Froude trigger, regardless of mode.
func (n *Network) applyNormalFlow(l *Link, q, y1, y2, a1, r1, yMid float64) float64 {
	outfallAdjacent := l.Node1.IsOutfall || l.Node2.IsOutfall

	slopeTrigger := false
	froudeTrigger := false

	mode := n.Options.NormalFlowLtd
	if outfallAdjacent {
		slopeTrigger = y1 < y2
	} else {
		switch mode {
		case inp.NormalFlowSlope, inp.NormalFlowBoth:
			slopeTrigger = y1 < y2
		}
		switch mode {
		case inp.NormalFlowFroude, inp.NormalFlowBoth:
			if y1 > n.Helpers.Fudge && y2 > n.Helpers.Fudge {
				v1 := q / math.Max(a1, n.Helpers.Fudge)
				fr1 := n.Helpers.GetFroude(l, v1, yMid)
				froudeTrigger = fr1 >= 1
			}
		}
	}

	if !slopeTrigger && !froudeTrigger {
		return q
	}

	qNorm := l.Static.Beta * a1 * math.Pow(r1, 2.0/3.0)
	if qNorm < q {
		l.NormalFlow = true
		return qNorm
	}
	return q
}
