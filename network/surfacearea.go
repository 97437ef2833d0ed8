// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

// distribute invokes the classifier once, writes the resulting flow class
// and the two surface-area contributions (SurfArea1, SurfArea2) onto l, and
// returns the (possibly revised) heads and depths at the two conduit ends.
// In the SUBCRITICAL case the blending fraction FasNh scales only
// SurfArea2; SurfArea1 is left unscaled.
func (n *Network) distribute(l *Link, q, h1, h2, y1, y2 float64) (h1o, h2o, y1o, y2o float64) {
	z1, z2 := n.effectiveOffsets(l)
	cr := n.classify(l, q, h1, h2, y1, y2, z1, z2)
	l.FlowClass = cr.Class

	yFull := l.Xsect.YFull()
	h1o, h2o, y1o, y2o = h1, h2, y1, y2

	w := func(y float64) float64 { return l.Xsect.WofY(y) }

	switch cr.Class {
	case Subcritical:
		wMid := w((y1 + y2) / 2)
		l.SurfArea1 = (w(y1) + wMid) * l.Static.CourantLength / 4
		l.SurfArea2 = (wMid + w(y2)) * l.Static.CourantLength / 4 * cr.FasNh

	case UpCritical:
		yNew := cr.YCrit
		if cr.YNorm < cr.YCrit {
			yNew = cr.YNorm
		}
		if yNew < n.Helpers.Fudge {
			yNew = n.Helpers.Fudge
		}
		y1o = yNew
		h1o = l.Node1.InvertElev + z1 + y1o
		wMid := w((y1o + y2) / 2)
		l.SurfArea1 = 0
		l.SurfArea2 = (wMid + w(y2)) * l.Static.CourantLength / 2

	case DnCritical:
		yNew := cr.YCrit
		if cr.YNorm < cr.YCrit {
			yNew = cr.YNorm
		}
		if yNew < n.Helpers.Fudge {
			yNew = n.Helpers.Fudge
		}
		y2o = yNew
		h2o = l.Node2.InvertElev + z2 + y2o
		wMid := w((y1 + y2o) / 2)
		l.SurfArea2 = 0
		l.SurfArea1 = (w(y1) + wMid) * l.Static.CourantLength / 2

	case UpDry:
		y1o = n.Helpers.Fudge
		wMid := w((y1o + y2) / 2)
		l.SurfArea2 = (wMid + w(y2)) * l.Static.CourantLength / 4
		if z1 <= 0 {
			l.SurfArea1 = (w(y1o) + wMid) * l.Static.CourantLength / 4
		} else {
			l.SurfArea1 = 0
		}

	case DnDry:
		y2o = n.Helpers.Fudge
		wMid := w((y1 + y2o) / 2)
		l.SurfArea1 = (w(y1) + wMid) * l.Static.CourantLength / 4
		if z2 <= 0 {
			l.SurfArea2 = (wMid + w(y2o)) * l.Static.CourantLength / 4
		} else {
			l.SurfArea2 = 0
		}

	case Dry:
		l.SurfArea1 = n.Helpers.Fudge * l.Static.CourantLength / 2
		l.SurfArea2 = l.SurfArea1
	}

	if y1o > yFull {
		y1o = yFull
	}
	if y2o > yFull {
		y2o = yFull
	}
	return
}
