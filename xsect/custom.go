// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsect

import "github.com/cpmech/gosl/fun"

// Custom implements a tabulated, irregular cross-section: depth versus
// area, top width and hydraulic radius, linearly interpolated between
// sampled points. Ys must be strictly increasing and start at 0.
type Custom struct {
	ClosedShape bool
	Ys          []float64
	As          []float64
	Ws          []float64
	Rs          []float64
}

// Init initialises this structure. Table data (Ys/As/Ws/Rs) must be set on
// the struct directly before calling Init; Init only reads the "closed"
// scalar flag, following the narrow fun.Prms convention used for the other
// shapes even though this model's main data does not fit a scalar list.
func (o *Custom) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		if p.N == "closed" {
			o.ClosedShape = p.V > 0
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Custom) GetPrms(example bool) fun.Prms {
	closed := 0.0
	if o.ClosedShape {
		closed = 1.0
	}
	return fun.Prms{&fun.Prm{N: "closed", V: closed}}
}

func (o Custom) IsOpen() bool   { return !o.ClosedShape }
func (o Custom) YFull() float64 {
	if len(o.Ys) == 0 {
		return 0
	}
	return o.Ys[len(o.Ys)-1]
}
func (o Custom) AFull() float64 {
	if len(o.As) == 0 {
		return 0
	}
	return o.As[len(o.As)-1]
}

// interp linearly interpolates ys -> values at y, clamping to the ends
func interp(y float64, ys, values []float64) float64 {
	n := len(ys)
	if n == 0 {
		return 0
	}
	if y <= ys[0] {
		return values[0]
	}
	if y >= ys[n-1] {
		return values[n-1]
	}
	for i := 1; i < n; i++ {
		if y <= ys[i] {
			y0, y1 := ys[i-1], ys[i]
			v0, v1 := values[i-1], values[i]
			if y1 <= y0 {
				return v0
			}
			frac := (y - y0) / (y1 - y0)
			return v0 + frac*(v1-v0)
		}
	}
	return values[n-1]
}

func (o Custom) AofY(y float64) float64 {
	y = clampY(y, o.YFull())
	return interp(y, o.Ys, o.As)
}

func (o Custom) WofY(y float64) float64 {
	y = widthArg(y, o.YFull(), o.ClosedShape)
	return interp(y, o.Ys, o.Ws)
}

func (o Custom) RofY(y float64) float64 {
	y = clampY(y, o.YFull())
	return interp(y, o.Ys, o.Rs)
}
