// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsect

import "github.com/cpmech/gosl/fun"

// Rectangular implements an open (or closed-top) rectangular channel
type Rectangular struct {
	FullDepth float64 // YFull
	Width     float64 // constant top/bottom width
	Closed    bool    // true for a rectangular closed conduit (box culvert)
	aFull     float64
}

// Init initialises this structure
func (o *Rectangular) Init(prms fun.Prms) (err error) {
	o.FullDepth = 1.0
	o.Width = 1.0
	for _, p := range prms {
		switch p.N {
		case "yFull":
			o.FullDepth = p.V
		case "width":
			o.Width = p.V
		case "closed":
			o.Closed = p.V > 0
		}
	}
	o.aFull = o.FullDepth * o.Width
	return
}

// GetPrms gets (an example) of parameters
func (o Rectangular) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{
			&fun.Prm{N: "yFull", V: 1.0},
			&fun.Prm{N: "width", V: 1.0},
		}
	}
	return fun.Prms{
		&fun.Prm{N: "yFull", V: o.FullDepth},
		&fun.Prm{N: "width", V: o.Width},
	}
}

func (o Rectangular) IsOpen() bool   { return !o.Closed }
func (o Rectangular) YFull() float64 { return o.FullDepth }
func (o Rectangular) AFull() float64 { return o.aFull }

func (o Rectangular) AofY(y float64) float64 {
	y = clampY(y, o.FullDepth)
	return o.Width * y
}

// WofY is constant for a rectangular profile. The near-full top-width
// substitution used by closed circular shapes has no effect here since width
// never depends on depth.
func (o Rectangular) WofY(y float64) float64 {
	return o.Width
}

func (o Rectangular) RofY(y float64) float64 {
	y = clampY(y, o.FullDepth)
	perim := o.Width + 2*y
	if perim <= 0 {
		return 0
	}
	return o.Width * y / perim
}
