// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsect

import (
	"math"

	"github.com/cpmech/gosl/fun"
)

// Circular implements a closed circular pipe cross-section
type Circular struct {
	Diam  float64 // pipe diameter == YFull
	aFull float64
}

// Init initialises this structure
func (o *Circular) Init(prms fun.Prms) (err error) {
	o.Diam = 1.0
	for _, p := range prms {
		switch p.N {
		case "diam", "yFull":
			o.Diam = p.V
		}
	}
	o.aFull = math.Pi * o.Diam * o.Diam / 4.0
	return
}

// GetPrms gets (an example) of parameters
func (o Circular) GetPrms(example bool) fun.Prms {
	if example {
		return fun.Prms{&fun.Prm{N: "diam", V: 1.0}}
	}
	return fun.Prms{&fun.Prm{N: "diam", V: o.Diam}}
}

func (o Circular) IsOpen() bool     { return false }
func (o Circular) YFull() float64   { return o.Diam }
func (o Circular) AFull() float64   { return o.aFull }

// centralAngle returns the wetted central angle θ for depth y (radians)
func centralAngle(y, diam float64) float64 {
	if diam <= 0 {
		return 0
	}
	arg := 1 - 2*y/diam
	if arg < -1 {
		arg = -1
	}
	if arg > 1 {
		arg = 1
	}
	return 2 * math.Acos(arg)
}

func (o Circular) AofY(y float64) float64 {
	y = clampY(y, o.Diam)
	theta := centralAngle(y, o.Diam)
	return o.Diam * o.Diam / 8 * (theta - math.Sin(theta))
}

func (o Circular) WofY(y float64) float64 {
	y = widthArg(y, o.Diam, !o.IsOpen())
	theta := centralAngle(y, o.Diam)
	return o.Diam * math.Sin(theta/2)
}

func (o Circular) RofY(y float64) float64 {
	y = clampY(y, o.Diam)
	theta := centralAngle(y, o.Diam)
	if theta <= 0 {
		return 0
	}
	a := o.Diam * o.Diam / 8 * (theta - math.Sin(theta))
	perim := o.Diam * theta / 2
	if perim <= 0 {
		return 0
	}
	return a / perim
}
