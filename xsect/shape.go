// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package xsect implements conduit cross-section geometry: area, top width
// and hydraulic radius as functions of water depth, for a handful of named
// shapes (circular, rectangular, force main, custom/irregular).
package xsect

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// nearFullFactor is the fraction of yFull beyond which a closed shape's top
// width is evaluated at a frozen depth instead of the true depth, to avoid
// the width collapsing to zero as the water surface approaches the crown.
const nearFullFactor = 0.96

// Shape defines a conduit cross-section: area, top width and hydraulic
// radius as functions of depth y, all defined on [0, YFull()].
type Shape interface {
	Init(prms fun.Prms) error // initialises this structure from named parameters
	GetPrms(example bool) fun.Prms
	IsOpen() bool      // true for open-channel shapes, false for closed conduits
	YFull() float64    // full depth
	AFull() float64    // full area
	AofY(y float64) float64 // area A(y), y clamped to [0, YFull]
	WofY(y float64) float64 // top width W(y); y>0.96*YFull substituted for closed shapes
	RofY(y float64) float64 // hydraulic radius R(y), y clamped to [0, YFull]
}

// New allocates a named shape model
func New(name string) (shape Shape, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'xsect' database", name)
	}
	return allocator(), nil
}

// allocators holds all available shape models
var allocators = map[string]func() Shape{
	"circular":    func() Shape { return new(Circular) },
	"rectangular": func() Shape { return new(Rectangular) },
	"forcemain":   func() Shape { return new(ForceMain) },
	"custom":      func() Shape { return new(Custom) },
}

// clampY clamps a depth to the valid [0, yFull] range used by A(y) and R(y)
func clampY(y, yFull float64) float64 {
	if y < 0 {
		return 0
	}
	if y > yFull {
		return yFull
	}
	return y
}

// widthArg returns the depth at which W(y) should actually be evaluated,
// applying the near-full top-width substitution for closed shapes.
func widthArg(y, yFull float64, closed bool) float64 {
	y = clampY(y, yFull)
	if closed && yFull > 0 && y/yFull > nearFullFactor {
		return nearFullFactor * yFull
	}
	return y
}
