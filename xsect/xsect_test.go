// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsect

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_circular01(tst *testing.T) {

	chk.PrintTitle("circular01")

	mdl, err := New("circular")
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	prm := mdl.GetPrms(true)
	diam := prm.Find("diam")
	diam.V = 2.0
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	// full pipe: A = π r², R = r/2
	chk.Scalar(tst, "A(yFull)", 1e-12, mdl.AofY(2.0), math.Pi)
	chk.Scalar(tst, "R(yFull)", 1e-12, mdl.RofY(2.0), 0.5)
	chk.Scalar(tst, "A(0)", 1e-15, mdl.AofY(0), 0)
	chk.Scalar(tst, "R(0)", 1e-15, mdl.RofY(0), 0)

	// half full: A = π r² / 2
	chk.Scalar(tst, "A(half)", 1e-9, mdl.AofY(1.0), math.Pi/2)

	// near-full width substitution must not collapse to zero
	if mdl.WofY(1.999) <= 0 {
		tst.Errorf("top width near crown should not collapse to zero")
	}
}

func Test_rectangular01(tst *testing.T) {

	chk.PrintTitle("rectangular01")

	mdl, err := New("rectangular")
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	prm := mdl.GetPrms(true)
	prm.Find("yFull").V = 2.0
	prm.Find("width").V = 3.0
	err = mdl.Init(prm)
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}
	chk.Scalar(tst, "A(1)", 1e-15, mdl.AofY(1.0), 3.0)
	chk.Scalar(tst, "W(1)", 1e-15, mdl.WofY(1.0), 3.0)
	chk.Scalar(tst, "R(1)", 1e-15, mdl.RofY(1.0), 3.0/5.0)
}

func Test_custom01(tst *testing.T) {

	chk.PrintTitle("custom01")

	mdl := new(Custom)
	mdl.Ys = []float64{0, 1, 2}
	mdl.As = []float64{0, 1, 3}
	mdl.Ws = []float64{0.5, 1, 1.5}
	mdl.Rs = []float64{0, 0.4, 0.6}
	err := mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}
	chk.Scalar(tst, "A(0.5)", 1e-15, mdl.AofY(0.5), 0.5)
	chk.Scalar(tst, "A(1.5)", 1e-15, mdl.AofY(1.5), 2.0)
	chk.Scalar(tst, "A(above yFull)", 1e-15, mdl.AofY(5.0), 3.0)
	chk.Scalar(tst, "A(below 0)", 1e-15, mdl.AofY(-1.0), 0.0)
}
