// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// varStore is a tiny name->index->value environment used across these tests.
type varStore struct {
	names []string
	vals  []float64
}

func (o *varStore) resolve(name string) int {
	for i, n := range o.names {
		if n == name {
			return i
		}
	}
	return -1
}

func (o *varStore) read(idx int) float64 {
	if idx < 0 || idx >= len(o.vals) {
		return 0
	}
	return o.vals[idx]
}

func Test_calc01(tst *testing.T) {

	// 2*(A+3)^2 - STEP(A) with A=5 => 2*64 - 1 = 127
	chk.PrintTitle("calc01")

	vs := &varStore{names: []string{"A"}, vals: []float64{5}}
	prog, err := Build("2*(A+3)^2 - STEP(A)", vs.resolve)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	res := Evaluate(prog, vs.read)
	chk.Scalar(tst, "2*(A+3)^2-STEP(A)", 1e-13, res, 127)
}

func Test_calc02(tst *testing.T) {

	chk.PrintTitle("calc02 -- no-variable constant formula")

	prog, err := Build("3.5*2 + 10/4 - 1", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	res := Evaluate(prog, nil)
	chk.Scalar(tst, "3.5*2+10/4-1", 1e-13, res, 8.5)
}

func Test_calc03(tst *testing.T) {

	chk.PrintTitle("calc03 -- commutativity")

	progAdd, err := Build("1.25 + 7.75", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	progAdd2, err := Build("7.75 + 1.25", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	chk.Scalar(tst, "a+b==b+a", 1e-15, Evaluate(progAdd, nil), Evaluate(progAdd2, nil))

	progMul, err := Build("3.0 * 4.5", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	progMul2, err := Build("4.5 * 3.0", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	chk.Scalar(tst, "a*b==b*a", 1e-15, Evaluate(progMul, nil), Evaluate(progMul2, nil))
}

func Test_calc04(tst *testing.T) {

	chk.PrintTitle("calc04 -- negative literal fusion vs unary negate")

	prog, err := Build("-5+2", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	chk.Scalar(tst, "-5+2", 1e-15, Evaluate(prog, nil), -3)

	prog2, err := Build("-(5+2)", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	chk.Scalar(tst, "-(5+2)", 1e-15, Evaluate(prog2, nil), -7)

	prog3, err := Build("3*-2", nil)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	chk.Scalar(tst, "3*-2", 1e-15, Evaluate(prog3, nil), -6)
}

func Test_calc05(tst *testing.T) {

	chk.PrintTitle("calc05 -- protective domain clipping")

	cases := []struct {
		formula string
		want    float64
	}{
		{"LOG(-1)", 0},
		{"LOG10(0)", 0},
		{"SQRT(-4)", 0},
		{"(-2)^3", 0}, // non-positive base
	}
	for _, c := range cases {
		prog, err := Build(c.formula, nil)
		if err != nil {
			tst.Errorf("Build(%s) failed: %v", c.formula, err)
			continue
		}
		chk.Scalar(tst, c.formula, 1e-15, Evaluate(prog, nil), c.want)
	}
}

func Test_calc06(tst *testing.T) {

	chk.PrintTitle("calc06 -- build errors")

	bad := []string{
		"(1+2",
		"1+2)",
		"SIN 1)",
		"1+",
		"2^A",
	}
	vs := &varStore{names: []string{"A"}, vals: []float64{1}}
	for _, f := range bad {
		_, err := Build(f, vs.resolve)
		if err == nil {
			tst.Errorf("expected build error for %q", f)
		}
	}
}

func Test_calc07(tst *testing.T) {

	chk.PrintTitle("calc07 -- format/round-trip")

	vs := &varStore{names: []string{"V0"}, vals: []float64{4}}
	prog, err := Build("2^3 + V0", vs.resolve)
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	want := Evaluate(prog, vs.read)

	text := Format(prog)
	prog2, err := Build(text, vs.resolve)
	if err != nil {
		tst.Errorf("Build(format) failed: %v", err)
		return
	}
	got := Evaluate(prog2, vs.read)
	chk.Scalar(tst, "round-trip", 1e-13, got, want)
}

func Test_calc08(tst *testing.T) {

	chk.PrintTitle("calc08 -- unknown variable reads as caller-defined default")

	prog, err := Build("A+1", func(name string) int { return -1 })
	if err != nil {
		tst.Errorf("Build failed: %v", err)
		return
	}
	res := Evaluate(prog, func(idx int) float64 { return 0 })
	chk.Scalar(tst, "A+1 with unknown A", 1e-15, res, 1)
}
