// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/20-S2-2-C-Flood-Modelling/Stormwater-Management-Model/calc"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FormulaData holds one named expression definition as read from a
// formulas file: a one-line infix arithmetic formula and the ordered list
// of variable names it may reference.
type FormulaData struct {
	Name    string   `json:"name"`    // name of formula, referenced by control rules etc.
	Expr    string   `json:"expr"`    // infix arithmetic formula
	VarsIn  []string `json:"varsin"`  // ordered variable names available to Expr

	// derived
	Prog *calc.Program
}

// FormulasData holds all formulas in a run.
type FormulasData []*FormulaData

// FormulaDb implements a database of compiled expression programs,
// analogous to the FEM solver's function database: a flat JSON list of
// named entries, each compiled once through calc.Build and evaluated
// cheaply afterwards.
type FormulaDb struct {
	Formulas FormulasData `json:"formulas"`

	byName map[string]*FormulaData
}

// ReadFormulaDb reads all formula data from a JSON file and builds each
// formula's postfix program.
func ReadFormulaDb(dir, fn string) (fdb *FormulaDb, err error) {
	fdb = new(FormulaDb)

	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(b, fdb)
	if err != nil {
		return nil, err
	}

	fdb.byName = make(map[string]*FormulaData)
	for _, f := range fdb.Formulas {
		resolve := func(name string) int {
			for i, v := range f.VarsIn {
				if v == name {
					return i
				}
			}
			return -1
		}
		f.Prog, err = calc.Build(f.Expr, resolve)
		if err != nil {
			return nil, chk.Err("cannot build formula %q: %v", f.Name, err)
		}
		fdb.byName[f.Name] = f
	}
	return fdb, nil
}

// Get returns the named formula's compiled program, or nil if not found.
func (o *FormulaDb) Get(name string) *calc.Program {
	if f, ok := o.byName[name]; ok {
		return f.Prog
	}
	return nil
}

// Eval evaluates the named formula against the given variable values,
// positionally matched to that formula's VarsIn. Returns 0 if the formula
// is not found.
func (o *FormulaDb) Eval(name string, values []float64) float64 {
	f, ok := o.byName[name]
	if !ok {
		return 0
	}
	read := func(idx int) float64 {
		if idx < 0 || idx >= len(values) {
			return 0
		}
		return values[idx]
	}
	return calc.Evaluate(f.Prog, read)
}

// String prints one formula definition.
func (o *FormulaData) String() string {
	return io.Sf("    {\n      \"name\":%q, \"expr\":%q, \"varsin\":%v\n    }", o.Name, o.Expr, o.VarsIn)
}

// String prints all formula definitions.
func (o FormulasData) String() string {
	if len(o) == 0 {
		return "  \"formulas\" : []"
	}
	l := "  \"formulas\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
