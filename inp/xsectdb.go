// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/20-S2-2-C-Flood-Modelling/Stormwater-Management-Model/xsect"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// requiredPrms lists the parameter names each shape tag needs present in
// its "prms" list before Init is attempted; "custom" takes its table data
// directly on the struct and needs none.
var requiredPrms = map[string][]string{
	"circular":    {"diam"},
	"rectangular": {"yFull", "width"},
	"forcemain":   {"diam"},
}

// XsectData holds one cross-section definition as read from the shapes
// file: a name, a shape tag recognised by xsect.New, and the shape's
// parameter list.
type XsectData struct {
	Name  string   `json:"name"`  // name of cross-section, referenced by conduits
	Shape string   `json:"shape"` // shape tag; e.g. "circular", "rectangular", "forcemain", "custom"
	Extra string   `json:"extra"` // extra information about this cross-section
	Prms  fun.Prms `json:"prms"`  // shape parameters

	// derived
	Geom xsect.Shape // allocated and initialised geometry
}

// XsectsData holds all cross-sections in a run.
type XsectsData []*XsectData

// XsectDb implements a database of cross-section geometries, analogous to
// the FEM solver's material database: a flat JSON list of named entries,
// each allocated through the xsect registry and initialised from its
// parameter list.
type XsectDb struct {
	Xsects XsectsData `json:"xsects"`

	byName map[string]*XsectData
}

// ReadXsectDb reads all cross-section data from a JSON file.
func ReadXsectDb(dir, fn string) (xdb *XsectDb, err error) {
	xdb = new(XsectDb)

	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(b, xdb)
	if err != nil {
		return nil, err
	}

	xdb.byName = make(map[string]*XsectData)
	for _, x := range xdb.Xsects {
		x.Geom, err = xsect.New(x.Shape)
		if err != nil {
			return nil, chk.Err("cannot allocate cross-section %q: %v", x.Name, err)
		}
		if names, ok := requiredPrms[x.Shape]; ok {
			_, found := x.Prms.GetValues(names)
			if !utl.AllTrue(found) {
				return nil, chk.Err("cross-section %q (shape %q): missing required parameter(s) among %v", x.Name, x.Shape, names)
			}
		}
		err = x.Geom.Init(x.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise cross-section %q: %v", x.Name, err)
		}
		xdb.byName[x.Name] = x
	}
	return xdb, nil
}

// Get returns the geometry registered under name, or nil if not found.
func (o *XsectDb) Get(name string) xsect.Shape {
	if x, ok := o.byName[name]; ok {
		return x.Geom
	}
	return nil
}

// String prints one cross-section definition.
func (o *XsectData) String() string {
	fun.G_extraindent = "  "
	fun.G_openbrackets = false
	return io.Sf("    {\n      \"name\"  : %q,\n      \"shape\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%v\n    }", o.Name, o.Shape, o.Extra, o.Prms)
}

// String prints all cross-section definitions.
func (o XsectsData) String() string {
	l := "  \"xsects\" : [\n"
	for i, x := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", x)
	}
	l += "\n  ]"
	return l
}

// String outputs the whole database.
func (o XsectDb) String() string {
	return io.Sf("{\n%v\n}", o.Xsects)
}
