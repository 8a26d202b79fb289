// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of species data
package inp

import (
	"bytes"
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/loren70/thermodiff/ana"
	"github.com/loren70/thermodiff/mdl/eos"
	"github.com/loren70/thermodiff/mdl/specie"
	"github.com/loren70/thermodiff/mdl/transport"
)

// Species holds species data
type Species struct {

	// input
	Name  string     `json:"name"`  // name of species; e.g. "N2", "CO2"
	Model string     `json:"model"` // name of model; e.g. "thermoDiffconst<thermoDiffperfectGas<specie>>"
	Extra string     `json:"extra"` // extra information about this species
	Prms  dbf.Params `json:"prms"`  // parameters of the equation of state and transport model

	// derived
	Transport transport.Model `json:"-"` // actual model
}

// SpeciesData holds all species
type SpeciesData []*Species

// MatDb implements a database of species
type MatDb struct {
	Species SpeciesData `json:"species"` // all species
}

// ReadMat reads all species data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	mdb, err = ParseMat(b)
	if err != nil {
		return nil, chk.Err("cannot read %q:\n%v", fn, err)
	}
	return
}

// ParseMat decodes species data and allocates all models
//
//	Note: nothing is returned if any species fails
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, err
	}

	// alloc/init
	if err = mdb.alloc(); err != nil {
		return nil, err
	}
	return
}

// alloc checks names and allocates the model of each species
func (o *MatDb) alloc() (err error) {
	names := make(map[string]bool)
	for _, s := range o.Species {
		if s.Name == "" {
			return chk.Err("all species must have a name")
		}
		if names[s.Name] {
			return chk.Err("species %q is defined more than once", s.Name)
		}
		names[s.Name] = true
		s.Transport, err = transport.New(s.Model, s.Name, s.Prms)
		if err != nil {
			return
		}
	}
	return
}

// GasesMat builds a database of perfect gases with constant transport from reference data
func GasesMat(gases []ana.Gas) (mdb *MatDb, err error) {
	mdb = new(MatDb)
	model := transport.TypeName(eos.PerfectGasType)
	for _, g := range gases {
		mdb.Species = append(mdb.Species, &Species{Name: g.Name, Model: model, Extra: "reference gas", Prms: g.Prms()})
	}
	if err = mdb.alloc(); err != nil {
		return nil, err
	}
	return
}

// Get returns a species
//
//	Note: returns nil if not found
func (o MatDb) Get(name string) *Species {
	for _, s := range o.Species {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Mixture blends species with mass fractions Y
func (o MatDb) Mixture(names []string, Y []float64) (mix transport.Model, err error) {
	models := make([]transport.Model, len(names))
	for i, name := range names {
		s := o.Get(name)
		if s == nil {
			return nil, chk.Err("cannot find species named %q", name)
		}
		models[i] = s.Transport
	}
	return transport.Mix(models, Y)
}

// Record returns the species data of a model, e.g. a mixture
func Record(model transport.Model, extra string) *Species {
	return &Species{
		Name:      model.Name(),
		Model:     model.TypeName(),
		Extra:     extra,
		Prms:      model.Prms(),
		Transport: model,
	}
}

// String prints one species; the parameters are written by the model if allocated
func (o *Species) String() string {
	var buf bytes.Buffer
	if o.Transport != nil {
		o.Transport.Write(&buf)
	} else {
		specie.WritePrms(&buf, o.Prms)
	}
	return io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%s\n      ]\n    }", o.Name, o.Model, o.Extra, buf.String())
}

// String prints all species
func (o SpeciesData) String() string {
	l := "  \"species\" : [\n"
	for i, s := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", s)
	}
	l += "\n  ]"
	return l
}

// String outputs all species
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Species)
}
