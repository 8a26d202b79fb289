// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/loren70/thermodiff/mdl/specie"
)

// RhoConstType is the type name of the constant density equation of state
const RhoConstType = "rhoConst<specie>"

// RhoConst implements an equation of state with constant density
//
//	ρ = ρ0
//	H = (p - pstd) / ρ0
type RhoConst struct {
	specie.Specie
	rho float64 // density [kg/m³]
}

// NewRhoConst returns a constant density model built on top of a species
func NewRhoConst(sp specie.Specie, rho float64) RhoConst {
	return RhoConst{sp, rho}
}

// ReadRhoConst reads the constant density data from parameters
func ReadRhoConst(name string, prms dbf.Params) (o RhoConst, err error) {
	o.Specie, err = specie.Read(name, prms)
	if err != nil {
		return
	}
	p := prms.Find("rho")
	if p == nil {
		return o, chk.Err("rhoConst %q: parameter 'rho' is missing", name)
	}
	if p.V <= 0 || math.IsInf(p.V, 0) || math.IsNaN(p.V) {
		return o, chk.Err("rhoConst %q: density must be positive. rho = %v is invalid", name, p.V)
	}
	o.rho = p.V
	return
}

// Rho returns the constant density
func (o RhoConst) Rho(p, T float64) float64 { return o.rho }

// H returns the enthalpy departure (p - Pstd)/rho
func (o RhoConst) H(p, T float64) float64 { return (p - specie.Pstd) / o.rho }

// departures, entropy, compressibility and compression factor vanish
func (o RhoConst) Cp(p, T float64) float64    { return 0 }
func (o RhoConst) E(p, T float64) float64     { return 0 }
func (o RhoConst) Cv(p, T float64) float64    { return 0 }
func (o RhoConst) S(p, T float64) float64     { return 0 }
func (o RhoConst) Psi(p, T float64) float64   { return 0 }
func (o RhoConst) Z(p, T float64) float64     { return 0 }
func (o RhoConst) CpMCv(p, T float64) float64 { return 0 }

// Incompressible returns true
func (o RhoConst) Incompressible() bool { return true }

// Isochoric returns true
func (o RhoConst) Isochoric() bool { return true }

// TypeName returns the type name
func (o RhoConst) TypeName() string { return RhoConstType }

// Add combines two liquids; the density is mass-weighted
func (o RhoConst) Add(b RhoConst) RhoConst {
	sp := o.Specie.Add(b.Specie)
	if math.Abs(sp.Y()) > specie.Small {
		w1 := o.Y() / sp.Y()
		w2 := b.Y() / sp.Y()
		return RhoConst{sp, w1*o.rho + w2*b.rho}
	}
	return RhoConst{sp, o.rho}
}

// Scale scales the amount; the density is unchanged
func (o RhoConst) Scale(s float64) RhoConst {
	return RhoConst{o.Specie.Scale(s), o.rho}
}

// Same reconciles two descriptions of the same substance; the density of b is taken
func (o RhoConst) Same(b RhoConst) RhoConst {
	return RhoConst{o.Specie.Same(b.Specie), b.rho}
}

// Rename returns a copy with a new name
func (o RhoConst) Rename(name string) RhoConst {
	return RhoConst{o.Specie.Rename(name), o.rho}
}

// Prms returns the parameters that reproduce this model
func (o RhoConst) Prms() dbf.Params {
	return append(o.Specie.Prms(), &dbf.P{N: "rho", V: o.rho})
}

// Write writes the parameters of this model
func (o RhoConst) Write(buf *bytes.Buffer) {
	specie.WritePrms(buf, o.Prms())
}
