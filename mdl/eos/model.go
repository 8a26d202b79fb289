// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equations of state for species in gas mixtures
package eos

import (
	"bytes"

	"github.com/cpmech/gosl/fun/dbf"
)

// Props defines the state and properties shared by all equations of state
//
//	Note: all properties require p > 0 and T > 0; this is not checked
type Props interface {
	Name() string               // name of species
	Y() float64                 // amount (mass fraction) of species
	W() float64                 // molecular weight [kg/kmol]
	R() float64                 // specific gas constant [J/(kg・K)]
	Rho(p, T float64) float64   // density [kg/m³]
	H(p, T float64) float64     // enthalpy departure [J/kg]
	Cp(p, T float64) float64    // Cp departure [J/(kg・K)]
	E(p, T float64) float64     // internal energy departure [J/kg]
	Cv(p, T float64) float64    // Cv departure [J/(kg・K)]
	S(p, T float64) float64     // entropy [J/(kg・K)]
	Psi(p, T float64) float64   // compressibility ρ/p [s²/m²]
	Z(p, T float64) float64     // compression factor [-]
	CpMCv(p, T float64) float64 // Cp - Cv [J/(kg・K)]
	Incompressible() bool       // ρ != f(p)
	Isochoric() bool            // ρ = const
	TypeName() string           // name used to select models
	Prms() dbf.Params           // parameters that reproduce this model
	Write(buf *bytes.Buffer)    // writes parameters
}

// Model is implemented by equations of state that can be mixed. E is the concrete
// (value) type itself, e.g. PerfectGas implements Model[PerfectGas]
type Model[E any] interface {
	Props
	Add(b E) E            // combines two species weighted by their amounts
	Scale(s float64) E    // scales the amount
	Same(b E) E           // reconciles two descriptions of the same substance
	Rename(name string) E // copy with new name
}

// check implementations
var (
	_ Model[PerfectGas] = PerfectGas{}
	_ Model[RhoConst]   = RhoConst{}
)
