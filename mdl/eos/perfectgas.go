// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/loren70/thermodiff/mdl/specie"
)

// PerfectGasType is the type name of the perfect gas equation of state
const PerfectGasType = "thermoDiffperfectGas<specie>"

// PerfectGas implements the perfect gas equation of state
//
//	ρ = p / (R・T)
//
// The departure functions H, Cp, E and Cv are identically zero
type PerfectGas struct {
	specie.Specie
}

// NewPerfectGas returns a perfect gas built on top of a species
func NewPerfectGas(sp specie.Specie) PerfectGas {
	return PerfectGas{sp}
}

// ReadPerfectGas reads the perfect gas data from parameters
func ReadPerfectGas(name string, prms dbf.Params) (o PerfectGas, err error) {
	o.Specie, err = specie.Read(name, prms)
	return
}

// Rho returns the density
func (o PerfectGas) Rho(p, T float64) float64 {
	return p / (o.R() * T)
}

// H returns the enthalpy departure
func (o PerfectGas) H(p, T float64) float64 { return 0 }

// Cp returns the Cp departure
func (o PerfectGas) Cp(p, T float64) float64 { return 0 }

// E returns the internal energy departure
func (o PerfectGas) E(p, T float64) float64 { return 0 }

// Cv returns the Cv departure
func (o PerfectGas) Cv(p, T float64) float64 { return 0 }

// S returns the entropy relative to the standard pressure
func (o PerfectGas) S(p, T float64) float64 {
	return -o.R() * math.Log(p/specie.Pstd)
}

// Psi returns the compressibility
func (o PerfectGas) Psi(p, T float64) float64 {
	return 1.0 / (o.R() * T)
}

// Z returns the compression factor
func (o PerfectGas) Z(p, T float64) float64 { return 1 }

// CpMCv returns Cp - Cv
func (o PerfectGas) CpMCv(p, T float64) float64 {
	return o.R()
}

// Incompressible returns false: the density follows the pressure
func (o PerfectGas) Incompressible() bool { return false }

// Isochoric returns false
func (o PerfectGas) Isochoric() bool { return false }

// TypeName returns the type name
func (o PerfectGas) TypeName() string { return PerfectGasType }

// Add combines two perfect gases
func (o PerfectGas) Add(b PerfectGas) PerfectGas {
	return PerfectGas{o.Specie.Add(b.Specie)}
}

// Scale scales the amount of gas
func (o PerfectGas) Scale(s float64) PerfectGas {
	return PerfectGas{o.Specie.Scale(s)}
}

// Same reconciles two descriptions of the same gas
func (o PerfectGas) Same(b PerfectGas) PerfectGas {
	return PerfectGas{o.Specie.Same(b.Specie)}
}

// Rename returns a copy with a new name
func (o PerfectGas) Rename(name string) PerfectGas {
	return PerfectGas{o.Specie.Rename(name)}
}

// Prms returns the parameters that reproduce this gas
func (o PerfectGas) Prms() dbf.Params {
	return o.Specie.Prms()
}

// Write writes the parameters of this gas
func (o PerfectGas) Write(buf *bytes.Buffer) {
	specie.WritePrms(buf, o.Prms())
}
