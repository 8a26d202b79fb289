// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana holds reference data of gases used to check and exemplify the models
package ana

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/loren70/thermodiff/mdl/specie"
)

// DryAir handles the properties of dry air
type DryAir struct {
	Θ    float64 // reference temperature; default = 25°C or 298.15K
	R    float64 // specific ideal gas constant
	Patm float64 // absolute atmospheric pressure
	Rho  float64 // density @ reference temperature
	Psi  float64 // compressibility @ reference temperature
}

// Init initialises data
func (o *DryAir) Init() {
	o.Θ = 298.15                 // [K]         25°C
	o.R = 287.058                // [J/(kg・K)]
	o.Patm = 101325              // [Pa]
	o.Rho = o.Patm / (o.R * o.Θ) // [kg/m³]     25°C
	o.Psi = 1.0 / (o.R * o.Θ)    // [s²/m²]
}

// W returns the molecular weight corresponding to R
func (o DryAir) W() float64 {
	return specie.RR / o.R
}

// Gas holds the data of the constant transport model of a gas at about 300 K and 1 bar
//
//	Note: Sc and KT are given for the gas diluted in air
type Gas struct {
	Name string  // formula
	W    float64 // molecular weight [kg/kmol]
	Mu   float64 // dynamic viscosity [Pa・s]
	Pr   float64 // Prandtl number [-]
	Sc   float64 // Schmidt number [-]
	KT   float64 // thermodiffusion ratio [-]
}

// Gases holds example data
var Gases = []Gas{
	{"air", 28.9647, 1.846e-5, 0.707, 0.75, 0},
	{"N2", 28.0134, 1.79e-5, 0.716, 0.73, 0},
	{"O2", 31.9988, 2.07e-5, 0.72, 0.81, 0},
	{"CO2", 44.0095, 1.50e-5, 0.77, 0.94, 0.02},
	{"He", 4.0026, 1.99e-5, 0.68, 0.22, -0.3},
	{"H2", 2.01588, 8.96e-6, 0.70, 0.22, -0.2},
}

// GetGas returns the data of a gas in Gases
//
//	Note: returns nil if not found
func GetGas(name string) *Gas {
	for i := range Gases {
		if Gases[i].Name == name {
			return &Gases[i]
		}
	}
	return nil
}

// Prms returns the parameters of the perfect gas with constant transport
func (o Gas) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "W", V: o.W},
		&dbf.P{N: "mu", V: o.Mu},
		&dbf.P{N: "Pr", V: o.Pr},
		&dbf.P{N: "Sc", V: o.Sc},
		&dbf.P{N: "KT", V: o.KT},
	}
}
