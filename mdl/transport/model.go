// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package transport implements models for viscosity, thermal conductivity and mass
// diffusivities of species in gas mixtures
package transport

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/loren70/thermodiff/mdl/eos"
)

// Model defines transport models; the properties of the underlying equation of state
// are also available
type Model interface {
	eos.Props
	Mu(p, T float64) float64     // dynamic viscosity [kg/(m・s)]
	Kappa(p, T float64) float64  // thermal conductivity [W/(m・K)]
	Alphah(p, T float64) float64 // thermal diffusivity of enthalpy [kg/(m・s)]
	Dab(p, T float64) float64    // mass diffusivity [m²/s]
	DT(p, T float64) float64     // thermodiffusion coefficient [m²/(s・K)]
	Pr() float64                 // Prandtl number
	Sc() float64                 // Schmidt number
	KT() float64                 // thermodiffusion ratio
}

// TypeName returns the name of the constant transport model built on top of the
// equation of state named eosType
func TypeName(eosType string) string {
	return "thermoDiffconst<" + eosType + ">"
}

// New allocates and reads a transport model. model is a type name such as
// "thermoDiffconst<thermoDiffperfectGas<specie>>"
func New(model, name string, prms dbf.Params) (Model, error) {
	allocator, ok := allocators[model]
	if !ok {
		return nil, chk.Err("model %q is not available in 'transport' database", model)
	}
	return allocator(name, prms)
}

// Models returns the sorted names of all available models
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func(name string, prms dbf.Params) (Model, error){}

// add models to factory
func init() {
	allocators[TypeName(eos.PerfectGasType)] = func(name string, prms dbf.Params) (Model, error) {
		e, err := eos.ReadPerfectGas(name, prms)
		if err != nil {
			return nil, err
		}
		c, err := ReadConst(e, prms)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	allocators[TypeName(eos.RhoConstType)] = func(name string, prms dbf.Params) (Model, error) {
		e, err := eos.ReadRhoConst(name, prms)
		if err != nil {
			return nil, err
		}
		c, err := ReadConst(e, prms)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// check implementations
var (
	_ Model = (*Const[eos.PerfectGas])(nil)
	_ Model = (*Const[eos.RhoConst])(nil)
)
