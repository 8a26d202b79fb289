// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements structures and functions to test models against reference results
package tests

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/loren70/thermodiff/mdl/transport"
)

// State holds reference properties at one state (p, T)
type State struct {
	P      float64 `json:"p"`      // pressure [Pa]
	T      float64 `json:"T"`      // temperature [K]
	Rho    float64 `json:"rho"`    // density
	Psi    float64 `json:"psi"`    // compressibility
	S      float64 `json:"S"`      // entropy
	Mu     float64 `json:"mu"`     // dynamic viscosity
	Kappa  float64 `json:"kappa"`  // thermal conductivity
	Alphah float64 `json:"alphah"` // thermal diffusivity of enthalpy
	Dab    float64 `json:"Dab"`    // mass diffusivity
	DT     float64 `json:"DT"`     // thermodiffusion coefficient
}

// Results holds reference results of one model
type Results struct {
	Note    string    `json:"note"`    // how the results were obtained
	Species []string  `json:"species"` // names of species
	Y       []float64 `json:"Y"`       // mass fractions
	W       float64   `json:"W"`       // molecular weight of mixture
	Pr      float64   `json:"Pr"`      // Prandtl number
	Sc      float64   `json:"Sc"`      // Schmidt number
	KT      float64   `json:"KT"`      // thermodiffusion ratio
	States  []State   `json:"states"`  // properties at given states
}

// ReadResults reads reference results from a .cmp JSON file
func ReadResults(cmpfname string) (res *Results, err error) {
	b := io.ReadFile(cmpfname)
	if err != nil {
		return nil, err
	}
	res = new(Results)
	err = json.Unmarshal(b, res)
	if err != nil {
		return nil, chk.Err("cannot decode %q:\n%v", cmpfname, err)
	}
	if len(res.Species) != len(res.Y) {
		return nil, chk.Err("%q: number of mass fractions must be equal to the number of species", cmpfname)
	}
	return
}

// CompareResults compares all properties of a model with reference results; tol is a
// relative tolerance
func CompareResults(tst *testing.T, mdl transport.Model, res *Results, tol float64, verbose bool) {
	rel := func(msg string, a, b float64) {
		scale := math.Abs(b)
		if scale == 0 {
			scale = 1
		}
		chk.Float64(tst, msg, tol*scale, a, b)
	}
	rel("W", mdl.W(), res.W)
	rel("Pr", mdl.Pr(), res.Pr)
	rel("Sc", mdl.Sc(), res.Sc)
	rel("KT", mdl.KT(), res.KT)
	for _, s := range res.States {
		if verbose {
			io.Pf("p = %g  T = %g\n", s.P, s.T)
		}
		rel("rho", mdl.Rho(s.P, s.T), s.Rho)
		rel("psi", mdl.Psi(s.P, s.T), s.Psi)
		rel("S", mdl.S(s.P, s.T), s.S)
		rel("mu", mdl.Mu(s.P, s.T), s.Mu)
		rel("kappa", mdl.Kappa(s.P, s.T), s.Kappa)
		rel("alphah", mdl.Alphah(s.P, s.T), s.Alphah)
		rel("Dab", mdl.Dab(s.P, s.T), s.Dab)
		rel("DT", mdl.DT(s.P, s.T), s.DT)
	}
}
