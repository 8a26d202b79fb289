// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/loren70/thermodiff/mdl/eos"
	"github.com/loren70/thermodiff/mdl/specie"
)

// Const implements a transport model with constant properties on top of an equation of
// state M, which provides the density and Cp:
//
//	κ  = Cp・μ / Pr
//	αh = μ / Pr
//	Dab = μ / (ρ・Sc)
//	DT = Dab・KT / T
//
// The Prandtl number is stored as its reciprocal.
type Const[M eos.Model[M]] struct {
	eos M       // equation of state
	mu  float64 // dynamic viscosity [Pa・s]
	rPr float64 // reciprocal Prandtl number [-]
	sc  float64 // Schmidt number [-]
	kt  float64 // thermodiffusion ratio [-]
}

// newConst returns a new model; Pr is the Prandtl number, not its reciprocal
func newConst[M eos.Model[M]](e M, mu, Pr, Sc, KT float64) *Const[M] {
	return &Const[M]{e, mu, 1.0 / Pr, Sc, KT}
}

// ReadConst reads the transport data from parameters. e is the equation of state
// already read for the same species. Required parameters: mu, Pr, Sc and KT
func ReadConst[M eos.Model[M]](e M, prms dbf.Params) (o *Const[M], err error) {
	keys := []string{"mu", "Pr", "Sc", "KT"}
	values, found := prms.GetValues(keys)
	for i, ok := range found {
		if !ok {
			return nil, chk.Err("%s %q: parameter %q is missing", TypeName(e.TypeName()), e.Name(), keys[i])
		}
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return nil, chk.Err("%s %q: %s = %v is invalid", TypeName(e.TypeName()), e.Name(), keys[i], values[i])
		}
	}
	mu, Pr, Sc, KT := values[0], values[1], values[2], values[3]
	if mu < 0 {
		return nil, chk.Err("%s %q: viscosity must not be negative. mu = %v is invalid", TypeName(e.TypeName()), e.Name(), mu)
	}
	if Pr <= 0 {
		return nil, chk.Err("%s %q: Prandtl number must be positive. Pr = %v is invalid", TypeName(e.TypeName()), e.Name(), Pr)
	}
	if Sc <= 0 {
		return nil, chk.Err("%s %q: Schmidt number must be positive. Sc = %v is invalid", TypeName(e.TypeName()), e.Name(), Sc)
	}
	return newConst(e, mu, Pr, Sc, KT), nil
}

// TypeName returns the type name
func (o *Const[M]) TypeName() string {
	return TypeName(o.eos.TypeName())
}

// Eos returns the equation of state
func (o *Const[M]) Eos() M { return o.eos }

// Name returns the name of the species
func (o *Const[M]) Name() string { return o.eos.Name() }

// Y returns the amount of the species
func (o *Const[M]) Y() float64 { return o.eos.Y() }

// W returns the molecular weight
func (o *Const[M]) W() float64 { return o.eos.W() }

// R returns the specific gas constant
func (o *Const[M]) R() float64 { return o.eos.R() }

// Rho, H, Cp, E, Cv, S, Psi, Z and CpMCv are the properties of the equation of state
func (o *Const[M]) Rho(p, T float64) float64   { return o.eos.Rho(p, T) }
func (o *Const[M]) H(p, T float64) float64     { return o.eos.H(p, T) }
func (o *Const[M]) Cp(p, T float64) float64    { return o.eos.Cp(p, T) }
func (o *Const[M]) E(p, T float64) float64     { return o.eos.E(p, T) }
func (o *Const[M]) Cv(p, T float64) float64    { return o.eos.Cv(p, T) }
func (o *Const[M]) S(p, T float64) float64     { return o.eos.S(p, T) }
func (o *Const[M]) Psi(p, T float64) float64   { return o.eos.Psi(p, T) }
func (o *Const[M]) Z(p, T float64) float64     { return o.eos.Z(p, T) }
func (o *Const[M]) CpMCv(p, T float64) float64 { return o.eos.CpMCv(p, T) }

// Incompressible tells whether the density is independent of pressure
func (o *Const[M]) Incompressible() bool { return o.eos.Incompressible() }

// Isochoric tells whether the density is independent of pressure and temperature
func (o *Const[M]) Isochoric() bool { return o.eos.Isochoric() }

// Rename returns a copy with a new name
func (o *Const[M]) Rename(name string) *Const[M] {
	return &Const[M]{o.eos.Rename(name), o.mu, o.rPr, o.sc, o.kt}
}

// Pr returns the Prandtl number
func (o *Const[M]) Pr() float64 { return 1.0 / o.rPr }

// Sc returns the Schmidt number
func (o *Const[M]) Sc() float64 { return o.sc }

// KT returns the thermodiffusion ratio
func (o *Const[M]) KT() float64 { return o.kt }

// Mu returns the dynamic viscosity [kg/(m・s)]
func (o *Const[M]) Mu(p, T float64) float64 {
	return o.mu
}

// Kappa returns the thermal conductivity [W/(m・K)]
func (o *Const[M]) Kappa(p, T float64) float64 {
	return o.eos.Cp(p, T) * o.Mu(p, T) * o.rPr
}

// Alphah returns the thermal diffusivity of enthalpy [kg/(m・s)]
func (o *Const[M]) Alphah(p, T float64) float64 {
	return o.Mu(p, T) * o.rPr
}

// Dab returns the mass diffusivity [m²/s]
func (o *Const[M]) Dab(p, T float64) float64 {
	return o.Mu(p, T) / (o.eos.Rho(p, T) * o.sc)
}

// DT returns the thermodiffusion coefficient [m²/(s・K)]
//
//	Note: T must not be zero
func (o *Const[M]) DT(p, T float64) float64 {
	return o.Dab(p, T) * o.kt / T
}

// Add combines two species. The equations of state are combined first; the
// viscosity, Schmidt number and thermodiffusion ratio are mass-weighted, and so is
// the Prandtl number (through its reciprocal). If the combined amount vanishes, the
// result has zero viscosity and the remaining data of o
func (o *Const[M]) Add(b *Const[M]) *Const[M] {
	t := o.eos.Add(b.eos)
	if math.Abs(t.Y()) < specie.Small {
		return &Const[M]{t, 0, o.rPr, o.sc, o.kt}
	}
	w1 := o.Y() / t.Y()
	w2 := b.Y() / t.Y()
	return &Const[M]{
		t,
		w1*o.mu + w2*b.mu,
		1.0 / (w1/o.rPr + w2/b.rPr),
		w1*o.sc + w2*b.sc,
		w1*o.kt + w2*b.kt,
	}
}

// Scale returns a copy with the amount of the equation of state scaled by s; the
// transport coefficients are unchanged
func (o *Const[M]) Scale(s float64) *Const[M] {
	return newConst(o.eos.Scale(s), o.mu, 1.0/o.rPr, o.sc, o.kt)
}

// Accumulate adds b into o. The coefficients are only re-weighted if the combined
// amount is not zero
func (o *Const[M]) Accumulate(b *Const[M]) {
	Y1 := o.Y()
	o.eos = o.eos.Add(b.eos)
	if math.Abs(o.Y()) > specie.Small {
		Y1 /= o.Y()
		Y2 := b.Y() / o.Y()
		o.mu = Y1*o.mu + Y2*b.mu
		o.rPr = 1.0 / (Y1/o.rPr + Y2/b.rPr)
		o.sc = Y1*o.sc + Y2*b.sc
		o.kt = Y1*o.kt + Y2*b.kt
	}
}

// ScaleBy scales the amount of the equation of state in place
func (o *Const[M]) ScaleBy(s float64) {
	o.eos = o.eos.Scale(s)
}

// Prms returns the parameters that reproduce this model
func (o *Const[M]) Prms() dbf.Params {
	return append(o.eos.Prms(),
		&dbf.P{N: "mu", V: o.mu},
		&dbf.P{N: "Pr", V: 1.0 / o.rPr},
		&dbf.P{N: "Sc", V: o.sc},
		&dbf.P{N: "KT", V: o.kt},
	)
}

// Write writes the parameters of the equation of state followed by the transport ones
func (o *Const[M]) Write(buf *bytes.Buffer) {
	specie.WritePrms(buf, o.Prms())
}
