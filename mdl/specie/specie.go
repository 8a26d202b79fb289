// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package specie implements the basic properties of a chemical species: name, amount and
// molecular weight; all equations of state are built on top of it
package specie

import (
	"bytes"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// constants
const (
	RR    = 8314.47 // universal gas constant [J/(kmol・K)]
	Pstd  = 1e5     // standard pressure [Pa]
	Small = 1e-15   // amounts below this are treated as zero
	Great = 1e15    // stand-in for an unbounded molecular weight
)

// Specie holds the data shared by all species models
//
//	Y is the mass-related amount of the species; it is the weight used in all mixing rules
//	and is 1 for a species read from the materials database.
type Specie struct {
	name string  // name of species
	y    float64 // amount (mass fraction) [-]
	w    float64 // molecular weight [kg/kmol]
}

// New returns a new species
func New(name string, Y, W float64) Specie {
	return Specie{name, Y, W}
}

// Read reads species data from parameters
//
//	W is required; Y defaults to 1
func Read(name string, prms dbf.Params) (o Specie, err error) {
	o.name = name
	o.y = 1
	p := prms.Find("W")
	if p == nil {
		return o, chk.Err("specie %q: parameter 'W' (molecular weight) is missing", name)
	}
	if p.V <= 0 || math.IsNaN(p.V) || math.IsInf(p.V, 0) {
		return o, chk.Err("specie %q: molecular weight must be positive. W = %v is invalid", name, p.V)
	}
	o.w = p.V
	if p = prms.Find("Y"); p != nil {
		if math.IsNaN(p.V) || math.IsInf(p.V, 0) {
			return o, chk.Err("specie %q: Y = %v is invalid", name, p.V)
		}
		o.y = p.V
	}
	return
}

// Name returns the name of this species
func (o Specie) Name() string { return o.name }

// Y returns the amount of this species
func (o Specie) Y() float64 { return o.y }

// W returns the molecular weight [kg/kmol]
func (o Specie) W() float64 { return o.w }

// R returns the specific gas constant [J/(kg・K)]
func (o Specie) R() float64 { return RR / o.w }

// Rename returns a copy with a new name
func (o Specie) Rename(name string) Specie {
	o.name = name
	return o
}

// Add combines two species with the mass-weighted rule for the molecular weight:
//
//	Y = Ya + Yb
//	W = Y / (Ya/Wa + Yb/Wb)
//
// The name of o is kept
func (o Specie) Add(b Specie) Specie {
	Y := o.y + b.y
	if math.Abs(Y) < Small {
		return Specie{o.name, Y, o.w}
	}
	return Specie{o.name, Y, Y / (o.y/o.w + b.y/b.w)}
}

// Scale multiplies the amount by s; the molecular weight is unchanged
func (o Specie) Scale(s float64) Specie {
	return Specie{o.name, s * o.y, o.w}
}

// Same reconciles two descriptions of the same substance. The result holds the
// difference between b and o:
//
//	Y = Yb - Ya
//	W = Y / (Yb/Wb - Ya/Wa)
func (o Specie) Same(b Specie) Specie {
	dY := b.y - o.y
	if math.Abs(dY) < Small {
		dY = Small
	}
	dRW := b.y/b.w - o.y/o.w
	W := Great
	if math.Abs(dRW) > Small {
		W = dY / dRW
	}
	return Specie{b.name, dY, W}
}

// Prms returns the parameters that reproduce this species
func (o Specie) Prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "Y", V: o.y},
		&dbf.P{N: "W", V: o.w},
	}
}

// Write writes the parameters of this species
func (o Specie) Write(buf *bytes.Buffer) {
	WritePrms(buf, o.Prms())
}

// WritePrms writes parameters in the format of the materials database; one per line
func WritePrms(buf *bytes.Buffer, prms dbf.Params) {
	for i, p := range prms {
		if i > 0 {
			io.Ff(buf, ",\n")
		}
		io.Ff(buf, "        {\"n\": %q, \"v\": %v}", p.N, p.V)
	}
}
