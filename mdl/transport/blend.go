// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"github.com/cpmech/gosl/chk"
	"github.com/loren70/thermodiff/mdl/eos"
)

// MixtureName is the name given to blended species
const MixtureName = "mixture"

// Blend composes a mixture from species and their mass fractions Y:
//
//	mix = Y[0]・species[0] + Y[1]・species[1] + ...
func Blend[M eos.Model[M]](species []*Const[M], Y []float64) (mix *Const[M], err error) {
	if len(species) == 0 {
		return nil, chk.Err("cannot blend an empty list of species")
	}
	if len(species) != len(Y) {
		return nil, chk.Err("number of mass fractions (%d) must be equal to the number of species (%d)", len(Y), len(species))
	}
	mix = species[0].Scale(Y[0]).Rename(MixtureName)
	for i := 1; i < len(species); i++ {
		mix.Accumulate(species[i].Scale(Y[i]))
	}
	return
}

// Mix blends models allocated by New. All models must have the same type
func Mix(models []Model, Y []float64) (Model, error) {
	if len(models) == 0 {
		return nil, chk.Err("cannot mix an empty list of models")
	}
	switch models[0].(type) {
	case *Const[eos.PerfectGas]:
		return mixAs[eos.PerfectGas](models, Y)
	case *Const[eos.RhoConst]:
		return mixAs[eos.RhoConst](models, Y)
	}
	return nil, chk.Err("model %q cannot be mixed", models[0].TypeName())
}

// mixAs converts models to Const[M] and blends them
func mixAs[M eos.Model[M]](models []Model, Y []float64) (Model, error) {
	species := make([]*Const[M], len(models))
	for i, m := range models {
		c, ok := m.(*Const[M])
		if !ok {
			return nil, chk.Err("cannot mix %q (%s) with %q (%s)", m.Name(), m.TypeName(), models[0].Name(), models[0].TypeName())
		}
		species[i] = c
	}
	mix, err := Blend(species, Y)
	if err != nil {
		return nil, err
	}
	return mix, nil
}
