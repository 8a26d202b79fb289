// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/loren70/thermodiff/mdl/eos"
	"github.com/loren70/thermodiff/mdl/specie"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// gas returns a perfect gas species with unit amount
func gas(tst *testing.T, name string, W, mu, Pr, Sc, KT float64) *Const[eos.PerfectGas] {
	e := eos.NewPerfectGas(specie.New(name, 1, W))
	o, err := ReadConst(e, dbf.Params{
		&dbf.P{N: "mu", V: mu},
		&dbf.P{N: "Pr", V: Pr},
		&dbf.P{N: "Sc", V: Sc},
		&dbf.P{N: "KT", V: KT},
	})
	if err != nil {
		tst.Fatalf("ReadConst failed: %v\n", err)
	}
	return o
}

func Test_const01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const01. properties")

	a := gas(tst, "A", 28.0134, 1.8e-5, 0.7, 1.0, 0.02)
	chk.String(tst, a.TypeName(), "thermoDiffconst<thermoDiffperfectGas<specie>>")
	chk.String(tst, a.Name(), "A")
	chk.Float64(tst, "Pr", 1e-15, a.Pr(), 0.7)
	chk.Float64(tst, "Sc", 1e-15, a.Sc(), 1.0)
	chk.Float64(tst, "KT", 1e-15, a.KT(), 0.02)
	if a.Incompressible() || a.Isochoric() {
		tst.Errorf("a gas with constant transport must follow its compressible equation of state\n")
		return
	}

	R := specie.RR / 28.0134
	for _, p := range utl.LinSpace(5e4, 5e5, 4) {
		for _, T := range utl.LinSpace(250, 1500, 6) {
			rho := p / (R * T)
			Dab := 1.8e-5 / (rho * 1.0)
			chk.Float64(tst, "mu", 1e-20, a.Mu(p, T), 1.8e-5)
			chk.Float64(tst, "alphah", 1e-18, a.Alphah(p, T), 1.8e-5/0.7)
			chk.Float64(tst, "rho", 1e-13, a.Rho(p, T), rho)
			chk.Float64(tst, "Dab", 1e-15, a.Dab(p, T), Dab)
			chk.Float64(tst, "DT", 1e-17, a.DT(p, T), Dab*0.02/T)

			// Cp departure of the perfect gas is zero, hence so is the conductivity
			chk.Float64(tst, "Cp", 1e-15, a.Cp(p, T), 0)
			chk.Float64(tst, "kappa", 1e-15, a.Kappa(p, T), 0)

			chk.Float64(tst, "Z", 1e-15, a.Z(p, T), 1)
			chk.Float64(tst, "CpMCv", 1e-12, a.CpMCv(p, T), R)
		}
	}
}

func Test_const02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const02. mixing two species")

	a := gas(tst, "A", 28.0134, 1.8e-5, 0.7, 1.0, 0.0)
	b := gas(tst, "B", 44.0095, 2.0e-5, 0.72, 1.1, 0.05)

	mix := a.Scale(0.3).Add(b.Scale(0.7))
	io.Pforan("mu = %v  Pr = %v  Sc = %v  KT = %v\n", mix.Mu(1e5, 300), mix.Pr(), mix.Sc(), mix.KT())
	chk.Float64(tst, "Y", 1e-15, mix.Y(), 1)
	chk.Float64(tst, "mu", 1e-19, mix.Mu(1e5, 300), 1.94e-5)
	chk.Float64(tst, "Sc", 1e-14, mix.Sc(), 1.07)
	chk.Float64(tst, "KT", 1e-15, mix.KT(), 0.035)

	// reciprocals of reciprocals: Pr is mass-weighted
	chk.Float64(tst, "Pr", 1e-14, mix.Pr(), 0.3*0.7+0.7*0.72)

	// the combined equation of state is used for the density
	rho := 1.0 / (0.3/a.Rho(1e5, 300) + 0.7/b.Rho(1e5, 300))
	chk.Float64(tst, "rho", 1e-12, mix.Rho(1e5, 300), rho)
	chk.Float64(tst, "Dab", 1e-17, mix.Dab(1e5, 300), 1.94e-5/(rho*1.07))

	// operands are unchanged
	chk.Float64(tst, "Y(a)", 1e-15, a.Y(), 1)
	chk.Float64(tst, "mu(a)", 1e-20, a.Mu(1e5, 300), 1.8e-5)

	// accumulation gives the same result
	acc := a.Scale(0.3)
	acc.Accumulate(b.Scale(0.7))
	chk.Float64(tst, "acc: mu", 1e-20, acc.Mu(1e5, 300), mix.Mu(1e5, 300))
	chk.Float64(tst, "acc: Pr", 1e-15, acc.Pr(), mix.Pr())
	chk.Float64(tst, "acc: Sc", 1e-15, acc.Sc(), mix.Sc())
	chk.Float64(tst, "acc: KT", 1e-15, acc.KT(), mix.KT())
	chk.Float64(tst, "acc: W", 1e-12, acc.W(), mix.W())
}

func Test_const03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const03. self-mixing and scaling")

	a := gas(tst, "A", 28.0134, 1.8e-5, 0.7, 1.0, 0.02)

	self := a.Add(a)
	chk.Float64(tst, "Y", 1e-15, self.Y(), 2)
	chk.Float64(tst, "W", 1e-12, self.W(), 28.0134)
	chk.Float64(tst, "mu", 1e-20, self.Mu(1e5, 300), 1.8e-5)
	chk.Float64(tst, "Pr", 1e-15, self.Pr(), 0.7)
	chk.Float64(tst, "Sc", 1e-15, self.Sc(), 1.0)
	chk.Float64(tst, "KT", 1e-15, self.KT(), 0.02)

	s := a.Scale(0.25)
	chk.Float64(tst, "Y(scaled)", 1e-15, s.Y(), 0.25)
	chk.Float64(tst, "W(scaled)", 1e-15, s.W(), 28.0134)
	chk.Float64(tst, "mu(scaled)", 1e-20, s.Mu(1e5, 300), 1.8e-5)
	chk.Float64(tst, "Pr(scaled)", 1e-15, s.Pr(), 0.7)
	chk.Float64(tst, "Sc(scaled)", 1e-15, s.Sc(), 1.0)
	chk.Float64(tst, "KT(scaled)", 1e-15, s.KT(), 0.02)

	c := a.Rename("A2")
	c.ScaleBy(4)
	chk.String(tst, c.Name(), "A2")
	chk.String(tst, a.Name(), "A")
	chk.Float64(tst, "Y(A2)", 1e-15, c.Y(), 4)
	chk.Float64(tst, "Y(A)", 1e-15, a.Y(), 1)
	chk.Float64(tst, "mu(A2)", 1e-20, c.Mu(1e5, 300), 1.8e-5)
}

func Test_const04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const04. zero amount")

	a := gas(tst, "A", 28.0134, 1.8e-5, 0.7, 1.0, 0.02)
	b := gas(tst, "B", 44.0095, 2.0e-5, 0.72, 1.1, 0.05)

	z := a.Scale(0).Add(b.Scale(0))
	chk.Float64(tst, "Y", 1e-15, z.Y(), 0)
	chk.Float64(tst, "mu", 1e-20, z.Mu(1e5, 300), 0)
	chk.Float64(tst, "Pr", 1e-15, z.Pr(), 0.7)
	chk.Float64(tst, "Sc", 1e-15, z.Sc(), 1.0)
	chk.Float64(tst, "KT", 1e-15, z.KT(), 0.02)

	// accumulating into an empty model keeps its coefficients
	acc := a.Scale(0)
	acc.Accumulate(b.Scale(0))
	chk.Float64(tst, "acc: Y", 1e-15, acc.Y(), 0)
	chk.Float64(tst, "acc: mu", 1e-20, acc.Mu(1e5, 300), 1.8e-5)
	chk.Float64(tst, "acc: Pr", 1e-15, acc.Pr(), 0.7)
	chk.Float64(tst, "acc: Sc", 1e-15, acc.Sc(), 1.0)
	chk.Float64(tst, "acc: KT", 1e-15, acc.KT(), 0.02)

	// an empty model takes the coefficients of the other one
	acc = a.Scale(0)
	acc.Accumulate(b)
	chk.Float64(tst, "fill: mu", 1e-20, acc.Mu(1e5, 300), 2.0e-5)
	chk.Float64(tst, "fill: Pr", 1e-15, acc.Pr(), 0.72)
	chk.Float64(tst, "fill: Sc", 1e-15, acc.Sc(), 1.1)
	chk.Float64(tst, "fill: KT", 1e-15, acc.KT(), 0.05)
}

func Test_const05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const05. density of the composed equation of state")

	// Dab uses the density of whatever equation of state the model is built on
	water := eos.NewRhoConst(specie.New("water", 1, 18.0153), 997)
	liq, err := ReadConst(water, dbf.Params{
		&dbf.P{N: "mu", V: 8.9e-4},
		&dbf.P{N: "Pr", V: 6.1},
		&dbf.P{N: "Sc", V: 400},
		&dbf.P{N: "KT", V: 0.1},
	})
	if err != nil {
		tst.Errorf("ReadConst failed: %v\n", err)
		return
	}
	chk.String(tst, liq.TypeName(), "thermoDiffconst<rhoConst<specie>>")
	for _, T := range []float64{280, 300, 350} {
		chk.Float64(tst, "Dab", 1e-20, liq.Dab(2e5, T), 8.9e-4/(997*400))
		chk.Float64(tst, "DT", 1e-20, liq.DT(2e5, T), 8.9e-4/(997*400)*0.1/T)
	}

	vapour := gas(tst, "vapour", 18.0153, 8.9e-4, 6.1, 400, 0.1)
	if liq.Dab(1e5, 300) == vapour.Dab(1e5, 300) {
		tst.Errorf("Dab must depend on the equation of state\n")
	}
}

func Test_const06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const06. read errors")

	e := eos.NewPerfectGas(specie.New("A", 1, 28))
	all := func() dbf.Params {
		return dbf.Params{
			&dbf.P{N: "mu", V: 1.8e-5},
			&dbf.P{N: "Pr", V: 0.7},
			&dbf.P{N: "Sc", V: 1.0},
			&dbf.P{N: "KT", V: 0},
		}
	}

	for i, key := range []string{"mu", "Pr", "Sc", "KT"} {
		prms := all()
		prms = append(prms[:i], prms[i+1:]...)
		_, err := ReadConst(e, prms)
		if err == nil {
			tst.Errorf("missing %q should have failed\n", key)
			return
		}
		io.Pforan("%v\n", err)
	}

	for _, bad := range []struct {
		key string
		val float64
	}{{"mu", -1}, {"Pr", 0}, {"Sc", -2}} {
		prms := all()
		prms.Find(bad.key).V = bad.val
		if _, err := ReadConst(e, prms); err == nil {
			tst.Errorf("%s = %v should have failed\n", bad.key, bad.val)
			return
		}
	}
}

func Test_const07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("const07. write and read back")

	a := gas(tst, "A", 28.0134, 1.8e-5, 0.7, 1.0, 0.02)
	b := gas(tst, "B", 44.0095, 2.0e-5, 0.72, 1.1, 0.05)
	mix := a.Scale(0.3).Add(b.Scale(0.7))

	var buf bytes.Buffer
	mix.Write(&buf)
	io.Pforan("%v\n", buf.String())

	res, err := New(mix.TypeName(), "copy", mix.Prms())
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	chk.String(tst, res.Name(), "copy")
	chk.Float64(tst, "Y", 1e-15, res.Y(), mix.Y())
	chk.Float64(tst, "W", 1e-15, res.W(), mix.W())
	chk.Float64(tst, "mu", 1e-20, res.Mu(1e5, 300), mix.Mu(1e5, 300))
	chk.Float64(tst, "Sc", 1e-15, res.Sc(), mix.Sc())
	chk.Float64(tst, "KT", 1e-15, res.KT(), mix.KT())
	chk.Float64(tst, "Pr", 1e-15, res.Pr(), mix.Pr())
	chk.Float64(tst, "Dab", 1e-17, res.Dab(1e5, 300), mix.Dab(1e5, 300))

	// Y, W, mu, Pr, Sc and KT
	chk.Int(tst, "number of written parameters", strings.Count(buf.String(), "\"n\":"), 6)
}
