// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/loren70/thermodiff/ana"
	"github.com/loren70/thermodiff/inp"
	"github.com/loren70/thermodiff/mdl/transport"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".mat", false)
	p := io.ArgToFloat(1, 1e5)
	T := io.ArgToFloat(2, 300)
	verbose := io.ArgToBool(3, true)
	npts := io.ArgToInt(4, 6)

	// species and mass fractions
	var names []string
	var Y []float64
	for i := 5; i+1 < flag.NArg(); i += 2 {
		names = append(names, flag.Arg(i))
		Y = append(Y, io.Atof(flag.Arg(i+1)))
	}

	// message
	if verbose {
		io.PfWhite("\nThermodiff -- species transport with mass diffusion and thermodiffusion\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"materials file path (- for reference gases)", "fnamepath", fnamepath,
			"pressure [Pa]", "p", p,
			"temperature [K]", "T", T,
			"show messages", "verbose", verbose,
			"number of temperatures", "npts", npts,
		))
	}
	if T <= 0 || p <= 0 {
		chk.Panic("pressure and temperature must be positive. p = %v and T = %v are invalid", p, T)
	}
	if npts < 1 {
		chk.Panic("number of temperatures must be at least 1. npts = %d is invalid", npts)
	}

	// database
	var mdb *inp.MatDb
	var err error
	if fnkey == "" || fnkey == "-" {
		mdb, err = inp.GasesMat(ana.Gases)
	} else {
		mdb, err = inp.ReadMat(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	}
	if err != nil {
		chk.Panic("cannot read materials:\n%v", err)
	}
	if len(names) == 0 {
		for _, s := range mdb.Species {
			names = append(names, s.Name)
			Y = append(Y, 1.0/float64(len(mdb.Species)))
		}
	}
	if verbose {
		for i, name := range names {
			io.Pforan("%8s : Y = %g\n", name, Y[i])
		}
	}

	// mixture
	mix, err := mdb.Mixture(names, Y)
	if err != nil {
		chk.Panic("cannot compose mixture:\n%v", err)
	}
	printTable(mix, p, T, npts)
	io.Pf("\n{\n%v\n}\n", inp.SpeciesData{inp.Record(mix, io.Sf("%v", names))})
}

// printTable prints the properties of a model for temperatures in [T, 2T]
func printTable(mdl transport.Model, p, T float64, npts int) {
	Tvals := []float64{T}
	if npts > 1 {
		Tvals = utl.LinSpace(T, 2*T, npts)
	}
	io.Pf("\n%s  p = %g Pa  W = %g  Pr = %g  Sc = %g  KT = %g\n", mdl.TypeName(), p, mdl.W(), mdl.Pr(), mdl.Sc(), mdl.KT())
	io.Pf("%10s%14s%14s%14s%14s%14s%14s%14s\n", "T", "rho", "psi", "mu", "kappa", "alphah", "Dab", "DT")
	for _, t := range Tvals {
		io.Pf("%10.2f%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e%14.6e\n", t,
			mdl.Rho(p, t), mdl.Psi(p, t), mdl.Mu(p, t), mdl.Kappa(p, t), mdl.Alphah(p, t), mdl.Dab(p, t), mdl.DT(p, t))
	}
}
