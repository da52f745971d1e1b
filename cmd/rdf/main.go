/*
 * main.go, part of gordf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//rdf computes the RDF and the iRDFs described by a settings file, and
//writes them in the format read by plot-rdf and plot-irdf.
package main

import (
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	rdf "github.com/rmera/gordf"
	"github.com/rmera/gordf/xyz"
)

//CLI defines the command line. The flags override the output
//files given in the settings file.
type CLI struct {
	Settings string `arg:"" help:"Settings file" type:"path"`
	RDFOut   string `name:"rdf-out" help:"Write the RDF to this file" type:"path"`
	IRDFOut  string `name:"irdf-out" help:"Write the iRDFs to this file" type:"path"`
	Quiet    bool   `name:"quiet" short:"q" help:"Don't print progress messages"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rdf"),
		kong.Description("Radial distribution functions and incremental RDFs from XYZ trajectories"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}

//Run performs the whole calculation.
func (c *CLI) Run() error {
	logger := log.New(os.Stderr, "rdf: ", 0)
	if c.Quiet {
		logger.SetOutput(io.Discard)
	}
	s, err := rdf.ReadSettings(c.Settings)
	if err != nil {
		return err
	}
	if c.RDFOut != "" {
		s.RDFOut = c.RDFOut
	}
	if c.IRDFOut != "" {
		s.IRDFOut = c.IRDFOut
	}
	traj, err := xyz.Open(s.TrajFile)
	if err != nil {
		return err
	}
	sys := rdf.NewSystem(traj)
	if s.BoxFile != "" {
		err = sys.LoadBoxFile(s.BoxFile)
	} else {
		err = sys.BoxesFromTraj(traj)
	}
	if err != nil {
		return err
	}
	logger.Printf("%d atoms, %d frames read from %s", sys.NAtoms(), sys.NFrames(), s.TrajFile)
	if sys.FixedVolume() {
		logger.Printf("Using the same box for all frames")
	}
	var calc rdf.Calculator
	if err := calc.Compute(sys, s); err != nil {
		return err
	}
	if err := calc.WriteFiles(s); err != nil {
		return err
	}
	logger.Printf("RDF %s-%s written to %s", s.AtomA, s.AtomB, s.RDFOut)
	if s.IRDFOut != "" && s.Increments > 0 {
		logger.Printf("%d iRDFs written to %s", s.Increments, s.IRDFOut)
	}
	return nil
}
