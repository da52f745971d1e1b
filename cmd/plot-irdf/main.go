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

//plot-irdf plots all the iRDFs in an irdf file into irdf-<xlabel>.png,
//in the current directory.
//
//	plot-irdf <irdf.dat> <xlabel>
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rmera/gordf/chemplot"
	"github.com/rmera/gordf/dat"
)

const usage = "Usage: plot-irdf <irdf.dat> <xlabel>"

var errUsage = errors.New(usage)

func main() {
	err := run(os.Args[1:], ".")
	if errors.Is(err, errUsage) {
		fmt.Println(usage)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

//run reads the irdf file in args[0] and writes the plot to outdir.
//Nothing is read or written unless exactly 2 arguments are given.
func run(args []string, outdir string) error {
	if len(args) != 2 {
		return errUsage
	}
	blocks, err := dat.ReadIRDF(args[0])
	if err != nil {
		return err
	}
	return chemplot.PlotBlocks(blocks, args[1], filepath.Join(outdir, chemplot.IRDFFileName(args[1])))
}

