/*
 * write.go, part of gordf.
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

package dat

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// ColumnHeader is the second header line of every block.
const ColumnHeader = "distance:\tRDF value:"

// Header is the first line of rdf and irdf files.
type Header struct {
	Bins  int
	AtomA string
	AtomB string
}

func (H Header) String() string {
	return fmt.Sprintf("%d  %s  %s", H.Bins, H.AtomA, H.AtomB)
}

func writeRows(w io.Writer, r, g []float64) error {
	if len(r) != len(g) {
		return newParseError(LengthMismatch, 0, nil, "writeRows")
	}
	for i, v := range r {
		if _, err := fmt.Fprintf(w, "%.5f\t%.8f\n", v, g[i]); err != nil {
			return newParseError(WriteFailure, 0, err, "writeRows")
		}
	}
	return nil
}

// WriteRDF writes the distances r and the values g in the rdf layout.
func WriteRDF(w io.Writer, h Header, r, g []float64) error {
	if _, err := fmt.Fprintf(w, "%s\n%s\n", h, ColumnHeader); err != nil {
		return newParseError(WriteFailure, 0, err, "WriteRDF")
	}
	if err := writeRows(w, r, g); err != nil {
		return errDecorate(err, "", "WriteRDF")
	}
	return nil
}

// WriteIRDF writes one block per element of gs, all sharing the distances r.
// Blocks are numbered from 0.
func WriteIRDF(w io.Writer, h Header, r []float64, gs [][]float64) error {
	if _, err := fmt.Fprintf(w, "%s\n", h); err != nil {
		return newParseError(WriteFailure, 0, err, "WriteIRDF")
	}
	for i, g := range gs {
		if _, err := fmt.Fprintf(w, "%s %d\n%s\n", MarkerPrefix, i, ColumnHeader); err != nil {
			return newParseError(WriteFailure, 0, err, "WriteIRDF")
		}
		if err := writeRows(w, r, g); err != nil {
			return errDecorate(err, "", "WriteIRDF")
		}
	}
	return nil
}

//writeFile creates filename and hands a buffered writer to f.
func writeFile(filename string, f func(w io.Writer) error) error {
	out, err := os.Create(filename)
	if err != nil {
		e := newParseError(UnableToOpen, 0, err, "writeFile")
		e.filename = filename
		return e
	}
	bw := bufio.NewWriter(out)
	if err = f(bw); err != nil {
		out.Close()
		return errDecorate(err, filename, "writeFile")
	}
	if err = bw.Flush(); err != nil {
		out.Close()
		return errDecorate(newParseError(WriteFailure, 0, err, "writeFile"), filename, "")
	}
	if err = out.Close(); err != nil {
		return errDecorate(newParseError(WriteFailure, 0, err, "writeFile"), filename, "")
	}
	return nil
}

// WriteRDFFile writes an rdf file named filename. Any existing file is overwritten.
func WriteRDFFile(filename string, h Header, r, g []float64) error {
	return writeFile(filename, func(w io.Writer) error { return WriteRDF(w, h, r, g) })
}

// WriteIRDFFile writes an irdf file named filename. Any existing file is overwritten.
func WriteIRDFFile(filename string, h Header, r []float64, gs [][]float64) error {
	return writeFile(filename, func(w io.Writer) error { return WriteIRDF(w, h, r, gs) })
}
