/*
 * xyz.go, part of gordf.
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

//Package xyz reads multi-frame XYZ trajectories. Each frame has a line with
//the number of atoms, a comment line and one "symbol x y z" line per atom.
//If the comment line contains exactly 3 (a b c) or 6 (a b c alpha beta gamma)
//numbers, they are taken as the simulation box for that frame.
//
//Files ending in .gz are read through gzip, files ending in .zst through
//z-standard.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Traj is a fully read XYZ trajectory.
type Traj struct {
	filename string
	symbols  []string
	frames   []*mat.Dense //natoms x 3 each
	boxes    [][]float64  //nil elements for frames without box
}

//Len returns the number of atoms per frame.
func (T *Traj) Len() int { return len(T.symbols) }

//NFrames returns the number of frames read.
func (T *Traj) NFrames() int { return len(T.frames) }

//Symbols returns the atom symbols, which are the same for every frame.
func (T *Traj) Symbols() []string { return T.symbols }

//Coords returns the coordinates of frame i, one atom per row.
func (T *Traj) Coords(i int) *mat.Dense { return T.frames[i] }

//Boxes returns the box parameters read from each frame's comment line.
//Frames without a box have a nil element. The parameters are 3 or 6
//numbers, as found in the file.
func (T *Traj) Boxes() [][]float64 { return T.boxes }

//FileName returns the name of the file read.
func (T *Traj) FileName() string { return T.filename }

//decompressor returns a reader that decompresses r according to
//the extension of name.
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

//Open reads the whole trajectory in the file name.
func Open(name string) (*Traj, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	defer f.Close()
	r, err := decompressor(name, f)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Open"}, true}
	}
	defer r.Close()
	T, err := Read(r)
	if err != nil {
		return nil, errDecorate(err, name, "Open")
	}
	T.filename = name
	return T, nil
}

//Read reads a whole XYZ trajectory from r.
func Read(r io.Reader) (*Traj, error) {
	T := new(Traj)
	s := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, bool) {
		ok := s.Scan()
		if ok {
			lineno++
		}
		return s.Text(), ok
	}
	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue //trailing empty lines
		}
		natoms, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || natoms <= 0 {
			return nil, Error{fmt.Sprintf("%s: line %d should contain the number of atoms", WrongFormat, lineno), "", []string{"Read"}, true}
		}
		if T.frames != nil && natoms != T.Len() {
			return nil, Error{fmt.Sprintf("%s: frame %d has %d atoms, expected %d", WrongFormat, len(T.frames), natoms, T.Len()), "", []string{"Read"}, true}
		}
		comment, ok := next()
		if !ok {
			return nil, Error{ReadError + ": truncated frame", "", []string{"Read"}, true}
		}
		coords := mat.NewDense(natoms, 3, nil)
		symbols := make([]string, natoms)
		for i := 0; i < natoms; i++ {
			line, ok = next()
			if !ok {
				return nil, Error{ReadError + ": truncated frame", "", []string{"Read"}, true}
			}
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, Error{fmt.Sprintf("%s: line %d ill formed", WrongFormat, lineno), "", []string{"Read"}, true}
			}
			symbols[i] = fields[0]
			for j := 0; j < 3; j++ {
				v, err := strconv.ParseFloat(fields[j+1], 64)
				if err != nil {
					return nil, Error{fmt.Sprintf("%s: line %d: %v", WrongFormat, lineno, err), "", []string{"Read"}, true}
				}
				coords.Set(i, j, v)
			}
		}
		if T.frames == nil {
			T.symbols = symbols
		} else if !sameSymbols(T.symbols, symbols) {
			return nil, Error{fmt.Sprintf("%s: atoms in frame %d differ from the first frame", WrongFormat, len(T.frames)), "", []string{"Read"}, true}
		}
		T.frames = append(T.frames, coords)
		T.boxes = append(T.boxes, parseBox(comment))
	}
	if err := s.Err(); err != nil {
		return nil, Error{ReadError + ": " + err.Error(), "", []string{"Read"}, true}
	}
	if len(T.frames) == 0 {
		return nil, Error{"No frames found", "", []string{"Read"}, true}
	}
	return T, nil
}

//parseBox returns the 3 or 6 numbers in line, or nil if line is anything else.
func parseBox(line string) []float64 {
	fields := strings.Fields(line)
	if len(fields) != 3 && len(fields) != 6 {
		return nil
	}
	box := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		box[i] = v
	}
	return box
}

func sameSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}

//Write writes coords as a frame of an XYZ file, with the box parameters, if
//given, in the comment line.
func Write(w io.Writer, symbols []string, coords *mat.Dense, box ...float64) error {
	r, _ := coords.Dims()
	if r != len(symbols) {
		return Error{fmt.Sprintf("%d symbols for %d coordinates", len(symbols), r), "", []string{"Write"}, true}
	}
	comment := make([]string, len(box))
	for i, v := range box {
		comment[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if _, err := fmt.Fprintf(w, "%-4d\n%s\n", r, strings.Join(comment, " ")); err != nil {
		return Error{err.Error(), "", []string{"Write"}, true}
	}
	for i, s := range symbols {
		_, err := fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", s, coords.At(i, 0), coords.At(i, 1), coords.At(i, 2))
		if err != nil {
			return Error{err.Error(), "", []string{"Write"}, true}
		}
	}
	return nil
}
