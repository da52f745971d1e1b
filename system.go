/*
 * system.go, part of gordf.
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

package rdf

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/gordf/xyz"
	"gonum.org/v1/gonum/mat"
)

// System contains the atoms, the coordinates for every frame and the
// simulation box. The box matrix, its inverse and the volume are those of
// the last frame passed to UpdateBox.
type System struct {
	symbols []string
	coords  []*mat.Dense
	boxes   [][]float64 //a b c alpha beta gamma. Only one element if the volume is fixed.

	h       *mat.Dense //box vectors as columns
	hinv    *mat.Dense
	volume  float64
	ortho   bool
	current int //frame of the current box, -1 if none
}

// NewSystem returns a System with the atoms and frames of traj, and no box.
func NewSystem(traj *xyz.Traj) *System {
	S := &System{symbols: traj.Symbols(), current: -1}
	S.coords = make([]*mat.Dense, traj.NFrames())
	for i := range S.coords {
		S.coords[i] = traj.Coords(i)
	}
	return S
}

// NAtoms returns the number of atoms per frame.
func (S *System) NAtoms() int { return len(S.symbols) }

// NFrames returns the number of frames.
func (S *System) NFrames() int { return len(S.coords) }

// Symbols returns the symbol of each atom.
func (S *System) Symbols() []string { return S.symbols }

// FixedVolume returns true if one box is used for all frames.
func (S *System) FixedVolume() bool { return len(S.boxes) == 1 }

// Volume returns the volume of the current box.
func (S *System) Volume() float64 { return S.volume }

// BoxMatrix returns the current box matrix, with the box vectors as columns.
func (S *System) BoxMatrix() *mat.Dense { return S.h }

// SetBoxes sets the box parameters. Each element holds 3 (a, b, c, all
// angles 90) or 6 (a, b, c, alpha, beta, gamma, angles in degrees) numbers,
// and all must have the same length. There must be either one element,
// used for all frames, or one per frame.
func (S *System) SetBoxes(boxes [][]float64) error {
	if len(boxes) == 0 {
		return newError("No valid box data found", nil, "SetBoxes")
	}
	if len(boxes) != 1 && len(boxes) != S.NFrames() {
		return newError(fmt.Sprintf("%s: %d boxes for %d frames", ErrBoxFrames, len(boxes), S.NFrames()), nil, "SetBoxes")
	}
	format := len(boxes[0])
	params := make([][]float64, len(boxes))
	for i, b := range boxes {
		if len(b) != 3 && len(b) != 6 {
			return newError(ErrBadBox, nil, "SetBoxes")
		}
		if len(b) != format {
			return newError(fmt.Sprintf("Box %d has %d parameters, but the first one has %d", i, len(b), format), nil, "SetBoxes")
		}
		p := []float64{b[0], b[1], b[2], 90, 90, 90}
		if len(b) == 6 {
			copy(p[3:], b[3:])
		}
		params[i] = p
	}
	S.boxes = params
	S.current = -1
	return nil
}

// BoxesFromTraj takes the boxes from the comment lines of traj. Every
// frame must have one.
func (S *System) BoxesFromTraj(traj *xyz.Traj) error {
	boxes := traj.Boxes()
	for i, b := range boxes {
		if b == nil {
			return newError(fmt.Sprintf("Frame %d of %s has no box in its comment line", i, traj.FileName()), nil, "BoxesFromTraj")
		}
	}
	return errDecorate(S.SetBoxes(boxes), "BoxesFromTraj")
}

// LoadBoxFile reads the boxes from filename, one box per line. Empty lines
// and lines starting with # are skipped.
func (S *System) LoadBoxFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return newError("Cannot open box file", err, "LoadBoxFile")
	}
	defer f.Close()
	var boxes [][]float64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		b := make([]float64, len(fields))
		for i, v := range fields {
			b[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return newError("Wrong number in box file "+filename, err, "LoadBoxFile")
			}
		}
		boxes = append(boxes, b)
	}
	if err := sc.Err(); err != nil {
		return newError("Error reading box file "+filename, err, "LoadBoxFile")
	}
	return errDecorate(S.SetBoxes(boxes), "LoadBoxFile")
}

// UpdateBox computes the box matrix, its inverse and the volume for frame.
// With a fixed volume, it only does work the first time.
func (S *System) UpdateBox(frame int) error {
	if len(S.boxes) == 0 {
		return newError("No box set", nil, "UpdateBox")
	}
	if frame < 0 || frame >= S.NFrames() {
		return newError(fmt.Sprintf("Frame %d out of range", frame), nil, "UpdateBox")
	}
	if S.current >= 0 && (S.FixedVolume() || S.current == frame) {
		S.current = frame
		return nil
	}
	b := S.boxes[0]
	if !S.FixedVolume() {
		b = S.boxes[frame]
	}
	h, err := BoxMatrix(b)
	if err != nil {
		return errDecorate(err, "UpdateBox")
	}
	vol := mat.Det(h)
	if vol <= 0 {
		return newError(fmt.Sprintf("%s, got %g for frame %d", ErrVolume, vol, frame), nil, "UpdateBox")
	}
	hinv := mat.NewDense(3, 3, nil)
	if err := hinv.Inverse(h); err != nil {
		return newError("Can't invert box matrix", err, "UpdateBox")
	}
	S.h, S.hinv, S.volume = h, hinv, vol
	S.ortho = b[3] == 90 && b[4] == 90 && b[5] == 90
	S.current = frame
	return nil
}

// BoxMatrix returns the matrix with the 3 box vectors as columns, built
// from the box lengths a, b, c and angles alpha, beta, gamma (degrees).
func BoxMatrix(p []float64) (*mat.Dense, error) {
	if len(p) != 6 {
		return nil, newError(ErrBadBox, nil, "BoxMatrix")
	}
	deg2rad := math.Pi / 180
	a, b, c := p[0], p[1], p[2]
	cosa, cosb := math.Cos(p[3]*deg2rad), math.Cos(p[4]*deg2rad)
	cosg, sing := math.Cos(p[5]*deg2rad), math.Sin(p[5]*deg2rad)
	if p[5] == 90 {
		cosg, sing = 0, 1
	}
	if p[3] == 90 {
		cosa = 0
	}
	if p[4] == 90 {
		cosb = 0
	}
	h := make([]float64, 9)
	h[0] = a
	h[1] = b * cosg
	h[2] = c * cosb
	h[4] = b * sing
	h[5] = (b*c*cosa - h[1]*h[2]) / h[4]
	h8sq := c*c - h[2]*h[2] - h[5]*h[5]
	if h8sq <= 0 {
		return nil, newError(ErrVolume, nil, "BoxMatrix")
	}
	h[8] = math.Sqrt(h8sq)
	return mat.NewDense(3, 3, h), nil
}

// Distance returns the minimum image distance between atoms i and j in
// frame. UpdateBox(frame) must have been called before.
func (S *System) Distance(frame, i, j int) float64 {
	c := S.coords[frame]
	d := [3]float64{
		c.At(i, 0) - c.At(j, 0),
		c.At(i, 1) - c.At(j, 1),
		c.At(i, 2) - c.At(j, 2),
	}
	d = S.MinimumImage(d)
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}
