/*
 * rdf.go, part of gordf.
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
	"fmt"
	"math"
	"sort"

	"github.com/rmera/gordf/dat"
	"github.com/rmera/gordf/histo"
)

// Pair is a pair of atom indexes, the first of type A, the second of type B.
type Pair [2]int

// Pairs returns all the pairs of different atoms where the first atom has
// symbol a and the second symbol b, grouped by the first atom. It also
// returns the number of atoms of each type (nb equals na if a == b).
func Pairs(symbols []string, a, b string) (pairs []Pair, na, nb int) {
	for _, s := range symbols {
		if s == a {
			na++
		} else if s == b {
			nb++
		}
	}
	if a == b {
		nb = na
	}
	pairs = make([]Pair, 0, na*nb)
	for i, si := range symbols {
		if si != a {
			continue
		}
		for j, sj := range symbols {
			if sj == b && i != j {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs, na, nb
}

// Calculator computes the radial distribution function g(r) between two
// atom types, and the incremental RDFs: the k-th iRDF only counts, for each
// atom of type A, its k-th nearest atom of type B.
type Calculator struct {
	rmin, rmax float64
	dr         float64
	bins       int
	nframes    int
	na, nb     int
	header     dat.Header
	g          *histo.Data
	ig         *histo.Matrix //one row per increment
	done       bool
}

// Compute runs the whole calculation over every frame of sys.
func (C *Calculator) Compute(sys *System, s *Settings) error {
	if err := s.Check(); err != nil {
		return errDecorate(err, "Compute")
	}
	if sys.NFrames() == 0 {
		return newError("No frames in system", nil, "Compute")
	}
	pairs, na, nb := Pairs(sys.Symbols(), s.AtomA, s.AtomB)
	if len(pairs) == 0 {
		return newError(fmt.Sprintf("%s: %s, %s", ErrNoPairs, s.AtomA, s.AtomB), nil, "Compute")
	}
	*C = Calculator{
		rmin:    s.RMin,
		rmax:    s.RMax,
		bins:    s.Bins,
		dr:      (s.RMax - s.RMin) / float64(s.Bins),
		na:      na,
		nb:      nb,
		nframes: sys.NFrames(),
		header:  dat.Header{Bins: s.Bins, AtomA: s.AtomA, AtomB: s.AtomB},
	}
	dividers := histo.Dividers(s.RMin, s.RMax, s.Bins)
	C.g = histo.NewData(dividers, nil)
	if s.Increments > 0 {
		C.ig = histo.NewMatrix(s.Increments, 1, dividers)
	}
	for frame := 0; frame < sys.NFrames(); frame++ {
		if err := sys.UpdateBox(frame); err != nil {
			return errDecorate(err, fmt.Sprintf("Compute: frame %d", frame))
		}
		C.frame(sys, frame, pairs, s.Increments)
	}
	C.normalize()
	C.done = true
	return nil
}

//frame adds the distances of one frame to the histograms.
func (C *Calculator) frame(sys *System, frame int, pairs []Pair, increments int) {
	vol := sys.Volume()
	nearest := make([]float64, 0, increments+1)
	flush := func() {
		for k, d := range nearest {
			C.ig.AddWeighted(k, 0, vol, d)
		}
		nearest = nearest[:0]
	}
	for i, p := range pairs {
		if increments > 0 && i > 0 && pairs[i-1][0] != p[0] {
			flush()
		}
		d := sys.Distance(frame, p[0], p[1])
		if d >= C.rmin && d < C.rmax {
			C.g.AddWeighted(vol, d)
		}
		if increments > 0 && d > C.rmin && d < C.rmax {
			nearest = keepNearest(nearest, d, increments)
		}
	}
	if increments > 0 {
		flush()
	}
}

//keepNearest inserts d in the sorted slice near, keeping at most n elements.
func keepNearest(near []float64, d float64, n int) []float64 {
	i := sort.SearchFloat64s(near, d)
	if i >= n {
		return near
	}
	if len(near) < n {
		near = append(near, 0)
	}
	copy(near[i+1:], near[i:])
	near[i] = d
	return near
}

//normalize divides each bin by the number of pairs expected in its shell
//for an ideal gas. The first bin is set to 0.
func (C *Calculator) normalize() {
	factor := float64(C.na*C.nb) * 4 * math.Pi * C.dr * float64(C.nframes)
	norm := func(g []float64) {
		for i := range g {
			r := C.rmin + float64(i)*C.dr
			if i == 0 {
				g[i] = 0
				continue
			}
			g[i] /= factor * r * r
		}
	}
	norm(C.g.View())
	if C.ig == nil {
		return
	}
	rows, _ := C.ig.Dims()
	for k := 0; k < rows; k++ {
		norm(C.ig.View(k, 0).View())
	}
}

//distances returns the left edge of each bin.
func (C *Calculator) distances() []float64 {
	r := make([]float64, C.bins)
	for i := range r {
		r[i] = C.rmin + float64(i)*C.dr
	}
	return r
}

// RDF returns the distances and the g(r) values. Both are nil before Compute.
func (C *Calculator) RDF() (r, g []float64) {
	if !C.done {
		return nil, nil
	}
	return C.distances(), C.g.Copy()
}

// IRDF returns the distances and one g(r) per increment. gs is nil before
// Compute or if no increments were requested.
func (C *Calculator) IRDF() (r []float64, gs [][]float64) {
	if !C.done || C.ig == nil {
		return nil, nil
	}
	rows, _ := C.ig.Dims()
	gs = make([][]float64, rows)
	for k := range gs {
		gs[k] = C.ig.View(k, 0).Copy()
	}
	return C.distances(), gs
}

// WriteFiles writes the rdf file and, if there are increments and an
// irdf file name, the irdf file.
func (C *Calculator) WriteFiles(s *Settings) error {
	if !C.done {
		return newError("Nothing computed yet", nil, "WriteFiles")
	}
	r, g := C.RDF()
	if err := dat.WriteRDFFile(s.RDFOut, C.header, r, g); err != nil {
		return errDecorate(err, "WriteFiles")
	}
	if s.IRDFOut == "" || C.ig == nil {
		return nil
	}
	r, gs := C.IRDF()
	if err := dat.WriteIRDFFile(s.IRDFOut, C.header, r, gs); err != nil {
		return errDecorate(err, "WriteFiles")
	}
	return nil
}
