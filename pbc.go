/*
 * pbc.go, part of gordf.
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

import "math"

//Minimum image convention for distance vectors.

// MinimumImage returns the image of the distance vector d closest to the
// origin, in the current box. Orthorhombic boxes take a shortcut.
func (S *System) MinimumImage(d [3]float64) [3]float64 {
	if S.ortho {
		return pbcOrthorhombic(d, S.h.At(0, 0), S.h.At(1, 1), S.h.At(2, 2))
	}
	return pbcTriclinic(d, S.h.RawMatrix().Data, S.hinv.RawMatrix().Data)
}

func pbcOrthorhombic(d [3]float64, a, b, c float64) [3]float64 {
	d[0] -= math.RoundToEven(d[0]/a) * a
	d[1] -= math.RoundToEven(d[1]/b) * b
	d[2] -= math.RoundToEven(d[2]/c) * c
	return d
}

//h and hinv are the row-major box matrix and its inverse.
//The fractional shift is rounded and taken back to cartesian.
func pbcTriclinic(d [3]float64, h, hinv []float64) [3]float64 {
	var s [3]float64
	for i := 0; i < 3; i++ {
		s[i] = math.RoundToEven(hinv[i*3]*d[0] + hinv[i*3+1]*d[1] + hinv[i*3+2]*d[2])
	}
	for i := 0; i < 3; i++ {
		d[i] -= h[i*3]*s[0] + h[i*3+1]*s[1] + h[i*3+2]*s[2]
	}
	return d
}
