/*
 * doc.go, part of gordf.
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

/*
Package rdf computes radial distribution functions from molecular dynamics
trajectories.


	**Capabilities**


    Reads the settings of a calculation (trajectory, atom types, distance
	range, number of bins and of increments) from a small sectioned text file.

    Reads XYZ trajectories (see the xyz package), with the simulation box
	either in the comment line of each frame or in a separate box file.
	Orthorhombic and triclinic boxes, fixed or changing volume.

    Computes g(r) between atoms of type A and B under the minimum image
	convention, and the incremental RDFs (iRDFs): the k-th iRDF counts only
	the k-th nearest B atom of each A atom, so the first n iRDFs add up to
	the part of g(r) due to the first n neighbours.

    Writes the results in the rdf/irdf text layout read by the dat package,
	which the plot-rdf and plot-irdf commands turn into PNG plots (see the
	chemplot package).

A typical calculation:

	settings, err := rdf.ReadSettings("rdf.inp")
	...
	traj, err := xyz.Open(settings.TrajFile)
	...
	sys := rdf.NewSystem(traj)
	err = sys.BoxesFromTraj(traj) //or sys.LoadBoxFile(settings.BoxFile)
	...
	var calc rdf.Calculator
	err = calc.Compute(sys, settings)
	...
	err = calc.WriteFiles(settings)
*/
package rdf
