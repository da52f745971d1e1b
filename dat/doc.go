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
Package dat reads and writes the text files produced by the RDF calculator.

Two layouts are supported.

An rdf file has two header lines followed by whitespace-separated rows:

	200  O  H
	distance:	RDF value:
	0.00000	0.00000000
	0.05000	0.00000000
	...

An irdf file has one header line and then one block per increment. Each
block starts with a marker line "iRDF: <n>", has its own "distance:" line,
and tab-separated rows:

	200  O  H
	iRDF: 0
	distance:	RDF value:
	0.00000	0.00000000
	...
	iRDF: 1
	...

Lines starting with "distance:" or "100" are never part of a block, whatever
their position in the file (see IsSkipLine). Note that this also drops data
rows whose first field starts with "100", such as a distance of 100.5.
*/
package dat
