/*
 * table.go, part of gordf.
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
	"strconv"
	"strings"
)

// Table is a set of numeric rows. Column 0 is the distance (x), column 1 the
// RDF value (y). Every row parsed by this package has at least 2 columns.
type Table [][]float64

// Len returns the number of rows.
func (T Table) Len() int { return len(T) }

// Col returns a copy of the i-th column. Rows that are too short are skipped.
func (T Table) Col(i int) []float64 {
	ret := make([]float64, 0, len(T))
	for _, row := range T {
		if i < len(row) {
			ret = append(ret, row[i])
		}
	}
	return ret
}

// X returns the first column.
func (T Table) X() []float64 { return T.Col(0) }

// Y returns the second column.
func (T Table) Y() []float64 { return T.Col(1) }

// XY returns the point i as an (x, y) pair. Implements the
// gonum plotter.XYer interface together with Len.
func (T Table) XY(i int) (float64, float64) { return T[i][0], T[i][1] }

//parseRow splits line with split and parses every field as a float64.
//lineno is only used for errors.
func parseRow(line string, split func(string) []string, lineno int) ([]float64, error) {
	fields := split(line)
	if len(fields) < 2 {
		return nil, newParseError(TooFewColumns, lineno, nil, "parseRow")
	}
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, newParseError(NotNumeric, lineno, err, "parseRow")
		}
		row[i] = v
	}
	return row, nil
}

func splitTabs(line string) []string { return strings.Split(line, "\t") }

// Blocks maps iRDF indexes to their tables, and remembers the order in which
// each index was first stored.
type Blocks struct {
	ids    []int
	tables map[int]Table
}

// NewBlocks returns an empty set of blocks.
func NewBlocks() *Blocks {
	return &Blocks{tables: make(map[int]Table)}
}

// Set stores t under id. If id is already present its table is
// replaced and it keeps its original position.
func (B *Blocks) Set(id int, t Table) {
	if _, ok := B.tables[id]; !ok {
		B.ids = append(B.ids, id)
	}
	B.tables[id] = t
}

// Get returns the table stored under id, and whether it was present.
func (B *Blocks) Get(id int) (Table, bool) {
	t, ok := B.tables[id]
	return t, ok
}

// IDs returns a copy of the stored indexes in order.
func (B *Blocks) IDs() []int {
	ret := make([]int, len(B.ids))
	copy(ret, B.ids)
	return ret
}

// Len returns the number of stored blocks.
func (B *Blocks) Len() int { return len(B.ids) }

// Each calls f for each block, in order, until f returns false.
func (B *Blocks) Each(f func(id int, t Table) bool) {
	for _, id := range B.ids {
		if !f(id, B.tables[id]) {
			return
		}
	}
}
