/*
 * irdf.go, part of gordf.
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

// MarkerPrefix starts every line that opens a new iRDF block.
const MarkerPrefix = "iRDF:"

//Lines starting with any of these never belong to a block.
var skipPrefixes = []string{"distance:", "100"}

// IsMarker returns true if the (trimmed) line opens a new block.
func IsMarker(line string) bool {
	return strings.HasPrefix(line, MarkerPrefix)
}

// IsSkipLine returns true if the (trimmed) line is blank or starts with
// "distance:" or "100". Such lines are dropped wherever they appear.
func IsSkipLine(line string) bool {
	if line == "" {
		return true
	}
	for _, p := range skipPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

//markerID returns the integer after the first colon of a marker line.
func markerID(line string, lineno int) (int, error) {
	_, after, _ := strings.Cut(line, ":")
	id, err := strconv.Atoi(strings.TrimSpace(after))
	if err != nil {
		return 0, newParseError(BadMarker, lineno, err, "markerID")
	}
	return id, nil
}

//pending is one buffered content line and its position in the input.
type pending struct {
	text   string
	lineno int
}

// block is the raw content collected for one marker.
type block struct {
	id    int
	lines []pending
}

//table parses the block rows, which are tab-separated.
func (b block) table() (Table, error) {
	t := make(Table, 0, len(b.lines))
	for _, l := range b.lines {
		row, err := parseRow(l.text, splitTabs, l.lineno)
		if err != nil {
			return nil, err
		}
		t = append(t, row)
	}
	return t, nil
}

// parserState is the state of the block parser: either no block is active,
// or the block with index id is, and buf holds its content lines so far.
type parserState struct {
	active bool
	id     int
	buf    []pending
}

//finish returns the active block if it has any content, or nil.
func (s parserState) finish() *block {
	if !s.active || len(s.buf) == 0 {
		return nil
	}
	return &block{id: s.id, lines: s.buf}
}

// step feeds one line (numbered lineno, 1-based) to the parser. It returns the
// new state and, when the line closes a non-empty block, that block. The
// closed block is returned even if the marker that closes it is malformed,
// so it can be finalized before the error is reported. step does not modify s.
func step(s parserState, line string, lineno int) (parserState, *block, error) {
	line = strings.TrimSpace(line)
	switch {
	case IsMarker(line):
		done := s.finish()
		id, err := markerID(line, lineno)
		if err != nil {
			return s, done, err
		}
		return parserState{active: true, id: id}, done, nil
	case IsSkipLine(line):
		return s, nil, nil
	default:
		//Lines before the first marker are collected too, and discarded
		//when the first marker arrives.
		buf := make([]pending, len(s.buf), len(s.buf)+1)
		copy(buf, s.buf)
		s.buf = append(buf, pending{text: line, lineno: lineno})
		return s, nil, nil
	}
}

// ParseIRDF splits lines into iRDF blocks and parses each non-empty block
// into a table. The result is keyed by the integer in each marker line.
// If an index appears more than once, the last non-empty block with that
// index is the one kept. No markers means an empty result, not an error.
func ParseIRDF(lines []string) (*Blocks, error) {
	ret := NewBlocks()
	var s parserState
	store := func(b *block) error {
		if b == nil {
			return nil
		}
		t, err := b.table()
		if err != nil {
			return err
		}
		ret.Set(b.id, t)
		return nil
	}
	for i, line := range lines {
		var done *block
		var err error
		s, done, err = step(s, line, i+1)
		if serr := store(done); serr != nil {
			return nil, errDecorate(serr, "", "ParseIRDF")
		}
		if err != nil {
			return nil, errDecorate(err, "", "ParseIRDF")
		}
	}
	if err := store(s.finish()); err != nil {
		return nil, errDecorate(err, "", "ParseIRDF")
	}
	return ret, nil
}

// ReadIRDF reads the whole file filename, closes it, and parses it with ParseIRDF.
func ReadIRDF(filename string) (*Blocks, error) {
	lines, err := readLines(filename)
	if err != nil {
		return nil, errDecorate(err, filename, "ReadIRDF")
	}
	b, err := ParseIRDF(lines)
	if err != nil {
		return nil, errDecorate(err, filename, "ReadIRDF")
	}
	return b, nil
}
