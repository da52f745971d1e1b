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

package dat

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// RDFHeaderLines is the number of header lines at the top of an rdf file.
const RDFHeaderLines = 2

const maxLineLen = 1024 * 1024

//readLines reads all the lines in filename. The file is closed before returning.
func readLines(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		e := newParseError(UnableToOpen, 0, err, "readLines")
		e.filename = filename
		return nil, e
	}
	defer f.Close()
	lines, err := scanLines(f)
	if err != nil {
		return nil, errDecorate(err, filename, "readLines")
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, newParseError(ReadFailure, len(lines)+1, err, "scanLines")
	}
	return lines, nil
}

// ParseRDF reads a whitespace-separated table from r, skipping the first
// skip lines. Blank lines are ignored. Each row needs at least 2 numeric
// columns.
func ParseRDF(r io.Reader, skip int) (Table, error) {
	lines, err := scanLines(r)
	if err != nil {
		return nil, errDecorate(err, "", "ParseRDF")
	}
	t := make(Table, 0, len(lines))
	for i, line := range lines {
		if i < skip || strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseRow(line, strings.Fields, i+1)
		if err != nil {
			return nil, errDecorate(err, "", "ParseRDF")
		}
		t = append(t, row)
	}
	return t, nil
}

// ReadRDF reads the rdf file filename. The file is read completely and
// closed before parsing.
func ReadRDF(filename string) (Table, error) {
	lines, err := readLines(filename)
	if err != nil {
		return nil, errDecorate(err, filename, "ReadRDF")
	}
	t, err := ParseRDF(strings.NewReader(strings.Join(lines, "\n")), RDFHeaderLines)
	if err != nil {
		return nil, errDecorate(err, filename, "ReadRDF")
	}
	return t, nil
}
