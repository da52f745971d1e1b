/*
 * settings.go, part of gordf.
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
	"io"
	"os"
	"strconv"
	"strings"
)

// Settings holds the input of an RDF calculation.
//
// The settings file has three sections. Each value line has the form
// "key = value"; keys are only there for the human reader, values are
// taken in order:
//
//	[Files]
//	trajectory = traj.xyz
//	rdf_out = rdf.dat
//	irdf_out = irdf.dat
//	[System]
//	atom_A = O
//	atom_B = H
//	box = box.dat
//	[Settings]
//	r_min = 0.0
//	r_max = 10.0
//	bins = 200
//	increments = 6
//
// The box line is optional. Without it, the box is read from the comment
// line of each trajectory frame. irdf_out can be left empty ("irdf_out =")
// to skip the iRDF output.
type Settings struct {
	TrajFile string
	RDFOut   string
	IRDFOut  string
	BoxFile  string

	AtomA string
	AtomB string

	RMin       float64
	RMax       float64
	Bins       int
	Increments int
}

// ReadSettings reads the settings file filename.
func ReadSettings(filename string) (*Settings, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newError("Unable to open settings file", err, "ReadSettings")
	}
	defer f.Close()
	s, err := ParseSettings(f)
	if err != nil {
		return nil, errDecorate(err, "ReadSettings: "+filename)
	}
	return s, nil
}

//value returns what follows the "=" in a "key = value" line.
func value(line string) string {
	_, v, _ := strings.Cut(line, "=")
	return strings.TrimSpace(v)
}

//number of required value lines in each section
var sectionValues = map[string]int{"[Files]": 3, "[System]": 2, "[Settings]": 4}

// ParseSettings reads settings from r. All sections are required except
// for the box line.
func ParseSettings(r io.Reader) (*Settings, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, newError(ErrBadSettings, err, "ParseSettings")
	}
	S := new(Settings)
	seen := make(map[string]bool)
	for i := 0; i < len(lines); i++ {
		section := lines[i]
		n, ok := sectionValues[section]
		if !ok {
			continue
		}
		if i+n >= len(lines) {
			return nil, newError(fmt.Sprintf("%s: section %s is incomplete", ErrBadSettings, section), nil, "ParseSettings")
		}
		vals := make([]string, n)
		for j := range vals {
			line := lines[i+1+j]
			if !strings.Contains(line, "=") {
				return nil, newError(fmt.Sprintf("%s: expected 'key = value' in section %s, got %q", ErrBadSettings, section, line), nil, "ParseSettings")
			}
			vals[j] = value(line)
		}
		i += n
		seen[section] = true
		var err error
		switch section {
		case "[Files]":
			S.TrajFile, S.RDFOut, S.IRDFOut = vals[0], vals[1], vals[2]
		case "[System]":
			S.AtomA, S.AtomB = vals[0], vals[1]
			//optional box line
			if i+1 < len(lines) && strings.Contains(lines[i+1], "=") && !strings.HasPrefix(lines[i+1], "[") {
				S.BoxFile = value(lines[i+1])
				i++
			}
		case "[Settings]":
			err = S.numbers(vals)
		}
		if err != nil {
			return nil, errDecorate(err, "ParseSettings")
		}
	}
	for _, s := range []string{"[Files]", "[System]", "[Settings]"} {
		if !seen[s] {
			return nil, newError(fmt.Sprintf("%s: missing section %s", ErrBadSettings, s), nil, "ParseSettings")
		}
	}
	if err := S.Check(); err != nil {
		return nil, errDecorate(err, "ParseSettings")
	}
	return S, nil
}

func (S *Settings) numbers(vals []string) error {
	var err error
	if S.RMin, err = strconv.ParseFloat(vals[0], 64); err != nil {
		return newError(ErrBadSettings+": r_min", err, "numbers")
	}
	if S.RMax, err = strconv.ParseFloat(vals[1], 64); err != nil {
		return newError(ErrBadSettings+": r_max", err, "numbers")
	}
	if S.Bins, err = strconv.Atoi(vals[2]); err != nil {
		return newError(ErrBadSettings+": bins", err, "numbers")
	}
	if S.Increments, err = strconv.Atoi(vals[3]); err != nil {
		return newError(ErrBadSettings+": increments", err, "numbers")
	}
	return nil
}

// Check returns an error if the settings can't be used for a calculation.
func (S *Settings) Check() error {
	switch {
	case S.TrajFile == "":
		return newError(ErrBadSettings+": no trajectory file given", nil, "Check")
	case S.RDFOut == "":
		return newError(ErrBadSettings+": no rdf output file given", nil, "Check")
	case S.AtomA == "" || S.AtomB == "":
		return newError(ErrBadSettings+": both atom types are needed", nil, "Check")
	case S.RMax <= S.RMin || S.RMin < 0:
		return newError(fmt.Sprintf("%s: invalid range [%g, %g)", ErrBadSettings, S.RMin, S.RMax), nil, "Check")
	case S.Bins <= 0:
		return newError(ErrBadSettings+": bins must be positive", nil, "Check")
	case S.Increments < 0:
		return newError(ErrBadSettings+": increments can't be negative", nil, "Check")
	}
	return nil
}
