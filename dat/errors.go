/*
 * errors.go, part of gordf.
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
	"errors"
	"fmt"
)

const (
	UnableToOpen   = "Unable to open file"
	ReadFailure    = "Error reading file"
	BadMarker      = "Malformed iRDF marker"
	NotNumeric     = "Non-numeric field"
	TooFewColumns  = "Row has fewer than 2 columns"
	WriteFailure   = "Error writing file"
	LengthMismatch = "Distance and value slices differ in length"
)

// ParseError is returned for any problem reading or writing a dat file.
// It fulfills the Error interface of the root package.
type ParseError struct {
	message  string
	filename string //empty if the data didn't come from a file
	line     int    //1-based, 0 if not applicable
	deco     []string
	err      error
}

func newParseError(msg string, line int, cause error, caller string) *ParseError {
	return &ParseError{message: msg, line: line, err: cause, deco: []string{caller}}
}

func (err *ParseError) Error() string {
	where := "dat"
	if err.filename != "" {
		where = "dat file " + err.filename
	}
	if err.line > 0 {
		where = fmt.Sprintf("%s, line %d", where, err.line)
	}
	if err.err != nil {
		return fmt.Sprintf("%s: %s: %v", where, err.message, err.err)
	}
	return fmt.Sprintf("%s: %s", where, err.message)
}

// Decorate adds the name of a caller to the error trail and returns the trail.
// An empty string just returns the trail.
func (err *ParseError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *ParseError) Unwrap() error { return err.err }

// FileName returns the file that failed to parse, or an empty string.
func (err *ParseError) FileName() string { return err.filename }

// Line returns the 1-based line number of the offending line, or 0.
func (err *ParseError) Line() int { return err.line }

// Message returns the error message without location or cause.
func (err *ParseError) Message() string { return err.message }

//errDecorate sets the file name of err, if it is a *ParseError, and adds caller to
//its trail. Other errors are wrapped in a new *ParseError.
func errDecorate(err error, filename, caller string) error {
	var perr *ParseError
	if !errors.As(err, &perr) {
		perr = newParseError(ReadFailure, 0, err, caller)
		perr.filename = filename
		return perr
	}
	if perr.filename == "" {
		perr.filename = filename
	}
	perr.Decorate(caller)
	return perr
}
