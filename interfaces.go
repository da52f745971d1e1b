/*
 * interfaces.go, part of gordf.
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
	"errors"
	"fmt"
)

//Errors

// Error is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
// The errors also implement Unwrap where there is an underlying cause, so errors.Is and errors.As
// work across packages.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// CError is the error type for the settings, system and calculator in this package.
type CError struct {
	msg  string
	deco []string
	err  error //underlying cause, can be nil
}

func (err *CError) Error() string {
	if err.err != nil {
		return fmt.Sprintf("%s: %v", err.msg, err.err)
	}
	return err.msg
}

// Decorate adds deco to the trail of callers, unless it is empty, and returns the trail.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *CError) Unwrap() error { return err.err }

func newError(msg string, cause error, caller string) *CError {
	return &CError{msg: msg, err: cause, deco: []string{caller}}
}

//errDecorate adds caller to the trail of err, if err implements Error, and
//wraps it in a CError otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
		return err
	}
	return newError("gordf", err, caller)
}

const (
	ErrNoPairs     = "No atom pairs found for the given atom types"
	ErrBadSettings = "Wrong format in settings file"
	ErrBadBox      = "Box can either take 3 parameters (a, b, c) for an orthorhombic box or 6 parameters (a, b, c, alpha, beta, gamma) for a triclinic box"
	ErrBoxFrames   = "Box entries don't match the trajectory frames"
	ErrVolume      = "Box volume should be positive"
)
