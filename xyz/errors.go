package xyz

import "fmt"

//errDecorate is a helper function that asserts that the error is
//an Error, sets the file name if missing and decorates the error with the caller's name before returning it.
func errDecorate(err error, filename, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return Error{err.Error(), filename, []string{caller}, true}
	}
	if err2.filename == "" {
		err2.filename = filename
	}
	err2.deco = append(err2.deco, caller)
	return err2
}

//Error is the general structure for XYZ trajectory errors.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate returns the trail of callers. Since Error is not a pointer
//it can't add to the trail in place; errDecorate does that.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		return append(err.deco[:len(err.deco):len(err.deco)], deco)
	}
	return err.deco
}

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "xyz") associated to the error
func (err Error) Format() string { return "xyz" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	ReadError    = "Error reading frame"
	UnableToOpen = "Unable to open file"
	WrongFormat  = "Wrong format in the XYZ file or frame"
)
