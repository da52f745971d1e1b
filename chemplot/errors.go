package chemplot

import (
	"errors"
	"fmt"
)

//RenderError is returned when a plot can't be drawn or saved.
type RenderError struct {
	message  string
	filename string //the image that was being written
	deco     []string
	err      error
}

func (err *RenderError) Error() string {
	if err.err != nil {
		return fmt.Sprintf("plot %s: %s: %v", err.filename, err.message, err.err)
	}
	return fmt.Sprintf("plot %s: %s", err.filename, err.message)
}

//Decorate adds dec to the trail of the error, unless dec is empty, and returns the trail.
func (err *RenderError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *RenderError) Unwrap() error { return err.err }

//FileName returns the name of the image file.
func (err *RenderError) FileName() string { return err.filename }

func newRenderError(msg, filename string, cause error, caller string) *RenderError {
	return &RenderError{message: msg, filename: filename, err: cause, deco: []string{caller}}
}

//errDecorate adds caller to the trail of err if it is a *RenderError.
//nil stays nil.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e *RenderError
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

const (
	BadData        = "Can't plot data"
	UnableToRender = "Unable to render plot"
	UnableToCreate = "Unable to create image file"
	UnableToWrite  = "Unable to write image file"
)
