package chemplot

import (
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

//save renders p to a temporary file next to filename and renames it
//to filename once it is complete, so filename is never left half-written.
//The image format is taken from the extension of filename.
func save(p *plot.Plot, w, h vg.Length, filename string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if format == "" {
		format = "png"
	}
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return newRenderError(UnableToRender, filename, err, "save")
	}
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return newRenderError(UnableToCreate, filename, err, "save")
	}
	tmpname := tmp.Name()
	//only the temporary file is ever removed
	fail := func(msg string, err error) error {
		tmp.Close()
		os.Remove(tmpname)
		return newRenderError(msg, filename, err, "save")
	}
	if _, err = wt.WriteTo(tmp); err != nil {
		return fail(UnableToWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		return fail(UnableToWrite, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpname)
		return newRenderError(UnableToWrite, filename, err, "save")
	}
	if err = os.Rename(tmpname, filename); err != nil {
		os.Remove(tmpname)
		return newRenderError(UnableToWrite, filename, err, "save")
	}
	return nil
}
