/*
 * plot_test.go
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
 *
 */

package chemplot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gordf/dat"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

//onlyFile checks that dir contains exactly the PNG file name.
func onlyFile(Te *testing.T, dir, name string) {
	Te.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != name {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		Te.Fatalf("expected only %s in %s, got %v", name, dir, names)
	}
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		Te.Fatal(err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		Te.Errorf("%s is not a PNG file", name)
	}
}

func TestPlotBlocks(Te *testing.T) {
	b, err := dat.ReadIRDF("../test/irdf.dat")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	name := IRDFFileName("O-H")
	if name != "irdf-O-H.png" {
		Te.Errorf("unexpected file name %s", name)
	}
	if err := PlotBlocks(b, "O-H", filepath.Join(dir, name)); err != nil {
		Te.Fatal(err)
	}
	onlyFile(Te, dir, name)
}

func TestPlotTable(Te *testing.T) {
	t, err := dat.ReadRDF("../test/rdf.dat")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	name := RDFFileName("O-H")
	if err := PlotTable(t, "O-H", filepath.Join(dir, name)); err != nil {
		Te.Fatal(err)
	}
	onlyFile(Te, dir, name)
	//a second plot replaces the first one
	if err := PlotTable(t[:5], "O-H", filepath.Join(dir, name)); err != nil {
		Te.Fatal(err)
	}
	onlyFile(Te, dir, name)
}

func TestRenderErrors(Te *testing.T) {
	t := dat.Table{{0, 1}, {1, 2}}
	dir := Te.TempDir()
	name := filepath.Join(dir, "missing", "rdf-x.png")
	err := PlotTable(t, "x", name)
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		Te.Fatalf("expected a *RenderError, got %v", err)
	}
	if rerr.FileName() != name {
		Te.Errorf("wrong file name in error: %s", rerr.FileName())
	}
	if len(rerr.Decorate("")) != 2 {
		Te.Errorf("unexpected trail %v", rerr.Decorate(""))
	}
	if err := PlotTable(t, "x", filepath.Join(dir, "rdf-x.nope")); err == nil {
		Te.Error("unknown image format should fail")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		Te.Errorf("nothing should be written on failure, found %d files", len(entries))
	}
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 8; i++ {
		r, g, b := colors(i, 8)
		seen[[3]uint8{r, g, b}] = true
	}
	if len(seen) != 8 {
		Te.Errorf("expected 8 different colors, got %d", len(seen))
	}
	if r, g, b := iHVS2RGB(0, 1, 1); r != 255 || g != 0 || b != 0 {
		Te.Errorf("hue 0 should be red, got %d %d %d", r, g, b)
	}
}
