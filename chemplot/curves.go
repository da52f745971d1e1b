/*
 * curves.go, part of gordf
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package chemplot draws RDF and iRDF curves, as read by the dat package, into image files.
package chemplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rmera/gordf/dat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Canvas size and line width for all the plots.
const (
	Width     = 8 * vg.Inch
	Height    = 6 * vg.Inch
	LineWidth = 2
)

//IRDFFileName returns the name of the image for the iRDFs of xlabel.
func IRDFFileName(xlabel string) string {
	return fmt.Sprintf("irdf-%s.png", xlabel)
}

//RDFFileName returns the name of the image for the RDF of xlabel.
func RDFFileName(xlabel string) string {
	return fmt.Sprintf("rdf-%s.png", xlabel)
}

func basicPlot(xlabel string) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = fmt.Sprintf("r(%s)", xlabel)
	p.Y.Label.Text = "g(r)"
	p.Legend.Top = true
	return p
}

//addCurve adds a line with the data in t, the color key of total, to p.
func addCurve(p *plot.Plot, t dat.Table, key, total int) (*plotter.Line, error) {
	l, err := plotter.NewLine(t)
	if err != nil {
		return nil, err
	}
	r, g, b := colors(key, total)
	l.LineStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
	l.LineStyle.Width = vg.Points(LineWidth)
	p.Add(l)
	return l, nil
}

//PlotBlocks plots one curve per block in b, in the order the blocks were
//found in the file, each labeled with its ID, and saves the plot as filename.
//x is the first column of each block, y the second.
func PlotBlocks(b *dat.Blocks, xlabel, filename string) error {
	p := basicPlot(xlabel)
	var err error
	var key int
	b.Each(func(id int, t dat.Table) bool {
		var l *plotter.Line
		l, err = addCurve(p, t, key, b.Len())
		if err != nil {
			err = newRenderError(fmt.Sprintf("%s %d", BadData, id), filename, err, "PlotBlocks")
			return false
		}
		p.Legend.Add(fmt.Sprintf("iRDF %d", id), l)
		key++
		return true
	})
	if err != nil {
		return err
	}
	return errDecorate(save(p, Width, Height, filename), "PlotBlocks")
}

//PlotTable plots the first two columns of t as one curve and saves
//the plot as filename.
func PlotTable(t dat.Table, xlabel, filename string) error {
	p := basicPlot(xlabel)
	if _, err := addCurve(p, t, 0, 1); err != nil {
		return newRenderError(BadData, filename, err, "PlotTable")
	}
	return errDecorate(save(p, Width, Height, filename), "PlotTable")
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	conversion := 255.0 * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

//colors spreads steps colors over the hue wheel, from red to purple,
//jumping over the yellows, which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	if steps < 1 {
		steps = 1
	}
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}
