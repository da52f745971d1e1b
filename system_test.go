package rdf

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gordf/xyz"
	"gonum.org/v1/gonum/mat"
)

//lattice returns a simple cubic lattice of n^3 atoms of symbol sym with
//spacing a, repeated in nframes frames, with the box in the comment line.
func lattice(Te *testing.T, sym string, n int, a float64, nframes int) *xyz.Traj {
	var buf bytes.Buffer
	symbols := make([]string, 0, n*n*n)
	c := mat.NewDense(n*n*n, 3, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				row := len(symbols)
				c.Set(row, 0, float64(i)*a)
				c.Set(row, 1, float64(j)*a)
				c.Set(row, 2, float64(k)*a)
				symbols = append(symbols, sym)
			}
		}
	}
	L := float64(n) * a
	for f := 0; f < nframes; f++ {
		if err := xyz.Write(&buf, symbols, c, L, L, L); err != nil {
			Te.Fatal(err)
		}
	}
	t, err := xyz.Read(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	return t
}

func TestBoxMatrix(Te *testing.T) {
	h, err := BoxMatrix([]float64{2, 3, 4, 90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.EqualApprox(h, mat.NewDense(3, 3, []float64{2, 0, 0, 0, 3, 0, 0, 0, 4}), 1e-12) {
		Te.Errorf("orthorhombic box should be diagonal:\n%v", mat.Formatted(h))
	}
	if v := mat.Det(h); math.Abs(v-24) > 1e-9 {
		Te.Errorf("volume should be 24, got %f", v)
	}
	h, err = BoxMatrix([]float64{10, 10, 10, 90, 90, 60})
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(h.At(0, 1)-5) > 1e-9 || math.Abs(h.At(1, 1)-10*math.Sqrt(3)/2) > 1e-9 {
		Te.Errorf("wrong triclinic box:\n%v", mat.Formatted(h))
	}
	if _, err = BoxMatrix([]float64{1, 1, 1, 10, 10, 170}); err == nil {
		Te.Error("impossible box should fail")
	}
}

func TestMinimumImage(Te *testing.T) {
	t := lattice(Te, "Ar", 2, 1, 1)
	S := NewSystem(t)
	if err := S.SetBoxes([][]float64{{10, 10, 10, 90, 90, 60}}); err != nil {
		Te.Fatal(err)
	}
	if err := S.UpdateBox(0); err != nil {
		Te.Fatal(err)
	}
	if S.ortho {
		Te.Fatal("box should be triclinic")
	}
	d := S.MinimumImage([3]float64{9, 0, 0})
	if math.Abs(d[0]+1) > 1e-9 || math.Abs(d[1]) > 1e-9 || math.Abs(d[2]) > 1e-9 {
		Te.Errorf("expected (-1,0,0), got %v", d)
	}
	d = S.MinimumImage([3]float64{0, 0, 6})
	if math.Abs(d[2]+4) > 1e-9 {
		Te.Errorf("expected z=-4, got %v", d)
	}
	if err := S.SetBoxes([][]float64{{4, 5, 6}}); err != nil {
		Te.Fatal(err)
	}
	if err := S.UpdateBox(0); err != nil {
		Te.Fatal(err)
	}
	d = S.MinimumImage([3]float64{3, -3, 2.5})
	if d != [3]float64{-1, 2, 2.5} {
		Te.Errorf("expected (-1,2,2.5), got %v", d)
	}
	if math.Abs(S.Volume()-120) > 1e-9 {
		Te.Errorf("expected volume 120, got %f", S.Volume())
	}
}

func TestBoxes(Te *testing.T) {
	t := lattice(Te, "Ar", 2, 1, 3)
	S := NewSystem(t)
	if err := S.UpdateBox(0); err == nil {
		Te.Error("UpdateBox without boxes should fail")
	}
	if err := S.BoxesFromTraj(t); err != nil {
		Te.Fatal(err)
	}
	if S.FixedVolume() {
		Te.Error("one box per frame was given")
	}
	for _, b := range [][][]float64{
		{{1, 1, 1}, {1, 1, 1}},
		{{1, 1, 1}, {1, 1, 1, 90, 90, 90}, {1, 1, 1}},
		{{1, 1}},
		nil,
	} {
		err := S.SetBoxes(b)
		var cerr *CError
		if !errors.As(err, &cerr) {
			Te.Errorf("expected a *CError for boxes %v, got %v", b, err)
		}
	}
	dir := Te.TempDir()
	name := filepath.Join(dir, "box.dat")
	os.WriteFile(name, []byte("# a b c\n\n2 2 2\n"), 0o644)
	if err := S.LoadBoxFile(name); err != nil {
		Te.Fatal(err)
	}
	if !S.FixedVolume() {
		Te.Error("a single box means fixed volume")
	}
	for f := 0; f < 3; f++ {
		if err := S.UpdateBox(f); err != nil {
			Te.Fatal(err)
		}
		if math.Abs(S.Volume()-8) > 1e-9 {
			Te.Errorf("frame %d: expected volume 8, got %f", f, S.Volume())
		}
	}
	os.WriteFile(name, []byte("2 2 x\n"), 0o644)
	if err := S.LoadBoxFile(name); err == nil {
		Te.Error("bad box file should fail")
	}
}
