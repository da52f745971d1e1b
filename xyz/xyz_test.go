package xyz

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

func twoFrames(Te *testing.T) []byte {
	var buf bytes.Buffer
	sym := []string{"O", "H", "H"}
	c := mat.NewDense(3, 3, []float64{0, 0, 0, 0.96, 0, 0, -0.24, 0.93, 0})
	if err := Write(&buf, sym, c, 10, 10, 10); err != nil {
		Te.Fatal(err)
	}
	c.Set(0, 2, 1.5)
	if err := Write(&buf, sym, c, 10, 11, 12, 90, 90, 120); err != nil {
		Te.Fatal(err)
	}
	return buf.Bytes()
}

func checkTwoFrames(Te *testing.T, T *Traj) {
	if T.Len() != 3 || T.NFrames() != 2 {
		Te.Fatalf("expected 3 atoms and 2 frames, got %d %d", T.Len(), T.NFrames())
	}
	if T.Symbols()[0] != "O" || T.Coords(1).At(0, 2) != 1.5 || T.Coords(0).At(2, 1) != 0.93 {
		Te.Errorf("wrong data read")
	}
	b := T.Boxes()
	if len(b[0]) != 3 || len(b[1]) != 6 || b[1][5] != 120 {
		Te.Errorf("wrong boxes %v", b)
	}
}

func TestReadWrite(Te *testing.T) {
	fmt.Println("XYZ read test!")
	T, err := Read(bytes.NewReader(twoFrames(Te)))
	if err != nil {
		Te.Fatal(err)
	}
	checkTwoFrames(Te, T)
}

func TestCompressed(Te *testing.T) {
	dir := Te.TempDir()
	raw := twoFrames(Te)
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	gw.Write(raw)
	gw.Close()
	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	if err != nil {
		Te.Fatal(err)
	}
	zw.Write(raw)
	zw.Close()
	files := map[string][]byte{"t.xyz": raw, "t.xyz.gz": gz.Bytes(), "t.xyz.zst": zs.Bytes()}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			Te.Fatal(err)
		}
		T, err := Open(path)
		if err != nil {
			Te.Fatal(err)
		}
		if T.FileName() != path {
			Te.Errorf("wrong file name %s", T.FileName())
		}
		checkTwoFrames(Te, T)
	}
}

func TestBadFiles(Te *testing.T) {
	cases := []string{
		"",
		"3\n\nO 0 0 0\nH 1 0 0\n",
		"2\n\nO 0 0 0\nH 1 0\n",
		"2\n\nO 0 0 0\nH 1 0 x\n",
		"2\n\nO 0 0 0\nH 1 0 0\n2\n\nO 0 0 0\nO 1 0 0\n",
		"2\n\nO 0 0 0\nH 1 0 0\n3\n\nO 0 0 0\nH 1 0 0\nH 1 1 1\n",
		"two\n\nO 0 0 0\nH 1 0 0\n",
	}
	for _, c := range cases {
		_, err := Read(strings.NewReader(c))
		if err == nil {
			Te.Errorf("expected an error for %q", c)
			continue
		}
		if e, ok := err.(Error); !ok || !e.Critical() || e.Format() != "xyz" {
			Te.Errorf("unexpected error type %T for %q", err, c)
		}
	}
	_, err := Open("../test/nothere.xyz")
	if e, ok := err.(Error); !ok || e.FileName() != "../test/nothere.xyz" {
		Te.Errorf("expected an Error naming the file, got %v", err)
	}
}
