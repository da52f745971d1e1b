package rdf

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const sampleSettings = `
[Files]
trajectory = traj.xyz
rdf_out = rdf.dat
irdf_out = irdf.dat

[System]
atom_A = O
atom_B = H
box = box.dat

[Settings]
r_min = 0.5
r_max = 10.0
bins = 200
increments = 6
`

func TestParseSettings(Te *testing.T) {
	S, err := ParseSettings(strings.NewReader(sampleSettings))
	if err != nil {
		Te.Fatal(err)
	}
	want := Settings{
		TrajFile:   "traj.xyz",
		RDFOut:     "rdf.dat",
		IRDFOut:    "irdf.dat",
		BoxFile:    "box.dat",
		AtomA:      "O",
		AtomB:      "H",
		RMin:       0.5,
		RMax:       10,
		Bins:       200,
		Increments: 6,
	}
	if *S != want {
		Te.Errorf("got %+v want %+v", *S, want)
	}
	//no box line, no irdf file
	in := strings.Replace(sampleSettings, "box = box.dat\n", "", 1)
	in = strings.Replace(in, "irdf_out = irdf.dat", "irdf_out =", 1)
	S, err = ParseSettings(strings.NewReader(in))
	if err != nil {
		Te.Fatal(err)
	}
	if S.BoxFile != "" || S.IRDFOut != "" || S.Increments != 6 {
		Te.Errorf("unexpected settings %+v", *S)
	}
}

func TestBadSettings(Te *testing.T) {
	cases := map[string]string{
		"missing section": strings.Replace(sampleSettings, "[System]", "[Sistem]", 1),
		"incomplete":      sampleSettings[:strings.Index(sampleSettings, "bins")],
		"not a number":    strings.Replace(sampleSettings, "bins = 200", "bins = many", 1),
		"no equal sign":   strings.Replace(sampleSettings, "atom_A = O", "atom_A O", 1),
		"bad range":       strings.Replace(sampleSettings, "r_max = 10.0", "r_max = 0.2", 1),
		"no bins":         strings.Replace(sampleSettings, "bins = 200", "bins = 0", 1),
		"no rdf file":     strings.Replace(sampleSettings, "rdf_out = rdf.dat", "rdf_out =", 1),
	}
	for name, in := range cases {
		_, err := ParseSettings(strings.NewReader(in))
		var cerr *CError
		if !errors.As(err, &cerr) {
			Te.Errorf("%s: expected a *CError, got %v", name, err)
		}
	}
	_, err := ParseSettings(strings.NewReader(cases["not a number"]))
	var nerr *strconv.NumError
	if !errors.As(err, &nerr) {
		Te.Errorf("the parsing error should be kept as the cause: %v", err)
	}
}

func TestReadSettings(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "rdf.inp")
	if err := os.WriteFile(name, []byte(sampleSettings), 0o644); err != nil {
		Te.Fatal(err)
	}
	S, err := ReadSettings(name)
	if err != nil {
		Te.Fatal(err)
	}
	if S.AtomA != "O" || S.Bins != 200 {
		Te.Errorf("unexpected settings %+v", *S)
	}
	_, err = ReadSettings(name + ".missing")
	var perr *os.PathError
	if !errors.As(err, &perr) {
		Te.Errorf("expected an *os.PathError inside, got %v", err)
	}
}
