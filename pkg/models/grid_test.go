package models

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid([]byte("z:\n  - [1, 2, 3]\n  - [4, 5, 6]\nx: [0, 1, 2]\ny: [10, 20]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Z) != 2 || g.Z[1][2] != 6 {
		t.Errorf("z = %v", g.Z)
	}
	if args := g.Args(); len(args) != 3 {
		t.Errorf("got %d args, want 3", len(args))
	}

	g, err = ParseGrid([]byte("z: [[1, 2], [3, 4]]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if args := g.Args(); len(args) != 1 {
		t.Errorf("got %d args, want 1", len(args))
	}
}

func TestParseGridErrors(t *testing.T) {
	for _, in := range []string{"", "x: [1]\n", "z: {a: 1}\n", "z: [\n"} {
		if _, err := ParseGrid([]byte(in)); err == nil {
			t.Errorf("ParseGrid(%q) succeeded", in)
		}
	}
}

func TestLoadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yml")
	if err := os.WriteFile(path, []byte("z: [[0, 1], [2, 3]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Open(path, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if g.Z[1][0] != 2 {
		t.Errorf("z = %v", g.Z)
	}

	if _, err := LoadGrid(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open("data.csv", 4, 4); err == nil {
		t.Error("expected an error for an unknown format")
	}
	if _, err := Open("mesh.glb", 1, 4); err == nil {
		t.Error("expected an error for a degenerate mesh grid")
	}
}

func TestDemo(t *testing.T) {
	g, err := Open(DemoName, 5, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Z) != 3 || len(g.Z[0]) != 5 {
		t.Fatalf("demo grid is %dx%d", len(g.Z[0]), len(g.Z))
	}
	if g.X[0] != -8 || g.X[4] != 8 || g.Y[1] != 0 {
		t.Errorf("coordinates %v %v", g.X, g.Y)
	}
	if g.Z[1][2] != 1 {
		t.Errorf("peak = %g, want 1", g.Z[1][2])
	}
	want := math.Sin(8) / 8
	if math.Abs(g.Z[1][0]-want) > 1e-12 {
		t.Errorf("edge = %g, want %g", g.Z[1][0], want)
	}

	one := Demo(1, 1)
	if one.X[0] != 0 || one.Z[0][0] != 1 {
		t.Errorf("single point demo %v", one)
	}
}
