package models

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Grid is surface data: Z rows along Y, each row along X, with optional
// coordinates.
type Grid struct {
	Z [][]float64 `yaml:"z"`
	X []float64   `yaml:"x,omitempty"`
	Y []float64   `yaml:"y,omitempty"`
}

// Args returns the grid as SURFACE positional arguments: (z) when no
// coordinates are given, otherwise (z, x, y).
func (g *Grid) Args() []any {
	if g.X == nil && g.Y == nil {
		return []any{g.Z}
	}
	return []any{g.Z, g.X, g.Y}
}

// ParseGrid decodes a YAML grid document.
func ParseGrid(data []byte) (*Grid, error) {
	var g Grid
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse grid: %w", err)
	}
	if len(g.Z) == 0 {
		return nil, fmt.Errorf("parse grid: no z values")
	}
	return &g, nil
}

// LoadGrid reads a YAML grid file.
func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	g, err := ParseGrid(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// DemoName selects the demo surface in Open.
const DemoName = "demo"

// Open loads surface data by name: "demo", a .yaml/.yml grid, or a
// .glb/.gltf mesh resampled to nx by ny cells.
func Open(name string, nx, ny int) (*Grid, error) {
	if name == DemoName {
		return Demo(nx, ny), nil
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return LoadGrid(name)
	case ".glb", ".gltf":
		if nx < 2 || ny < 2 {
			return nil, fmt.Errorf("mesh grid must be at least 2x2, got %dx%d", nx, ny)
		}
		mesh, err := LoadGLB(name)
		if err != nil {
			return nil, err
		}
		return mesh.Heightfield(nx, ny), nil
	default:
		return nil, fmt.Errorf("%s: unknown data format", name)
	}
}

// Demo returns a damped ripple sampled on nx by ny points over
// [-8,8] x [-8,8].
func Demo(nx, ny int) *Grid {
	g := &Grid{
		Z: make([][]float64, ny),
		X: ramp(nx, -8, 8),
		Y: ramp(ny, -8, 8),
	}
	for j, y := range g.Y {
		g.Z[j] = make([]float64, nx)
		for i, x := range g.X {
			r := math.Hypot(x, y)
			if r == 0 {
				g.Z[j][i] = 1
				continue
			}
			g.Z[j][i] = math.Sin(r) / r
		}
	}
	return g
}

func ramp(n int, lo, hi float64) []float64 {
	v := make([]float64, n)
	if n == 1 {
		v[0] = (lo + hi) / 2
		return v
	}
	for i := range v {
		v[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return v
}
