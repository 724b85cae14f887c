package models

import (
	"math"
	"testing"

	"github.com/taigrr/surfplot/pkg/math3d"
)

func TestCalculateBounds(t *testing.T) {
	m := NewMesh("test")
	m.CalculateBounds()
	if m.BoundsMin != (math3d.Vec3{}) {
		t.Error("empty mesh should keep zero bounds")
	}

	m.Positions = []math3d.Vec3{math3d.V3(1, -2, 3), math3d.V3(-1, 4, 0)}
	m.CalculateBounds()
	if m.BoundsMin != math3d.V3(-1, -2, 0) || m.BoundsMax != math3d.V3(1, 4, 3) {
		t.Errorf("bounds %v - %v", m.BoundsMin, m.BoundsMax)
	}
	if m.Size() != math3d.V3(2, 6, 3) {
		t.Errorf("size %v", m.Size())
	}
}

func TestHeightfieldTakesMaximum(t *testing.T) {
	// A ramp rising along X: height equals x.
	m := NewMesh("ramp")
	m.Positions = []math3d.Vec3{
		math3d.V3(0, 0, 0), math3d.V3(4, 4, 0), math3d.V3(4, 4, 2), math3d.V3(0, 0, 2),
	}
	m.Faces = [][3]int{{0, 1, 2}, {0, 2, 3}}
	m.CalculateBounds()

	g := m.Heightfield(4, 2)
	if len(g.X) != 4 || len(g.Y) != 2 {
		t.Fatalf("coordinates %v %v", g.X, g.Y)
	}
	if g.X[0] != 0.5 || g.Y[1] != 1.5 {
		t.Errorf("cell centres %v %v", g.X, g.Y)
	}
	for j := range g.Z {
		for i, v := range g.Z[j] {
			// The highest point of cell i is at its right edge (or
			// just below it).
			if v > float64(i+1)+1e-9 || v < float64(i) {
				t.Errorf("cell (%d,%d) = %g", i, j, v)
			}
		}
	}
	if g.Z[0][3] != 4 {
		t.Errorf("last cell = %g, want 4", g.Z[0][3])
	}
}

func TestHeightfieldEmptyCells(t *testing.T) {
	// One small triangle in the corner of a large footprint.
	m := NewMesh("corner")
	m.Positions = []math3d.Vec3{
		math3d.V3(0, 1, 0), math3d.V3(0.5, 1, 0), math3d.V3(0, 1, 0.5),
		math3d.V3(10, 0, 10),
	}
	m.Faces = [][3]int{{0, 1, 2}}
	m.CalculateBounds()

	g := m.Heightfield(5, 5)
	if g.Z[0][0] != 1 {
		t.Errorf("covered cell = %g", g.Z[0][0])
	}
	if !math.IsNaN(g.Z[4][4]) {
		t.Errorf("uncovered cell = %g, want NaN", g.Z[4][4])
	}
}
