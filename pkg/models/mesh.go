// Package models provides the data sources of a surface plot: YAML grid
// files, glTF meshes resampled into height fields, and a demo surface.
package models

import (
	"math"

	"github.com/taigrr/surfplot/pkg/math3d"
)

// Mesh is a triangle mesh. glTF is Y-up, so X and Z span the ground plane
// and Y is the height.
type Mesh struct {
	Name      string
	Positions []math3d.Vec3
	Faces     [][3]int // Indices into Positions

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Positions) == 0 {
		return
	}

	m.BoundsMin = m.Positions[0]
	m.BoundsMax = m.Positions[0]

	for _, p := range m.Positions[1:] {
		m.BoundsMin = m.BoundsMin.Min(p)
		m.BoundsMax = m.BoundsMax.Max(p)
	}
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// maxSamples caps the subdivision of one triangle edge.
const maxSamples = 64

// Heightfield resamples the mesh onto an nx by ny grid over its ground
// footprint. Each cell holds the greatest height sampled inside it; cells
// no triangle covers are NaN. X and Y hold the cell centres.
func (m *Mesh) Heightfield(nx, ny int) *Grid {
	g := &Grid{
		Z: make([][]float64, ny),
		X: make([]float64, nx),
		Y: make([]float64, ny),
	}
	for j := range g.Z {
		g.Z[j] = make([]float64, nx)
		for i := range g.Z[j] {
			g.Z[j][i] = math.NaN()
		}
	}

	size := m.Size()
	cellX := size.X / float64(nx)
	cellZ := size.Z / float64(ny)
	for i := range g.X {
		g.X[i] = m.BoundsMin.X + (float64(i)+0.5)*cellX
	}
	for j := range g.Y {
		g.Y[j] = m.BoundsMin.Z + (float64(j)+0.5)*cellZ
	}

	cell := func(v, lo, step float64, n int) int {
		if step == 0 {
			return 0
		}
		return max(0, min(int((v-lo)/step), n-1))
	}
	sample := func(p math3d.Vec3) {
		i := cell(p.X, m.BoundsMin.X, cellX, nx)
		j := cell(p.Z, m.BoundsMin.Z, cellZ, ny)
		if math.IsNaN(g.Z[j][i]) || p.Y > g.Z[j][i] {
			g.Z[j][i] = p.Y
		}
	}

	step := math.Min(nonZero(cellX), nonZero(cellZ))
	for _, f := range m.Faces {
		v0, v1, v2 := m.Positions[f[0]], m.Positions[f[1]], m.Positions[f[2]]
		e1, e2 := v1.Sub(v0), v2.Sub(v0)

		extent := math.Max(groundLen(e1), math.Max(groundLen(e2), groundLen(v2.Sub(v1))))
		n := min(maxSamples, max(1, int(math.Ceil(2*extent/step))))
		for a := 0; a <= n; a++ {
			for b := 0; a+b <= n; b++ {
				sample(v0.Add(e1.Scale(float64(a) / float64(n))).Add(e2.Scale(float64(b) / float64(n))))
			}
		}
	}
	return g
}

func groundLen(v math3d.Vec3) float64 {
	return math.Hypot(v.X, v.Z)
}

func nonZero(v float64) float64 {
	if v <= 0 {
		return math.Inf(1)
	}
	return v
}
