package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/taigrr/surfplot/pkg/stream"
)

// bumpGrid is a 9x9 Gaussian bump on [0,1]x[0,1].
func bumpGrid() stream.Grid {
	n := 9
	g := stream.Grid{X: make([]float64, n), Y: make([]float64, n), Z: make([][]float64, n)}
	for i := range n {
		g.X[i] = float64(i) / float64(n-1)
		g.Y[i] = g.X[i]
	}
	for i := range n {
		g.Z[i] = make([]float64, n)
		for j := range n {
			dx, dy := g.X[i]-0.5, g.Y[j]-0.5
			g.Z[i][j] = math.Exp(-(dx*dx + dy*dy) * 8)
		}
	}
	return g
}

func drawn(t *testing.T, draw func(d *Device)) *Device {
	t.Helper()
	d := newTestDevice(160, 120)
	d.Background(0)
	d.NextPlot(false)
	if !d.Viewport3D(unitBox) {
		t.Fatal("viewport refused")
	}
	d.World3D(unitWorld(30, 330))
	d.Color(255)
	draw(d)
	return d
}

func TestSurfaceSidesAreSubsets(t *testing.T) {
	g := bumpGrid()
	upper := countPen(drawn(t, func(d *Device) { d.Plot3DC(g, stream.DrawLineXY) }).fb, white)
	both := countPen(drawn(t, func(d *Device) { d.MeshC(g, stream.DrawLineXY) }).fb, white)
	if upper == 0 {
		t.Fatal("upper side not drawn")
	}
	if upper > both {
		t.Errorf("upper side drew %d pixels, both sides %d", upper, both)
	}
}

func TestSurfaceLineDirections(t *testing.T) {
	g := bumpGrid()
	x := countPen(drawn(t, func(d *Device) { d.MeshC(g, stream.DrawLineX) }).fb, white)
	xy := countPen(drawn(t, func(d *Device) { d.MeshC(g, stream.DrawLineXY) }).fb, white)
	if x == 0 || x >= xy {
		t.Errorf("x lines drew %d pixels, both directions %d", x, xy)
	}
}

func TestSurfaceSides(t *testing.T) {
	g := bumpGrid()
	plain := countPen(drawn(t, func(d *Device) { d.MeshC(g, stream.DrawLineXY) }).fb, white)
	skirt := countPen(drawn(t, func(d *Device) { d.MeshC(g, stream.DrawLineXY|stream.DrawSides) }).fb, white)
	if skirt <= plain {
		t.Errorf("skirt drew %d pixels, plain %d", skirt, plain)
	}
}

func TestSurfaceMagnitudeColor(t *testing.T) {
	g := bumpGrid()
	for i := range g.Z {
		for j := range g.Z[i] {
			g.Z[i][j] = 1
		}
	}
	d := drawn(t, func(d *Device) {
		d.Color(100)
		d.MeshC(g, stream.DrawLineXY|stream.MagColor)
	})
	if countPen(d.fb, white) == 0 {
		t.Error("top-level lines should use the last color")
	}
	if countPen(d.fb, color.RGBA{100, 100, 100, 255}) != 0 {
		t.Error("pen color used despite magnitude coloring")
	}
}

func TestSurfaceSkipsNonFinite(t *testing.T) {
	g := bumpGrid()
	for i := range g.Z {
		for j := range g.Z[i] {
			g.Z[i][j] = math.NaN()
		}
	}
	d := drawn(t, func(d *Device) { d.MeshC(g, stream.DrawLineXY) })
	if n := countPen(d.fb, white); n != 0 {
		t.Errorf("drew %d pixels for an all-NaN grid", n)
	}
}

func TestSurfaceEmptyGrid(t *testing.T) {
	d := drawn(t, func(d *Device) { d.MeshC(stream.Grid{}, stream.DrawLineXY) })
	if n := countPen(d.fb, white); n != 0 {
		t.Errorf("drew %d pixels for an empty grid", n)
	}
}
