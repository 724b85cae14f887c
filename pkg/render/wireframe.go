package render

import (
	"image"

	"github.com/taigrr/surfplot/pkg/axis"
	"github.com/taigrr/surfplot/pkg/stream"
)

// boxEdges are the 12 edges of a box whose corners are numbered by bits:
// bit 0 selects the X end, bit 1 the Y end, bit 2 the Z end.
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1},
	{1, 3},
	{3, 2},
	{2, 0},
	// Top face
	{4, 5},
	{5, 7},
	{7, 6},
	{6, 4},
	// Verticals
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

func boxCorner(b stream.AxisBox, i int) (x, y, z float64) {
	x, y, z = b.XMin, b.YMin, b.ZMin
	if i&1 != 0 {
		x = b.XMax
	}
	if i&2 != 0 {
		y = b.YMax
	}
	if i&4 != 0 {
		z = b.ZMax
	}
	return x, y, z
}

// drawBox draws the box edges as solid lines in the pen color.
func (d *Device) drawBox(b stream.AxisBox) {
	var corners [8]image.Point
	for i := range corners {
		corners[i], _ = d.projectPt(boxCorner(b, i))
	}
	for _, e := range boxEdges {
		p, q := corners[e[0]], corners[e[1]]
		d.fb.DrawLine(p.X, p.Y, q.X, q.Y, d.pen)
	}
}

const (
	tickLength  = 0.03 // fraction of the crossing axis span
	labelOffset = 0.12
)

// drawAxes puts ticks and labels on the front bottom X and Y edges and
// the left vertical Z edge.
func (d *Device) drawAxes(b stream.AxisBox) {
	dy := b.YMax - b.YMin
	dx := b.XMax - b.XMin

	for _, t := range axis.Ticks(axis.Range{Start: b.XMin, End: b.XMax}, b.XLog) {
		d.tick(t, b.YMin, b.ZMin, t, b.YMin-tickLength*dy, b.ZMin, t, b.YMin-labelOffset*dy, b.ZMin, axis.Label(t, b.XLog))
	}
	for _, t := range axis.Ticks(axis.Range{Start: b.YMin, End: b.YMax}, b.YLog) {
		d.tick(b.XMax, t, b.ZMin, b.XMax+tickLength*dx, t, b.ZMin, b.XMax+labelOffset*dx, t, b.ZMin, axis.Label(t, b.YLog))
	}
	for _, t := range axis.Ticks(axis.Range{Start: b.ZMin, End: b.ZMax}, b.ZLog) {
		d.tick(b.XMin, b.YMin, t, b.XMin-tickLength*dx, b.YMin, t, b.XMin-labelOffset*dx, b.YMin, t, axis.Label(t, b.ZLog))
	}
}

func (d *Device) tick(x0, y0, z0, x1, y1, z1, lx, ly, lz float64, label string) {
	p, _ := d.projectPt(x0, y0, z0)
	q, _ := d.projectPt(x1, y1, z1)
	d.fb.DrawLine(p.X, p.Y, q.X, q.Y, d.pen)
	l, _ := d.projectPt(lx, ly, lz)
	d.drawLabel(l, label)
}
