// Package stream defines the contract between plotting commands and the
// device backend that turns their requests into pixels.
package stream

// Opt selects how a surface primitive draws its grid.
type Opt int

const (
	// DrawLineX draws lines of constant y (running along x).
	DrawLineX Opt = 1 << iota
	// DrawLineY draws lines of constant x (running along y).
	DrawLineY
	// MagColor colors lines by their height through the color table.
	MagColor
	// DrawSides adds walls from the grid edges down to the base plane.
	DrawSides

	DrawLineXY = DrawLineX | DrawLineY
)

// Has reports whether every bit of flag is set in o.
func (o Opt) Has(flag Opt) bool {
	return o&flag == flag
}

// LineSolid is the backend line style for continuous lines.
const LineSolid = 1

// Box3D is the data range of a 3D plot box, in linear data units, with the
// log flag of each axis.
type Box3D struct {
	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	XLog, YLog, ZLog                   bool
}

// World3D maps the plot box onto the 3D view. Ranges are in plotting space
// (log10 already applied on log axes). Alt and Az follow the backend
// convention: Az is measured clockwise, Alt is the elevation in [0,90].
type World3D struct {
	BaseX, BaseY, Height               float64
	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	Alt, Az                            float64
}

// Grid is a surface sampled on a rectilinear grid. Z is indexed [ix][iy];
// X and Y must be strictly increasing.
type Grid struct {
	X, Y []float64
	Z    [][]float64
}

// AxisBox describes the 3D bounding box and its axes. Ranges are in
// plotting space.
type AxisBox struct {
	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	XLog, YLog, ZLog                   bool
}

// Stream is the drawing backend a 3D plotting command talks to.
type Stream interface {
	// Viewport3D sets up the viewport and world coordinates for box and
	// reports false when the box cannot be mapped (degenerate or
	// non-finite ranges).
	Viewport3D(box Box3D) bool
	// World3D establishes the 3D view used by the following draws.
	World3D(w World3D)

	// Plot3DC draws the upper side of the surface only.
	Plot3DC(g Grid, opt Opt)
	// MeshC draws both sides of the surface.
	MeshC(g Grid, opt Opt)
	// Box3 draws the bounding box, axes and tick labels.
	Box3(b AxisBox)

	// Background sets the erase color; NextPlot clears to it unless
	// noErase is set.
	Background(index int)
	NextPlot(noErase bool)

	// Color sets the pen to a color-table index; PenBackground sets it to
	// the background color.
	Color(index int)
	PenBackground()

	LineStyle(style int)
	CharSize(size float64)

	// StartClip restricts drawing to the normalized device rectangle and
	// reports whether clipping started; StopClip ends it.
	StartClip(x0, y0, x1, y1 float64) bool
	StopClip()
}
