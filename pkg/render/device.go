package render

import (
	"image"
	"image/color"
	"math"

	"github.com/taigrr/surfplot/pkg/math3d"
	"github.com/taigrr/surfplot/pkg/plotstate"
	"github.com/taigrr/surfplot/pkg/stream"
)

// Device draws stream requests into a Framebuffer.
type Device struct {
	fb      *Framebuffer
	palette *plotstate.ColorTable

	pen      color.RGBA
	bg       color.RGBA
	style    int
	charSize float64

	viewport image.Rectangle
	world    stream.World3D
	rot      math3d.Mat4
	pixels   float64 // pixels per unit of the view box
	cx, cy   float64
}

var _ stream.Stream = (*Device)(nil)

// NewDevice creates a device drawing into fb with the given color table.
func NewDevice(fb *Framebuffer, palette *plotstate.ColorTable) *Device {
	d := &Device{
		fb:       fb,
		palette:  palette,
		style:    stream.LineSolid,
		charSize: 1,
	}
	d.pen = palette.Lookup(len(palette) - 1)
	d.bg = palette.Lookup(0)
	return d
}

// Framebuffer returns the target framebuffer.
func (d *Device) Framebuffer() *Framebuffer {
	return d.fb
}

// Viewport3D reserves the plot area and rejects boxes with empty or
// non-finite ranges, and log ranges that are not positive.
func (d *Device) Viewport3D(box stream.Box3D) bool {
	for _, r := range []struct {
		lo, hi float64
		log    bool
	}{
		{box.XMin, box.XMax, box.XLog},
		{box.YMin, box.YMax, box.YLog},
		{box.ZMin, box.ZMax, box.ZLog},
	} {
		if !finite(r.lo) || !finite(r.hi) || r.lo == r.hi {
			return false
		}
		if r.log && (r.lo <= 0 || r.hi <= 0) {
			return false
		}
	}

	margin := max(2, min(d.fb.Width, d.fb.Height)/10)
	vp := d.fb.Bounds().Inset(margin)
	if vp.Empty() {
		return false
	}
	d.viewport = vp
	return true
}

// World3D sets up the projection used by the surface and box primitives.
func (d *Device) World3D(w stream.World3D) {
	d.world = w
	d.rot = math3d.RotateX(math3d.Deg2Rad(w.Alt)).
		Mul(math3d.RotateY(math3d.Deg2Rad(360 - w.Az))).
		Mul(math3d.RotateX(math3d.Deg2Rad(-90)))
	d.pixels = float64(min(d.viewport.Dx(), d.viewport.Dy()))
	d.cx = float64(d.viewport.Min.X+d.viewport.Max.X) / 2
	d.cy = float64(d.viewport.Min.Y+d.viewport.Max.Y) / 2
}

// project maps a point in plotting space to screen coordinates. Larger
// depth is nearer the viewer.
func (d *Device) project(x, y, z float64) (sx, sy, depth float64) {
	w := d.world
	p := math3d.V3(
		(unit(x, w.XMin, w.XMax)-0.5)*w.BaseX,
		(unit(y, w.YMin, w.YMax)-0.5)*w.BaseY,
		(unit(z, w.ZMin, w.ZMax)-0.5)*w.Height,
	)
	q := d.rot.MulVec3(p)
	return d.cx + q.X*d.pixels, d.cy - q.Y*d.pixels, q.Z
}

func (d *Device) projectPt(x, y, z float64) (image.Point, float64) {
	sx, sy, depth := d.project(x, y, z)
	return image.Pt(int(math.Round(sx)), int(math.Round(sy))), depth
}

func unit(v, lo, hi float64) float64 {
	return (v - lo) / (hi - lo)
}

// Plot3DC draws the upper side of the surface.
func (d *Device) Plot3DC(g stream.Grid, opt stream.Opt) {
	d.drawSurface(g, opt, false)
}

// MeshC draws both sides of the surface.
func (d *Device) MeshC(g stream.Grid, opt stream.Opt) {
	d.drawSurface(g, opt, true)
}

// Box3 draws the box edges with ticks and labels on three axes.
func (d *Device) Box3(b stream.AxisBox) {
	d.drawBox(b)
	d.drawAxes(b)
}

func (d *Device) Background(index int) {
	d.bg = d.palette.Lookup(index)
}

func (d *Device) NextPlot(noErase bool) {
	if !noErase {
		d.fb.Clear(d.bg)
	}
}

func (d *Device) Color(index int) {
	d.pen = d.palette.Lookup(index)
}

func (d *Device) PenBackground() {
	d.pen = d.bg
}

func (d *Device) LineStyle(style int) {
	d.style = style
}

func (d *Device) CharSize(size float64) {
	d.charSize = size
}

// StartClip clips to a rectangle in normalized device coordinates, with
// y growing upwards. An empty rectangle is refused.
func (d *Device) StartClip(x0, y0, x1, y1 float64) bool {
	w, h := float64(d.fb.Width), float64(d.fb.Height)
	r := image.Rect(
		int(math.Round(x0*w)), int(math.Round((1-y1)*h)),
		int(math.Round(x1*w)), int(math.Round((1-y0)*h)),
	).Intersect(d.fb.Bounds())
	if r.Empty() {
		return false
	}
	d.fb.SetClip(&r)
	return true
}

func (d *Device) StopClip() {
	d.fb.SetClip(nil)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
