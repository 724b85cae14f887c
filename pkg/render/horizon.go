package render

import (
	"cmp"
	"image"
	"image/color"
	"slices"

	"github.com/taigrr/surfplot/pkg/stream"
)

// segment is one grid line piece in screen space.
type segment struct {
	a, b  image.Point
	depth float64
	z     float64 // mean height in plotting space
}

// drawSurface draws the grid lines of g with a floating horizon. Segments
// are drawn nearest first; a pixel shows when it lies above everything
// drawn so far in its column, or below it when both sides are drawn.
func (d *Device) drawSurface(g stream.Grid, opt stream.Opt, twoSided bool) {
	segs := d.surfaceSegments(g, opt)
	slices.SortStableFunc(segs, func(a, b segment) int {
		return cmp.Compare(b.depth, a.depth)
	})

	w := d.fb.Width
	upper := make([]int, w)
	lower := make([]int, w)
	for i := range upper {
		upper[i] = d.fb.Height
		lower[i] = -1
	}

	dash := NewDash(d.style)
	var pixels []image.Point
	for _, s := range segs {
		pen := d.pen
		if opt.Has(stream.MagColor) {
			pen = d.magnitudeColor(s.z)
		}

		pixels = pixels[:0]
		bresenham(s.a.X, s.a.Y, s.b.X, s.b.Y, func(x, y int) {
			pixels = append(pixels, image.Pt(x, y))
		})
		for _, p := range pixels {
			if p.X < 0 || p.X >= w {
				continue
			}
			visible := p.Y < upper[p.X] || (twoSided && p.Y > lower[p.X])
			if dash.Next() && visible {
				d.fb.SetPixel(p.X, p.Y, pen)
			}
		}
		for _, p := range pixels {
			if p.X < 0 || p.X >= w {
				continue
			}
			upper[p.X] = min(upper[p.X], p.Y)
			lower[p.X] = max(lower[p.X], p.Y)
		}
	}
}

func (d *Device) surfaceSegments(g stream.Grid, opt stream.Opt) []segment {
	nx, ny := len(g.X), len(g.Y)
	if nx == 0 || ny == 0 || len(g.Z) < nx {
		return nil
	}

	type vertex struct {
		pt    image.Point
		depth float64
		z     float64
	}
	at := func(ix, iy int, z float64) vertex {
		pt, depth := d.projectPt(g.X[ix], g.Y[iy], z)
		return vertex{pt: pt, depth: depth, z: z}
	}
	var segs []segment
	add := func(a, b vertex) {
		if !finite(a.z) || !finite(b.z) {
			return
		}
		segs = append(segs, segment{a: a.pt, b: b.pt, depth: (a.depth + b.depth) / 2, z: (a.z + b.z) / 2})
	}

	if opt.Has(stream.DrawLineX) {
		for iy := range ny {
			for ix := 0; ix+1 < nx; ix++ {
				add(at(ix, iy, g.Z[ix][iy]), at(ix+1, iy, g.Z[ix+1][iy]))
			}
		}
	}
	if opt.Has(stream.DrawLineY) {
		for ix := range nx {
			for iy := 0; iy+1 < ny; iy++ {
				add(at(ix, iy, g.Z[ix][iy]), at(ix, iy+1, g.Z[ix][iy+1]))
			}
		}
	}
	if opt.Has(stream.DrawSides) {
		base := d.world.ZMin
		edge := func(ix, iy int) {
			add(at(ix, iy, g.Z[ix][iy]), at(ix, iy, base))
		}
		for ix := range nx {
			edge(ix, 0)
			edge(ix, ny-1)
			if ix+1 < nx {
				add(at(ix, 0, base), at(ix+1, 0, base))
				add(at(ix, ny-1, base), at(ix+1, ny-1, base))
			}
		}
		for iy := 1; iy+1 < ny; iy++ {
			edge(0, iy)
			edge(nx-1, iy)
		}
		for iy := 0; iy+1 < ny; iy++ {
			add(at(0, iy, base), at(0, iy+1, base))
			add(at(nx-1, iy, base), at(nx-1, iy+1, base))
		}
	}
	return segs
}

// magnitudeColor picks the color-table entry for a height.
func (d *Device) magnitudeColor(z float64) color.RGBA {
	lo, hi := d.world.ZMin, d.world.ZMax
	if hi == lo {
		return d.pen
	}
	f := (z - lo) / (hi - lo)
	f = max(0, min(f, 1))
	return d.palette.Lookup(int(f * float64(len(d.palette)-1)))
}
