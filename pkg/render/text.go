package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var labelFace = basicfont.Face7x13

// labelScale is the integer glyph magnification for a charsize.
func labelScale(charSize float64) int {
	return max(1, int(math.Round(charSize)))
}

// drawLabel draws s centred on c in the pen color, magnified by the
// current charsize.
func (d *Device) drawLabel(c image.Point, s string) {
	if s == "" {
		return
	}
	m := labelFace.Metrics()
	w := font.MeasureString(labelFace, s).Ceil()
	h := m.Height.Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, w, h))
	dr := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(d.pen),
		Face: labelFace,
		Dot:  fixed.P(0, m.Ascent.Ceil()),
	}
	dr.DrawString(s)

	k := labelScale(d.charSize)
	dst := image.Rect(0, 0, w*k, h*k).Add(c.Sub(image.Pt(w*k/2, h*k/2)))
	draw.NearestNeighbor.Scale(d.fb, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}
