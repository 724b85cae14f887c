package surface

import (
	"strings"

	"github.com/taigrr/surfplot/pkg/stream"
)

// RenderMode is the drawing configuration of one call.
type RenderMode struct {
	UpperOnly      bool
	LowerOnly      bool
	Shaded         bool
	Skirt          bool
	Horizontal     bool
	HasBottomColor bool
}

// NoSurface reports the upper-only plus lower-only combination, which
// draws axes only.
func (m RenderMode) NoSurface() bool {
	return m.UpperOnly && m.LowerOnly
}

// LineOpt returns the grid line flags shared by every pass.
func (m RenderMode) LineOpt() stream.Opt {
	opt := stream.DrawLineXY
	if m.Horizontal {
		opt = stream.DrawLineX
	}
	if m.Skirt {
		opt |= stream.DrawSides
	}
	return opt
}

// Pen selects the color a DrawStep uses.
type Pen int

const (
	PenKeep Pen = iota
	PenForeground
	PenBottom
	PenBackground
)

// Primitive is a backend surface call.
type Primitive int

const (
	PrimNone Primitive = iota
	PrimPlot3DC
	PrimMeshC
)

// DrawStep sets a pen, then draws a primitive (if any).
type DrawStep struct {
	Pen  Pen
	Prim Primitive
	Opt  stream.Opt
}

// Plan returns the ordered draw steps for m. Lower-only hides the upper
// side by redrawing it in the background color.
func (m RenderMode) Plan() []DrawStep {
	if m.NoSurface() {
		return nil
	}
	opt := m.LineOpt()
	top := opt
	if m.Shaded {
		top |= stream.MagColor
	}

	if m.UpperOnly {
		return []DrawStep{{Pen: PenKeep, Prim: PrimPlot3DC, Opt: top}}
	}

	var steps []DrawStep
	if m.HasBottomColor {
		steps = append(steps,
			DrawStep{Pen: PenBottom, Prim: PrimMeshC, Opt: opt},
			DrawStep{Pen: PenForeground})
		if !m.LowerOnly {
			steps = append(steps, DrawStep{Pen: PenKeep, Prim: PrimPlot3DC, Opt: top})
		}
	} else {
		steps = append(steps, DrawStep{Pen: PenKeep, Prim: PrimMeshC, Opt: top})
	}
	if m.LowerOnly {
		steps = append(steps,
			DrawStep{Pen: PenBackground, Prim: PrimPlot3DC, Opt: opt &^ stream.DrawSides},
			DrawStep{Pen: PenForeground})
	}
	return steps
}

func (s DrawStep) String() string {
	var b strings.Builder
	switch s.Pen {
	case PenForeground:
		b.WriteString("fg ")
	case PenBottom:
		b.WriteString("bottom ")
	case PenBackground:
		b.WriteString("bg ")
	}
	switch s.Prim {
	case PrimPlot3DC:
		b.WriteString("plot3dc " + s.Opt.String())
	case PrimMeshC:
		b.WriteString("meshc " + s.Opt.String())
	default:
		b.WriteString("pen")
	}
	return b.String()
}
