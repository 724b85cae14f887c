package surface

import (
	"math"

	"github.com/taigrr/surfplot/pkg/axis"
	"github.com/taigrr/surfplot/pkg/math3d"
	"github.com/taigrr/surfplot/pkg/plotstate"
	"github.com/taigrr/surfplot/pkg/stream"
)

// Surface draws args, given as (z) or (z, x, y), as a wireframe surface
// on s. Argument, range and transform errors are returned before s or st
// is touched. A degenerate box aborts silently. Line style and charsize
// are reset on every exit.
func Surface(s stream.Stream, st *plotstate.State, args []any, kw Keywords) error {
	log := Logger()

	opts := ResolveOptions{
		XLog:   kw.logScale(plotstate.AxisX),
		YLog:   kw.logScale(plotstate.AxisY),
		ZLog:   kw.logScale(plotstate.AxisZ),
		XRange: kw.rangeOverride(plotstate.AxisX, st),
		YRange: kw.rangeOverride(plotstate.AxisY, st),
		ZRange: kw.rangeOverride(plotstate.AxisZ, st),
	}
	res, err := ResolveArguments(args, opts)
	if err != nil {
		return err
	}

	bottom := kw.bottomColor()
	mode := RenderMode{
		UpperOnly:      kw.UpperOnly,
		LowerOnly:      kw.LowerOnly,
		Shaded:         kw.Shades != nil,
		Skirt:          kw.Skirt,
		Horizontal:     kw.Horizontal,
		HasBottomColor: bottom != nil,
	}
	if mode.Shaded {
		log.Warn("shade values are ignored, coloring by height")
	}

	policy := ValueClampPolicy{Min: res.DataMin, Max: res.DataMax}
	if kw.MinValue != nil {
		policy.HasMin, policy.Min = true, *kw.MinValue
	}
	if kw.MaxValue != nil {
		policy.HasMax, policy.Max = true, *kw.MaxValue
	}

	zr := res.Z
	if !res.ZRangeSet {
		zr.Start = math.Max(policy.Min, zr.Start)
		zr.End = math.Min(zr.End, policy.Max)
	}
	xr := adjustRange(res.X, kw.exact(plotstate.AxisX, st), plotstate.AxisX)
	yr := adjustRange(res.Y, kw.exact(plotstate.AxisY, st), plotstate.AxisY)
	zr = adjustRange(zr, kw.exact(plotstate.AxisZ, st), plotstate.AxisZ)

	az, alt := kw.angles()
	var caller *math3d.Mat4
	if kw.T3D || st.T3D {
		m := st.Transform.Transpose()
		caller = &m
	}
	view, err := BuildTransform(az, alt, kw.ZValue, caller)
	if err != nil {
		return err
	}
	if kw.Save && !view.UsesCallerMatrix {
		st.Transform = view.Matrix.Transpose()
	}

	fg := kw.foreground(st)
	scope := acquireDrawState(s, st, &kw)
	defer scope.release()

	if !s.Viewport3D(stream.Box3D{
		XMin: xr.Start, XMax: xr.End,
		YMin: yr.Start, YMax: yr.End,
		ZMin: zr.Start, ZMax: zr.End,
		XLog: xr.IsLog, YLog: yr.IsLog, ZLog: zr.IsLog,
	}) {
		log.Debug("viewport setup failed, nothing drawn")
		return nil
	}

	x0, x1 := xr.Plotting()
	y0, y1 := yr.Plotting()
	z0, z1 := zr.Plotting()
	s.World3D(stream.World3D{
		BaseX: view.Scale[0], BaseY: view.Scale[1], Height: view.Height(),
		XMin: x0, XMax: x1, YMin: y0, YMax: y1, ZMin: z0, ZMax: z1,
		Alt: view.Alt, Az: view.Az,
	})
	log.Debug("view", "az", view.Az, "alt", view.Alt, "caller_matrix", view.UsesCallerMatrix)

	if !kw.NoData && !mode.NoSurface() {
		g := BuildGrid(res.Input, policy, xr, yr, zr)

		clipped := false
		if kw.Clip != nil && !kw.NoClip {
			clipped = s.StartClip(kw.Clip[0], kw.Clip[1], kw.Clip[2], kw.Clip[3])
		}
		s.Color(fg)
		plan := mode.Plan()
		log.Debug("draw plan", "steps", len(plan))
		for _, step := range plan {
			runStep(s, step, g, fg, bottom)
		}
		if clipped {
			s.StopClip()
		}
	}

	s.Color(fg)
	s.Box3(stream.AxisBox{
		XMin: x0, XMax: x1, YMin: y0, YMax: y1, ZMin: z0, ZMax: z1,
		XLog: xr.IsLog, YLog: yr.IsLog, ZLog: zr.IsLog,
	})
	return nil
}

func adjustRange(r AxisRange, exact bool, a plotstate.Axis) AxisRange {
	if r.IsLog && r.Start <= 0 {
		Logger().Warn("infinite plot range", "axis", a.String(), "start", r.Start)
	}
	adj := axis.Adjust(r.Range(), r.IsLog, exact)
	return AxisRange{Start: adj.Start, End: adj.End, IsLog: r.IsLog}
}

func runStep(s stream.Stream, step DrawStep, g stream.Grid, fg int, bottom *int) {
	switch step.Pen {
	case PenForeground:
		s.Color(fg)
	case PenBottom:
		s.Color(*bottom)
	case PenBackground:
		s.PenBackground()
	}
	switch step.Prim {
	case PrimPlot3DC:
		s.Plot3DC(g, step.Opt)
	case PrimMeshC:
		s.MeshC(g, step.Opt)
	}
}

// drawState holds the per-call overrides of the stream's drawing state.
type drawState struct {
	s stream.Stream
}

func acquireDrawState(s stream.Stream, st *plotstate.State, kw *Keywords) drawState {
	s.Background(kw.background(st))
	s.NextPlot(kw.NoErase)
	s.CharSize(kw.charSize(st))
	s.LineStyle(kw.lineStyle())
	return drawState{s: s}
}

func (d drawState) release() {
	d.s.LineStyle(stream.LineSolid)
	d.s.CharSize(1)
}
