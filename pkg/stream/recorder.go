package stream

import (
	"fmt"
	"strconv"
	"strings"
)

// String lists the set flags, e.g. "linex|liney|sides".
func (o Opt) String() string {
	var parts []string
	for _, f := range []struct {
		flag Opt
		name string
	}{
		{DrawLineX, "linex"},
		{DrawLineY, "liney"},
		{MagColor, "mag"},
		{DrawSides, "sides"},
	} {
		if o.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Call is one primitive request seen by a Recorder.
type Call struct {
	Op   string
	Args string

	// Set for surface primitives.
	Grid Grid
	Opt  Opt

	// Set for World3D.
	World World3D
}

func (c Call) String() string {
	if c.Args == "" {
		return c.Op
	}
	return c.Op + " " + c.Args
}

// Recorder is a Stream that draws nothing and remembers every call.
type Recorder struct {
	Calls []Call

	// FailViewport makes Viewport3D report a degenerate box.
	FailViewport bool
	// RefuseClip makes StartClip report that no clipping started.
	RefuseClip bool
}

var _ Stream = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(c Call) {
	r.Calls = append(r.Calls, c)
}

// Ops returns the operation names in call order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Find returns the calls with the given operation name.
func (r *Recorder) Find(op string) []Call {
	var found []Call
	for _, c := range r.Calls {
		if c.Op == op {
			found = append(found, c)
		}
	}
	return found
}

// String renders the trace one call per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, c := range r.Calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Recorder) Viewport3D(box Box3D) bool {
	if r.FailViewport {
		r.add(Call{Op: "viewport3d", Args: "degenerate"})
		return false
	}
	r.add(Call{Op: "viewport3d", Args: "ok"})
	return true
}

func (r *Recorder) World3D(w World3D) {
	r.add(Call{Op: "world3d", Args: fmt.Sprintf("alt=%s az=%s", fmtFloat(w.Alt), fmtFloat(w.Az)), World: w})
}

func (r *Recorder) Plot3DC(g Grid, opt Opt) {
	r.add(Call{Op: "plot3dc", Args: gridArgs(g, opt), Grid: g, Opt: opt})
}

func (r *Recorder) MeshC(g Grid, opt Opt) {
	r.add(Call{Op: "meshc", Args: gridArgs(g, opt), Grid: g, Opt: opt})
}

func (r *Recorder) Box3(b AxisBox) {
	r.add(Call{Op: "box3"})
}

func (r *Recorder) Background(index int) {
	r.add(Call{Op: "background", Args: strconv.Itoa(index)})
}

func (r *Recorder) NextPlot(noErase bool) {
	if noErase {
		r.add(Call{Op: "nextplot", Args: "noerase"})
		return
	}
	r.add(Call{Op: "nextplot", Args: "erase"})
}

func (r *Recorder) Color(index int) {
	r.add(Call{Op: "color", Args: strconv.Itoa(index)})
}

func (r *Recorder) PenBackground() {
	r.add(Call{Op: "color", Args: "background"})
}

func (r *Recorder) LineStyle(style int) {
	r.add(Call{Op: "linestyle", Args: strconv.Itoa(style)})
}

func (r *Recorder) CharSize(size float64) {
	r.add(Call{Op: "charsize", Args: fmtFloat(size)})
}

func (r *Recorder) StartClip(x0, y0, x1, y1 float64) bool {
	if r.RefuseClip {
		r.add(Call{Op: "startclip", Args: "refused"})
		return false
	}
	r.add(Call{Op: "startclip", Args: fmt.Sprintf("%s,%s,%s,%s", fmtFloat(x0), fmtFloat(y0), fmtFloat(x1), fmtFloat(y1))})
	return true
}

func (r *Recorder) StopClip() {
	r.add(Call{Op: "stopclip"})
}

func gridArgs(g Grid, opt Opt) string {
	return fmt.Sprintf("%dx%d opt=%s", len(g.X), len(g.Y), opt)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
