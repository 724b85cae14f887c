// Package plotstate holds the plotting state shared by every command drawn
// on one output device: default axis ranges, the current 3D transform and
// the color table.
//
// A State is an explicit context object. It is valid for the lifetime of an
// output-device session and is reset by whoever owns that session. Commands
// read it at entry and may write the current transform back at exit. State
// does no locking; callers drawing concurrently on one device serialize
// themselves.
package plotstate

import (
	"image/color"

	"github.com/taigrr/surfplot/pkg/math3d"
)

// Axis identifies one of the three plot axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// StyleExact is the axis style bit that keeps a range exactly as given.
const StyleExact = 1

// AxisDefaults are the session-wide per-axis settings.
type AxisDefaults struct {
	Range [2]float64 // used as a range override when the ends differ
	Style int        // bit set; see StyleExact
}

// HasRange reports whether the default range is set.
func (d AxisDefaults) HasRange() bool {
	return d.Range[0] != d.Range[1]
}

// ColorTable maps color indices to colors.
type ColorTable [256]color.RGBA

// Grayscale returns the linear black-to-white table.
func Grayscale() ColorTable {
	var t ColorTable
	for i := range t {
		v := uint8(i)
		t[i] = color.RGBA{v, v, v, 255}
	}
	return t
}

// Lookup returns the color for index, clamping out-of-range indices.
func (t *ColorTable) Lookup(index int) color.RGBA {
	index = max(0, min(index, len(t)-1))
	return t[index]
}

// State is the process-wide plotting state of one device session.
type State struct {
	Axes [3]AxisDefaults

	// T3D makes every 3D command interpret Transform instead of
	// building a view from its angles.
	T3D bool

	// Transform is the current 3D transform in row-vector form.
	Transform math3d.Mat4

	Color      int // foreground color index
	Background int // background color index
	CharSize   float64
	Colors     ColorTable
}

// New returns the state of a fresh device session.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores the session defaults.
func (s *State) Reset() {
	*s = State{
		Transform:  math3d.Identity(),
		Color:      255,
		Background: 0,
		CharSize:   1,
		Colors:     Grayscale(),
	}
}

// Axis returns the defaults for axis a.
func (s *State) Axis(a Axis) *AxisDefaults {
	return &s.Axes[a]
}
