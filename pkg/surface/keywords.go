package surface

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/surfplot/pkg/axis"
	"github.com/taigrr/surfplot/pkg/plotstate"
	"github.com/taigrr/surfplot/pkg/stream"
)

// AxisKeywords are the per-axis options of a SURFACE call.
type AxisKeywords struct {
	Log bool `yaml:"log"`
	// Type, when set, replaces Log: true for logarithmic, false for linear.
	Type *bool `yaml:"type,omitempty"`
	// TickUnits names date/time tick units, which cannot be logarithmic.
	TickUnits string    `yaml:"tickunits,omitempty"`
	Range     []float64 `yaml:"range,omitempty"`
	Style     *int      `yaml:"style,omitempty"`
}

// Keywords is the option set of a SURFACE call. The zero value draws a
// default mesh.
type Keywords struct {
	X AxisKeywords `yaml:"x"`
	Y AxisKeywords `yaml:"y"`
	Z AxisKeywords `yaml:"z"`

	// T3D interprets the session transform instead of the view angles.
	T3D bool `yaml:"t3d"`
	// Save writes a synthesized view back to the session transform.
	Save   bool     `yaml:"save"`
	ZValue float64  `yaml:"zvalue"`
	Az     *float64 `yaml:"az,omitempty"`
	Ax     *float64 `yaml:"ax,omitempty"`

	NoData bool `yaml:"nodata"`
	// Shades turns on magnitude coloring when present; the values are
	// not used.
	Shades   []float64 `yaml:"shades,omitempty"`
	MinValue *float64  `yaml:"min_value,omitempty"`
	MaxValue *float64  `yaml:"max_value,omitempty"`

	UpperOnly  bool `yaml:"upper_only"`
	LowerOnly  bool `yaml:"lower_only"`
	Horizontal bool `yaml:"horizontal"`
	Skirt      bool `yaml:"skirt"`

	// Clip is [x0, y0, x1, y1] in normalized device coordinates.
	Clip   []float64 `yaml:"clip,omitempty"`
	NoClip bool      `yaml:"noclip"`

	Color      *int     `yaml:"color,omitempty"`
	Background *int     `yaml:"background,omitempty"`
	Bottom     *int     `yaml:"bottom,omitempty"`
	CharSize   *float64 `yaml:"charsize,omitempty"`
	LineStyle  *int     `yaml:"linestyle,omitempty"`
	NoErase    bool     `yaml:"noerase"`
}

// ParseKeywords decodes a YAML keyword document.
func ParseKeywords(data []byte) (Keywords, error) {
	var kw Keywords
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return Keywords{}, fmt.Errorf("parse keywords: %w", err)
	}
	if err := kw.validate(); err != nil {
		return Keywords{}, err
	}
	return kw, nil
}

// LoadKeywords reads a YAML keyword file.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("read keywords: %w", err)
	}
	kw, err := ParseKeywords(data)
	if err != nil {
		return Keywords{}, fmt.Errorf("%s: %w", path, err)
	}
	return kw, nil
}

func (kw *Keywords) validate() error {
	for _, a := range []plotstate.Axis{plotstate.AxisX, plotstate.AxisY, plotstate.AxisZ} {
		if r := kw.axis(a).Range; r != nil && len(r) != 2 {
			return fmt.Errorf("%srange needs 2 elements, got %d", a, len(r))
		}
	}
	if kw.Clip != nil && len(kw.Clip) != 4 {
		return fmt.Errorf("clip needs 4 elements, got %d", len(kw.Clip))
	}
	return nil
}

func (kw *Keywords) axis(a plotstate.Axis) *AxisKeywords {
	switch a {
	case plotstate.AxisX:
		return &kw.X
	case plotstate.AxisY:
		return &kw.Y
	default:
		return &kw.Z
	}
}

// logScale resolves the log flag of axis a. Date/time tick units win over
// a log request.
func (kw *Keywords) logScale(a plotstate.Axis) bool {
	k := kw.axis(a)
	log := k.Log
	if k.Type != nil {
		log = *k.Type
	}
	if log && k.TickUnits != "" {
		Logger().Warn("log scaling ignored with date/time tick units",
			"axis", a.String(), "tickunits", k.TickUnits)
		log = false
	}
	return log
}

// rangeOverride returns the keyword range of axis a, else the session
// default, else nil. Ranges with equal ends do not override.
func (kw *Keywords) rangeOverride(a plotstate.Axis, st *plotstate.State) *axis.Range {
	if r := kw.axis(a).Range; len(r) == 2 && r[0] != r[1] {
		return &axis.Range{Start: r[0], End: r[1]}
	}
	if d := st.Axis(a); d.HasRange() {
		return &axis.Range{Start: d.Range[0], End: d.Range[1]}
	}
	return nil
}

// exact reports whether axis a keeps its range without nice widening.
func (kw *Keywords) exact(a plotstate.Axis, st *plotstate.State) bool {
	style := st.Axis(a).Style
	if s := kw.axis(a).Style; s != nil {
		style = *s
	}
	return style&plotstate.StyleExact != 0
}

func (kw *Keywords) foreground(st *plotstate.State) int {
	if kw.Color != nil {
		return *kw.Color
	}
	return st.Color
}

func (kw *Keywords) background(st *plotstate.State) int {
	if kw.Background != nil {
		return *kw.Background
	}
	return st.Background
}

// bottomColor returns the underside color index, or nil when none is
// set. A negative index means none.
func (kw *Keywords) bottomColor() *int {
	if kw.Bottom == nil || *kw.Bottom < 0 {
		return nil
	}
	return kw.Bottom
}

func (kw *Keywords) charSize(st *plotstate.State) float64 {
	size := st.CharSize
	if kw.CharSize != nil {
		size = *kw.CharSize
	}
	if size <= 0 {
		size = 1
	}
	return size
}

// lineStyle maps the 0-based keyword style to the backend's 1-based one.
func (kw *Keywords) lineStyle() int {
	if kw.LineStyle != nil {
		return *kw.LineStyle + 1
	}
	return stream.LineSolid
}

func (kw *Keywords) angles() (az, alt float64) {
	az, alt = DefaultAz, DefaultAlt
	if kw.Az != nil {
		az = *kw.Az
	}
	if kw.Ax != nil {
		alt = *kw.Ax
	}
	return az, alt
}
