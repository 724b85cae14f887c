package render

// Backend line styles, 1-based.
const (
	StyleSolid = 1 + iota
	StyleDotted
	StyleDashed
	StyleDashDot
	StyleDashDotDotDot
	StyleLongDash
)

// dashPatterns hold alternating on/off run lengths in pixels.
var dashPatterns = map[int][]int{
	StyleDotted:        {1, 2},
	StyleDashed:        {4, 3},
	StyleDashDot:       {4, 2, 1, 2},
	StyleDashDotDotDot: {4, 2, 1, 2, 1, 2, 1, 2},
	StyleLongDash:      {8, 4},
}

// Dash walks a dash pattern one pixel at a time.
type Dash struct {
	runs []int
	run  int
	pos  int
}

// NewDash returns the pattern for a backend line style. Unknown styles
// draw solid.
func NewDash(style int) *Dash {
	return &Dash{runs: dashPatterns[style]}
}

// Next reports whether the next pixel is drawn and advances the pattern.
func (d *Dash) Next() bool {
	if len(d.runs) == 0 {
		return true
	}
	on := d.run%2 == 0
	d.pos++
	if d.pos >= d.runs[d.run] {
		d.pos = 0
		d.run = (d.run + 1) % len(d.runs)
	}
	return on
}
