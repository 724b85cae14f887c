package surface

import (
	"math"

	"github.com/taigrr/surfplot/pkg/stream"
)

// ValueClampPolicy limits cell values. Min also replaces non-finite
// values, so it is set to the data minimum when no minimum is requested.
type ValueClampPolicy struct {
	HasMin bool
	Min    float64
	HasMax bool
	Max    float64
}

// Cell returns the backend value of a raw Z value. On a log axis the value
// and bounds are taken in log10 space; logFloor replaces non-finite logs
// of the bounds.
func (p ValueClampPolicy) Cell(v float64, zLog bool, logFloor float64) float64 {
	lo, hi := p.Min, p.Max
	if zLog {
		v = math.Log10(v)
		lo = finiteOr(math.Log10(p.Min), logFloor)
		hi = math.Log10(p.Max)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = lo
	}
	if p.HasMin && v < lo {
		v = lo
	}
	if p.HasMax && v > hi {
		v = hi
	}
	return v
}

// BuildGrid converts in to the backend grid. x, y and z give the axis
// ranges after adjustment; their plotting starts anchor the ramp that
// replaces non-positive coordinates on log axes.
func BuildGrid(in SurfaceInput, policy ValueClampPolicy, x, y, z AxisRange) stream.Grid {
	zFloor, _ := z.Plotting()
	g := stream.Grid{
		X: gridCoords(in.X, x),
		Y: gridCoords(in.Y, y),
		Z: make([][]float64, in.NX()),
	}
	for i := range g.Z {
		col := make([]float64, in.NY())
		for j := range col {
			col[j] = policy.Cell(in.Z[j][i], z.IsLog, zFloor)
		}
		g.Z[i] = col
	}
	return g
}

func gridCoords(v []float64, r AxisRange) []float64 {
	out := make([]float64, len(v))
	if !r.IsLog {
		copy(out, v)
		return out
	}
	start, _ := r.Plotting()
	base := start - 1
	eps := math.Abs(base) / float64(len(v))
	for i, c := range v {
		if c > 0 {
			out[i] = math.Log10(c)
		} else {
			out[i] = base + float64(i)*eps
		}
	}
	return out
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
