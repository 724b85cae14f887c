package surface

import (
	"math"

	"github.com/taigrr/surfplot/pkg/axis"
)

// AxisRange is the resolved extent of one axis in linear data units. The
// log10 transform is applied by consumers: the box wants linear values,
// the grid wants log values.
type AxisRange struct {
	Start, End float64
	IsLog      bool
}

// ResolveAxisRange returns the min/max of the finite values of data, or
// the override when one is given. Resolving the same input twice gives the
// same range.
func ResolveAxisRange(data []float64, isLog bool, override *axis.Range) AxisRange {
	if override != nil {
		return AxisRange{Start: override.Start, End: override.End, IsLog: isLog}
	}
	lo, hi := minMax(data)
	return AxisRange{Start: lo, End: hi, IsLog: isLog}
}

// Range returns the linear extent as an axis.Range.
func (r AxisRange) Range() axis.Range {
	return axis.Range{Start: r.Start, End: r.End}
}

// Plotting returns the extent in plotting space: log10 on log axes.
func (r AxisRange) Plotting() (start, end float64) {
	if r.IsLog {
		return math.Log10(r.Start), math.Log10(r.End)
	}
	return r.Start, r.End
}

// minMax ignores NaN and infinite values; with nothing finite it returns
// 0, 0.
func minMax(data []float64) (lo, hi float64) {
	found := false
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !found {
			lo, hi = v, v
			found = true
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
