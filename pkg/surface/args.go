package surface

import (
	"github.com/taigrr/surfplot/pkg/axis"
)

// SurfaceInput is the canonical form of the positional arguments.
type SurfaceInput struct {
	Z [][]float64 // Z[j][i], j along Y, i along X
	X []float64   // len NX
	Y []float64   // len NY
}

// NX returns the number of grid columns.
func (in SurfaceInput) NX() int { return len(in.X) }

// NY returns the number of grid rows.
func (in SurfaceInput) NY() int { return len(in.Y) }

// ResolveOptions carry the keyword inputs of argument resolution.
type ResolveOptions struct {
	XLog, YLog, ZLog bool

	// Range overrides; nil means auto range.
	XRange, YRange, ZRange *axis.Range
}

// Resolved is the outcome of argument resolution.
type Resolved struct {
	Input   SurfaceInput
	X, Y, Z AxisRange

	// ZRangeSet is set when the Z range came from an override.
	ZRangeSet bool

	// DataMin and DataMax span the finite Z values.
	DataMin, DataMax float64
}

// ResolveArguments validates the positional arguments, given as (z) or
// (z, x, y), and derives the initial axis ranges. Z must have two
// dimensions larger than one. X and Y must be vectors of NX and NY
// elements.
func ResolveArguments(args []any, opts ResolveOptions) (*Resolved, error) {
	if len(args) != 1 && len(args) != 3 {
		return nil, newError(CodeArgumentCount, "incorrect number of arguments: %d", len(args))
	}

	zDims, err := shapeOf(args[0])
	if err != nil {
		return nil, err
	}
	dims := squeeze(zDims)
	if len(dims) != 2 {
		return nil, newError(CodeShape, "array must have 2 dimensions: %v", zDims)
	}
	nx, ny := dims[0], dims[1]

	z, err := AsArray(args[0])
	if err != nil {
		return nil, err
	}

	var x, y []float64
	if len(args) == 1 {
		x = indexRamp(nx, opts.XLog)
		y = indexRamp(ny, opts.YLog)
	} else {
		x, y, err = coordinates(args[1], args[2], nx, ny)
		if err != nil {
			return nil, err
		}
	}

	rows := make([][]float64, ny)
	for j := range rows {
		rows[j] = make([]float64, nx)
		copy(rows[j], z.Data[j*nx:(j+1)*nx])
	}

	res := &Resolved{
		Input: SurfaceInput{Z: rows, X: x, Y: y},
		X:     ResolveAxisRange(x, opts.XLog, opts.XRange),
		Y:     ResolveAxisRange(y, opts.YLog, opts.YRange),
		Z:     ResolveAxisRange(z.Data, opts.ZLog, opts.ZRange),
	}
	res.ZRangeSet = opts.ZRange != nil
	res.DataMin, res.DataMax = minMax(z.Data)
	return res, nil
}

// coordinates checks ranks before lengths so a 2D coordinate array is
// reported as unsupported even when its size would match.
func coordinates(xArg, yArg any, nx, ny int) ([]float64, []float64, error) {
	x, err := AsArray(xArg)
	if err != nil {
		return nil, nil, err
	}
	y, err := AsArray(yArg)
	if err != nil {
		return nil, nil, err
	}

	xr, yr := x.Rank(), y.Rank()
	if xr == 0 || xr > 2 || yr == 0 || yr > 2 {
		return nil, nil, newError(CodeShape, "X and Y must have 1 or 2 dimensions, got %d and %d", xr, yr)
	}
	if xr == 2 || yr == 2 {
		return nil, nil, newError(CodeUnsupportedShape, "2D X or Y coordinates are not supported")
	}
	if len(x.Data) != nx {
		return nil, nil, newError(CodeShape, "X has %d elements, Z has %d columns", len(x.Data), nx)
	}
	if len(y.Data) != ny {
		return nil, nil, newError(CodeShape, "Y has %d elements, Z has %d rows", len(y.Data), ny)
	}
	return append([]float64(nil), x.Data...), append([]float64(nil), y.Data...), nil
}

// indexRamp returns 0..n-1, or 1..n on a log axis.
func indexRamp(n int, log bool) []float64 {
	off := 0.0
	if log {
		off = 1
	}
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i) + off
	}
	return v
}
