package surface

import "fmt"

// Array is a numeric array in storage order: Dims[0] varies fastest. A 2D
// array with Dims [nx, ny] holds element (i, j) at Data[i+j*nx], so the
// first dimension runs along X and the second along Y.
type Array struct {
	Dims []int
	Data []float64
}

// Vector wraps v as a one-dimensional array.
func Vector(v []float64) Array {
	return Array{Dims: []int{len(v)}, Data: v}
}

// Scalar wraps v as a rank-0 array.
func Scalar(v float64) Array {
	return Array{Data: []float64{v}}
}

// FromRows builds a 2D array from rows[j][i], j along Y and i along X.
// All rows must have the same length.
func FromRows(rows [][]float64) (Array, error) {
	return rowsOf(rows)
}

// Rank returns the number of dimensions, ignoring trailing dimensions of
// size one.
func (a Array) Rank() int {
	n := len(a.Dims)
	for n > 0 && a.Dims[n-1] == 1 {
		n--
	}
	return n
}

// EquivalentRank counts the dimensions larger than one, so a [1,4,5]
// slice of a cube has equivalent rank 2.
func (a Array) EquivalentRank() int {
	return len(squeeze(a.Dims))
}

func squeeze(dims []int) []int {
	var out []int
	for _, d := range dims {
		if d > 1 {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of elements the dimensions describe.
func (a Array) Len() int {
	n := 1
	for _, d := range a.Dims {
		n *= d
	}
	return n
}

func (a Array) validate() error {
	if a.Len() != len(a.Data) {
		return newError(CodeShape, "array of dimensions %v holds %d elements", a.Dims, len(a.Data))
	}
	return nil
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func vectorOf[T number](v []T) Array {
	data := make([]float64, len(v))
	for i, x := range v {
		data[i] = float64(x)
	}
	return Vector(data)
}

// rowsShape returns [nx, ny] for rows, rejecting ragged rows.
func rowsShape[T number](rows [][]T) ([]int, error) {
	if len(rows) == 0 {
		return []int{0, 0}, nil
	}
	nx := len(rows[0])
	for j, row := range rows {
		if len(row) != nx {
			return nil, newError(CodeShape, "row %d has %d elements, want %d", j, len(row), nx)
		}
	}
	return []int{nx, len(rows)}, nil
}

func rowsOf[T number](rows [][]T) (Array, error) {
	dims, err := rowsShape(rows)
	if err != nil {
		return Array{}, err
	}
	data := make([]float64, 0, dims[0]*dims[1])
	for _, row := range rows {
		for _, x := range row {
			data = append(data, float64(x))
		}
	}
	return Array{Dims: dims, Data: data}, nil
}

// shapeOf returns the dimensions AsArray would give v, without touching
// its elements.
func shapeOf(v any) ([]int, error) {
	switch x := v.(type) {
	case Array:
		return x.Dims, nil
	case *Array:
		if x == nil {
			return nil, newError(CodeNotNumeric, "undefined argument")
		}
		return x.Dims, nil
	case []float64:
		return []int{len(x)}, nil
	case []float32:
		return []int{len(x)}, nil
	case []int:
		return []int{len(x)}, nil
	case []int32:
		return []int{len(x)}, nil
	case []int64:
		return []int{len(x)}, nil
	case [][]float64:
		return rowsShape(x)
	case [][]float32:
		return rowsShape(x)
	case [][]int:
		return rowsShape(x)
	case [][]int64:
		return rowsShape(x)
	case float64, float32, int, int64:
		return nil, nil
	default:
		return nil, newError(CodeNotNumeric, "expression must be numeric, got %s", describe(v))
	}
}

// AsArray converts a positional argument to an Array. It accepts Array,
// *Array, numeric scalars, and numeric slices of one or two levels.
// Anything else fails with ErrNotNumeric.
func AsArray(v any) (Array, error) {
	var a Array
	var err error
	switch x := v.(type) {
	case Array:
		a = x
	case *Array:
		if x == nil {
			return Array{}, newError(CodeNotNumeric, "undefined argument")
		}
		a = *x
	case []float64:
		a = Vector(x)
	case []float32:
		a = vectorOf(x)
	case []int:
		a = vectorOf(x)
	case []int32:
		a = vectorOf(x)
	case []int64:
		a = vectorOf(x)
	case [][]float64:
		a, err = rowsOf(x)
	case [][]float32:
		a, err = rowsOf(x)
	case [][]int:
		a, err = rowsOf(x)
	case [][]int64:
		a, err = rowsOf(x)
	case float64:
		a = Scalar(x)
	case float32:
		a = Scalar(float64(x))
	case int:
		a = Scalar(float64(x))
	case int64:
		a = Scalar(float64(x))
	default:
		return Array{}, newError(CodeNotNumeric, "expression must be numeric, got %s", describe(v))
	}
	if err != nil {
		return Array{}, err
	}
	if err := a.validate(); err != nil {
		return Array{}, err
	}
	return a, nil
}

func describe(v any) string {
	if v == nil {
		return "undefined"
	}
	return fmt.Sprintf("%T", v)
}
