package surface

import "fmt"

// ErrorCode categorizes a failed SURFACE call.
type ErrorCode string

const (
	// CodeArgumentCount: not exactly 1 or 3 positional arguments.
	CodeArgumentCount ErrorCode = "ARGUMENT_COUNT"
	// CodeNotNumeric: a positional argument is not a numeric array.
	CodeNotNumeric ErrorCode = "NOT_NUMERIC"
	// CodeShape: rank or dimension mismatch between Z, X and Y.
	CodeShape ErrorCode = "SHAPE"
	// CodeUnsupportedShape: 2D X or Y coordinates.
	CodeUnsupportedShape ErrorCode = "UNSUPPORTED_SHAPE"
	// CodeRange: altitude outside [0,90] after normalization.
	CodeRange ErrorCode = "RANGE"
	// CodeTransform: the current 3D transform cannot be interpreted.
	CodeTransform ErrorCode = "TRANSFORM"
)

// Error is returned for every fatal SURFACE condition. All of them are
// detected before anything is drawn.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("SURFACE: %s", e.Message)
}

// Is matches errors by code, so errors.Is(err, ErrShape) holds for any
// shape error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrArgumentCount    = &Error{Code: CodeArgumentCount, Message: "incorrect number of arguments"}
	ErrNotNumeric       = &Error{Code: CodeNotNumeric, Message: "expression must be numeric"}
	ErrShape            = &Error{Code: CodeShape, Message: "X, Y, or Z array dimensions are incompatible"}
	ErrUnsupportedShape = &Error{Code: CodeUnsupportedShape, Message: "2D X or Y coordinates are not supported"}
	ErrRange            = &Error{Code: CodeRange, Message: "altitude restricted to [0,90]"}
	ErrTransform        = &Error{Code: CodeTransform, Message: "illegal 3D transformation"}
)

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}
