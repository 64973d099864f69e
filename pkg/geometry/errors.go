package geometry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Core geometry errors
var (
	// Construction errors

	ErrNonPositiveWidth   = errors.New("width must be greater than 0")
	ErrNonPositiveHeight  = errors.New("height must be greater than 0")
	ErrNonPositiveRadius  = errors.New("radius must be greater than 0")
	ErrDegenerateTriangle = errors.New("triangle points must be distinct")
	ErrNoDimensions       = errors.New("vector must have at least one dimension")

	// Dimension errors

	ErrDimensionMismatch = errors.New("vectors have differing dimensions")

	// Range errors

	ErrIndexOutOfRange = errors.New("index out of range")
	ErrOutOfRange      = errors.New("value out of range")

	// Degenerate operation errors

	ErrZeroLength        = errors.New("cannot normalize a vector with zero magnitude")
	ErrDivideByZero      = errors.New("division by zero")
	ErrNegativeScale     = errors.New("scale cannot be less than 0")
	ErrNonPositiveScale  = errors.New("scale must be greater than 0")
	ErrDegeneratePolygon = errors.New("polygon has no area extent")

	// Configuration errors

	ErrInvalidTolerance = errors.New("invalid tolerance")
)

// ErrorKind classifies geometry errors by the contract they violate.
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindInvalidConstruction
	KindDimensionMismatch
	KindOutOfRange
	KindDegenerateOperation
	KindInvalidConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConstruction:
		return "invalid construction"
	case KindDimensionMismatch:
		return "dimension mismatch"
	case KindOutOfRange:
		return "out of range"
	case KindDegenerateOperation:
		return "degenerate operation"
	case KindInvalidConfig:
		return "invalid config"
	default:
		return "unknown"
	}
}

// Error is a geometry error with the failing operation and its arguments.
type Error struct {
	Kind    ErrorKind
	Op      string
	Cause   error
	Context map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := "geometry: " + e.Op
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	for _, key := range slices.Sorted(maps.Keys(e.Context)) {
		msg += fmt.Sprintf(" %s=%v", key, e.Context[key])
	}
	return msg
}

// Unwrap returns the underlying sentinel error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// newError wraps a sentinel into an *Error for the named operation.
func newError(op string, cause error) *Error {
	return &Error{
		Kind:  errorKindMap[cause],
		Op:    op,
		Cause: cause,
	}
}

var errorKindMap = map[error]ErrorKind{
	ErrNonPositiveWidth:   KindInvalidConstruction,
	ErrNonPositiveHeight:  KindInvalidConstruction,
	ErrNonPositiveRadius:  KindInvalidConstruction,
	ErrDegenerateTriangle: KindInvalidConstruction,
	ErrNoDimensions:       KindInvalidConstruction,

	ErrDimensionMismatch: KindDimensionMismatch,

	ErrIndexOutOfRange: KindOutOfRange,
	ErrOutOfRange:      KindOutOfRange,

	ErrZeroLength:        KindDegenerateOperation,
	ErrDivideByZero:      KindDegenerateOperation,
	ErrNegativeScale:     KindDegenerateOperation,
	ErrNonPositiveScale:  KindDegenerateOperation,
	ErrDegeneratePolygon: KindDegenerateOperation,

	ErrInvalidTolerance: KindInvalidConfig,
}

// KindOf returns the kind of a geometry error, or KindUnknown.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	if kind, exists := errorKindMap[err]; exists {
		return kind
	}

	var geomErr *Error
	if errors.As(err, &geomErr) {
		if geomErr.Kind != KindUnknown {
			return geomErr.Kind
		}
		return KindOf(geomErr.Cause)
	}

	return KindUnknown
}

// IsInvalidConstruction reports whether err rejected a constructor's arguments.
func IsInvalidConstruction(err error) bool { return KindOf(err) == KindInvalidConstruction }

// IsDimensionMismatch reports whether err comes from mixing vector dimensions.
func IsDimensionMismatch(err error) bool { return KindOf(err) == KindDimensionMismatch }

// IsOutOfRange reports whether err comes from an index or parameter outside its bounds.
func IsOutOfRange(err error) bool { return KindOf(err) == KindOutOfRange }

// IsDegenerateOperation reports whether err comes from an operation with no defined result.
func IsDegenerateOperation(err error) bool { return KindOf(err) == KindDegenerateOperation }
