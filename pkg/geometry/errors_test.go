package geometry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind ErrorKind
	}{
		{ErrNonPositiveWidth, KindInvalidConstruction},
		{ErrNonPositiveRadius, KindInvalidConstruction},
		{ErrDegenerateTriangle, KindInvalidConstruction},
		{ErrNoDimensions, KindInvalidConstruction},
		{ErrDimensionMismatch, KindDimensionMismatch},
		{ErrIndexOutOfRange, KindOutOfRange},
		{ErrOutOfRange, KindOutOfRange},
		{ErrZeroLength, KindDegenerateOperation},
		{ErrDivideByZero, KindDegenerateOperation},
		{ErrNegativeScale, KindDegenerateOperation},
		{ErrDegeneratePolygon, KindDegenerateOperation},
		{ErrInvalidTolerance, KindInvalidConfig},
		{errors.New("other"), KindUnknown},
		{nil, KindUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, KindOf(tt.err), "%v", tt.err)
	}
}

func TestErrorWrapping(t *testing.T) {
	_, err := NewRectangle(0, 0, 0, 5)
	require.Error(t, err)

	var geomErr *Error
	require.True(t, errors.As(err, &geomErr))
	assert.Equal(t, "rectangle", geomErr.Op)
	assert.Equal(t, KindInvalidConstruction, geomErr.Kind)
	assert.Equal(t, 0.0, geomErr.Context["width"])
	assert.Equal(t, "geometry: rectangle: width must be greater than 0 width=0", err.Error())

	wrapped := fmt.Errorf("loading level: %w", err)
	assert.ErrorIs(t, wrapped, ErrNonPositiveWidth)
	assert.True(t, IsInvalidConstruction(wrapped))
	assert.False(t, IsDegenerateOperation(wrapped))
}

func TestErrorContextOrder(t *testing.T) {
	err := newError("polygon vertex", ErrIndexOutOfRange).
		WithContext("len", 4).
		WithContext("index", 7)
	assert.Equal(t, "geometry: polygon vertex: index out of range index=7 len=4", err.Error())
}

func TestErrorKindOverride(t *testing.T) {
	c := mustCircle(t, 0, 0, 1)
	_, err := c.Mul(0)
	assert.ErrorIs(t, err, ErrNonPositiveRadius)
	assert.Equal(t, KindDegenerateOperation, KindOf(err))
	assert.Equal(t, "degenerate operation", KindOf(err).String())
}
