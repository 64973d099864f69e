package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	c := mustCircle(t, 1, 2, 3)
	assert.Equal(t, Point2{1, 2}, c.Center())
	assert.Equal(t, 3.0, c.Radius())
	assert.Equal(t, 6.0, c.Diameter())
	assert.Equal(t, -2.0, c.Left())
	assert.Equal(t, 4.0, c.Right())
	assert.Equal(t, -1.0, c.Top())
	assert.Equal(t, 5.0, c.Bottom())
	assert.InDelta(t, 9*math.Pi, c.Area(), delta)
	assert.InDelta(t, 6*math.Pi, c.Circumference(), delta)
	assert.Equal(t, c.Circumference(), c.Perimeter())
	assert.True(t, c.Bounds().Equal(mustRectangle(t, -2, -1, 6, 6)))

	at, err := NewCircleAt(Point2{1, 2}, 3)
	require.NoError(t, err)
	assert.True(t, at.Equal(c))

	assert.InDelta(t, math.Pi, UnitCircle.Area(), delta)

	for _, r := range []float64{0, -1, math.Inf(-1)} {
		_, err := NewCircle(0, 0, r)
		assert.ErrorIs(t, err, ErrNonPositiveRadius, "radius %g", r)
		assert.True(t, IsInvalidConstruction(err))
	}

	nan, err := NewCircle(0, 0, math.NaN())
	require.NoError(t, err, "NaN propagates")
	assert.True(t, math.IsNaN(nan.Area()))
}

func TestCircleIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		want bool
	}{
		{"same circle", mustCircle(t, 0, 0, 2), mustCircle(t, 0, 0, 2), true},
		{"apart", mustCircle(t, 0, 0, 1), mustCircle(t, 3, 0, 1), false},
		{"tangent", mustCircle(t, 0, 0, 1), mustCircle(t, 2, 0, 1), true},
		{"overlapping", mustCircle(t, 0, 0, 2), mustCircle(t, 1, 1, 1), true},
		{"nested", mustCircle(t, 0, 0, 10), mustCircle(t, 1, 1, 1), true},
		{"diagonal apart", mustCircle(t, 0, 0, 1), mustCircle(t, 2, 2, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestCircleContains(t *testing.T) {
	c := mustCircle(t, 0, 0, 5)
	assert.True(t, c.Contains(Point2{0, 0}))
	assert.True(t, c.Contains(Point2{3, 4}), "boundary counts")
	assert.False(t, c.Contains(Point2{4, 4}))

	square := mustRectangle(t, 0, 0, 10, 10)
	assert.True(t, mustCircle(t, 5, 5, 25).ContainsRectangle(square))
	assert.False(t, mustCircle(t, 5, 5, 1).ContainsRectangle(square))
	assert.False(t, mustCircle(t, 5, 5, 7).ContainsRectangle(square))
}

func TestCircleOperators(t *testing.T) {
	c := mustCircle(t, 1, 1, 2)
	v := Vector2{2, -1}

	moved := c.Translate(v)
	assert.Equal(t, Point2{3, 0}, moved.Center())
	assert.Equal(t, c.Radius(), moved.Radius())
	assert.True(t, moved.TranslateBack(v).Equal(c))

	bigger, err := c.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, bigger.Radius())
	assert.Equal(t, c.Center(), bigger.Center())

	smaller, err := c.Div(2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, smaller.Radius())

	_, err = c.Mul(0)
	assert.ErrorIs(t, err, ErrNonPositiveRadius)
	assert.True(t, IsDegenerateOperation(err))

	_, err = c.Mul(-10)
	assert.ErrorIs(t, err, ErrNonPositiveRadius)

	_, err = c.Div(0)
	assert.ErrorIs(t, err, ErrDivideByZero)

	_, err = c.Div(-1)
	assert.True(t, IsDegenerateOperation(err))
}

func TestCircleScaleRoundTrip(t *testing.T) {
	c := mustCircle(t, 0, 0, 1.7)
	for _, s := range []float64{0.3, 2, 11, 1e4} {
		scaled, err := c.Mul(s)
		require.NoError(t, err)
		back, err := scaled.Div(s)
		require.NoError(t, err)
		assert.InDelta(t, c.Radius(), back.Radius(), 1e-9, "scale %g", s)
	}
}

func TestCircleString(t *testing.T) {
	assert.Equal(t, "Circle(X:0, Y:-1, Radius:2.5)", mustCircle(t, 0, -1, 2.5).String())
}
