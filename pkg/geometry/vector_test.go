package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestVector2Arithmetic(t *testing.T) {
	v := Vector2{3, 4}
	o := Vector2{1, -2}

	assert.Equal(t, Vector2{4, 2}, v.Add(o))
	assert.Equal(t, Vector2{2, 6}, v.Sub(o))
	assert.Equal(t, Vector2{6, 8}, v.Mul(2))
	assert.Equal(t, Vector2{-3, -4}, v.Neg())
	assert.Equal(t, -5.0, v.Dot(o))
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 5.0, v.DistanceTo(Vector2Zero))

	half, err := v.Div(2)
	require.NoError(t, err)
	assert.Equal(t, Vector2{1.5, 2}, half)

	_, err = v.Div(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.True(t, IsDegenerateOperation(err))
}

func TestVector2Normalize(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		n, err := Vector2{3, 4}.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 0.6, n.X, delta)
		assert.InDelta(t, 0.8, n.Y, delta)
		assert.InDelta(t, 1.0, n.Length(), delta)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, v := range []Vector2{{3, 4}, {-1, 0.001}, {1e6, -7}, {0.5, 0.5}} {
			once, err := v.Normalize()
			require.NoError(t, err)
			twice, err := once.Normalize()
			require.NoError(t, err)
			assert.True(t, once.EqualWithin(twice, Tolerance{Absolute: delta}), "%v", v)
		}
	})

	t.Run("zero vector", func(t *testing.T) {
		_, err := Vector2Zero.Normalize()
		assert.ErrorIs(t, err, ErrZeroLength)
		assert.True(t, IsDegenerateOperation(err))
	})

	t.Run("in place", func(t *testing.T) {
		v := Vector2{0, -2}
		require.NoError(t, v.NormalizeInPlace())
		assert.Equal(t, Vector2{0, -1}, v)

		z := Vector2Zero
		assert.ErrorIs(t, z.NormalizeInPlace(), ErrZeroLength)
		assert.Equal(t, Vector2Zero, z)
	})
}

func TestVector2Rotation(t *testing.T) {
	assert.Equal(t, Vector2{1, 0}, Vector2FromRotation(0))
	assert.InDelta(t, math.Pi/2, Vector2{0, 1}.Rotation(), delta)
	assert.InDelta(t, math.Pi, Vector2{-1, 0}.Rotation(), delta)

	v := Vector2FromRotation(math.Pi / 3)
	assert.InDelta(t, 1.0, v.Length(), delta)
	assert.InDelta(t, math.Pi/3, v.Rotation(), delta)
}

func TestVector2Conversions(t *testing.T) {
	assert.Equal(t, Vector2{1, 2}, Vector2FromPoint(Point2{1, 2}))
	assert.Equal(t, Vector2{1, 2}, Vec2(1, 2))
	assert.Equal(t, Vector3{1, 2, 3}, Vec3[int64](1, 2, 3))
	assert.Equal(t, "Vector2(1, -2)", Vector2{1, -2}.String())
	assert.True(t, Vector2One.Equal(Vector2{1, 1}))
}

func TestVector3(t *testing.T) {
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}

	assert.Equal(t, Vector3{0, 0, 1}, x.Cross(y))
	assert.Equal(t, Vector3{0, 0, -1}, y.Cross(x))
	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, Vector3{1, 1, 0}, x.Add(y))
	assert.Equal(t, Vector3{1, -1, 0}, x.Sub(y))
	assert.Equal(t, Vector3{3, 3, 3}, Vector3One.Mul(3))
	assert.Equal(t, 3.0, Vector3{1, 2, 2}.Length())
	assert.Equal(t, 3.0, Vector3{1, 2, 2}.DistanceTo(Vector3Zero))
	assert.Equal(t, Vector3{1, 2, 2}, Vector3Between(Point3{1, 1, 1}, Point3{2, 3, 3}))
	assert.Equal(t, Vector3{4, 5, 6}, Vector3FromPoint(Point3{4, 5, 6}))

	n, err := Vector3{0, 0, 4}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, Vector3{0, 0, 1}, n)

	_, err = Vector3Zero.Normalize()
	assert.ErrorIs(t, err, ErrZeroLength)

	v := Vector3{2, 0, 0}
	require.NoError(t, v.NormalizeInPlace())
	assert.Equal(t, x, v)

	_, err = x.Div(0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	half, err := Vector3{2, 4, 6}.Div(2)
	require.NoError(t, err)
	assert.Equal(t, Vector3{1, 2, 3}, half)
}
