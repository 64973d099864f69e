package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
	assert.Equal(t, 5.0, Distance(3, 4, 0, 0))
	assert.Equal(t, 7.0, Distance3(0, 0, 0, 2, 3, 6))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 20.0, Lerp(0, 10, 2), "t is not clamped")
}

func TestNormalizeRange(t *testing.T) {
	v, err := NormalizeRange(5, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	v, err = NormalizeRange(-5, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, -0.5, v)

	_, err = NormalizeRange(1, 2, 2)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
