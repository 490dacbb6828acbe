package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorArithmetic(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Vector3{X: 5, Y: 7, Z: 9}, a.Add(b))
	assert.Equal(t, Vector3{X: -3, Y: -3, Z: -3}, a.Sub(b))
	assert.Equal(t, Vector3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.Equal(t, 32.0, a.Dot(b))
}

func TestMagnitudeAndDistance(t *testing.T) {
	a := Vector3{X: 3, Y: 4}
	assert.Equal(t, 5.0, a.Magnitude())

	b := Vector3{X: 6, Y: 8}
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 5.0, b.Distance(a))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Vector3{}.IsZero())
	assert.False(t, Vector3{Z: 1e-12}.IsZero())
}
