package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/physics"
)

func assertSameRotation(t *testing.T, expected, actual Quaternion) {
	t.Helper()
	for _, v := range [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		ex, ey, ez := expected.Rotate(v[0], v[1], v[2])
		ax, ay, az := actual.Rotate(v[0], v[1], v[2])
		assert.InDelta(t, ex, ax, 1e-9)
		assert.InDelta(t, ey, ay, 1e-9)
		assert.InDelta(t, ez, az, 1e-9)
	}
}

func TestSpin_Roll(t *testing.T) {
	s := NewSpin(physics.NewDirection(0, 1), 10)
	s.Roll(15)
	s.Roll(5)

	assert.Equal(t, 30.0, s.Angle())
	assertSameRotation(t, AxisAngle(0, 1, 0, 30), s.Orientation())
}

func TestSpin_ResetKeepsOrientation(t *testing.T) {
	s := NewSpin(physics.NewDirection(1, 0), 40)
	before := s.Orientation()

	s.Reset(physics.NewDirection(3, 4))

	assert.Equal(t, 0.0, s.Angle())
	assert.Equal(t, physics.NewDirection(4, -3), s.Axis())
	assertSameRotation(t, before, s.Orientation())

	s.Roll(90)
	assertSameRotation(t, before.Mul(AxisAngle(4, -3, 0, 90)), s.Orientation())
}

func TestSpin_Twist(t *testing.T) {
	s := NewSpin(physics.NewDirection(1, 0), 90)
	assert.InDelta(t, 0, s.Twist(), 1e-9, "a single in-plane roll has no twist")

	s.Reset(physics.NewDirection(1, 0))
	s.Roll(90)

	twist := s.Twist()
	assert.GreaterOrEqual(t, twist, 0.0)
	assert.Less(t, twist, 360.0)
}
