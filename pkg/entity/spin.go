package entity

import (
	"math"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/physics"
)

// Spin tracks how a rolling ball is oriented. The rotation accumulated so
// far is kept in base; the current roll is angle degrees about axis, an
// in-plane vector perpendicular to the motion.
type Spin struct {
	base  Quaternion
	axis  physics.Vector2D
	angle float64
}

// NewSpin starts a roll of angle degrees about axis
func NewSpin(axis physics.Vector2D, angle float64) *Spin {
	return &Spin{
		base:  IdentityQuaternion(),
		axis:  axis,
		angle: angle,
	}
}

// Roll adds degrees to the current roll
func (s *Spin) Roll(degrees float64) {
	s.angle += degrees
}

// Reset folds the current roll into the base orientation and starts a new
// roll about the axis matching the new motion.
func (s *Spin) Reset(motion physics.Vector2D) {
	s.base = s.base.Mul(s.current())
	s.axis = physics.NewDirection(motion.DY, -motion.DX)
	s.angle = 0
}

// Axis returns the current roll axis
func (s *Spin) Axis() physics.Vector2D {
	return s.axis
}

// Angle returns the current roll in degrees
func (s *Spin) Angle() float64 {
	return s.angle
}

// Orientation returns the ball's full rotation
func (s *Spin) Orientation() Quaternion {
	return s.base.Mul(s.current())
}

// Twist returns the orientation's rotation about the screen normal, in
// degrees in [0, 360). 2D renderers use it to turn a flat sprite.
func (s *Spin) Twist() float64 {
	q := s.Orientation()
	deg := 2 * math.Atan2(q.Z, q.W) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (s *Spin) current() Quaternion {
	return AxisAngle(s.axis.DX, s.axis.DY, 0, s.angle)
}
