// pkg/physics/bounds.go
package physics

import "math"

// Reference directions for wall reflection
var (
	WallVertical   = NewDirection(0, 100)
	WallHorizontal = NewDirection(100, 0)
)

// Bounds is the axis-aligned range a body's anchor point may occupy
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// BallBounds returns the range of valid ball centers on a width x height field
func BallBounds(width, height, radius float64) Bounds {
	return Bounds{
		MinX: radius,
		MaxX: width - radius,
		MinY: radius,
		MaxY: height - radius,
	}
}

// Contains reports whether p lies inside the bounds, edges included
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Reflect applies a specular wall bounce to a predicted position. For each
// axis that p violates, the coordinate is clamped one unit inside the wall
// and the motion is rotated by twice its angle to the wall. Axes are
// handled vertical wall first, then horizontal.
func (b Bounds) Reflect(p Point, motion Vector2D) (Point, Vector2D, bool) {
	bounced := false

	if p.X < b.MinX || p.X > b.MaxX {
		sign := 1.0
		if p.X < b.MinX {
			p.X = b.MinX + 1
			sign = -1
		} else {
			p.X = b.MaxX - 1
		}
		motion = motion.Rotate(sign * 2 * reflectionAngle(WallVertical, motion))
		bounced = true
	}

	if p.Y < b.MinY || p.Y > b.MaxY {
		sign := -1.0
		if p.Y < b.MinY {
			p.Y = b.MinY + 1
			sign = 1
		} else {
			p.Y = b.MaxY - 1
		}
		motion = motion.Rotate(sign * 2 * reflectionAngle(WallHorizontal, motion))
		bounced = true
	}

	return p, motion, bounced
}

// reflectionAngle is the angle between the wall reference and the motion.
// A body with no motion has no defined angle; it is treated as 0.
func reflectionAngle(wall, motion Vector2D) float64 {
	angle := wall.AngleTo(motion)
	if math.IsNaN(angle) {
		return 0
	}
	return angle
}
