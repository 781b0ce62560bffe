// pkg/physics/collision.go
package physics

import "math"

// Touches reports whether two circles overlap or touch
func Touches(a Point, ra float64, b Point, rb float64) bool {
	return a.Distance(b) <= ra+rb
}

// resolveHit splits motion along the center line of an impact. It returns
// the perpendicular part, which the body keeps, and the part along the
// line, which is handed to the other body.
func resolveHit(motion, centerLine Vector2D) (keep, give Vector2D) {
	c := motion.Size()

	beta := centerLine.AngleTo(motion)
	if math.IsNaN(beta) {
		// motion is zero: nothing to decompose
		beta = 0
	}
	along := c * math.Cos(beta)
	across := c * math.Sin(beta)

	give = centerLine.UnitVector().Multiply(along).MoveTo(0, 0)

	keep = NewDirection(centerLine.DY, -centerLine.DX).UnitVector().Multiply(across).MoveTo(0, 0)
	if across == 0 {
		return keep, give
	}

	// AngleTo has no sign, so pick whichever perpendicular continues the
	// current heading more closely
	flipped := keep.Opposite()
	if motion.AngleTo(keep) > motion.AngleTo(flipped) {
		keep = flipped
	}
	return keep, give
}
