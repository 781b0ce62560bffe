// pkg/physics/ball.go
package physics

import "math"

// Ball is a circular rigid body. Radius and Bounds are fixed at
// construction; Position and Motion change once per tick.
type Ball struct {
	ID       uint64
	Radius   float64
	Position Point
	Motion   Vector2D // displacement per tick
	Bounds   Bounds
}

// StepResult describes what happened to a ball during one Step
type StepResult struct {
	Moved       bool
	Bounced     bool
	RollDegrees float64 // roll for this displacement, assuming no slipping
	Collisions  []*Ball
}

// NewBall creates a ball confined to a width x height field
func NewBall(id uint64, radius, width, height float64) *Ball {
	return &Ball{
		ID:     id,
		Radius: radius,
		Bounds: BallBounds(width, height, radius),
	}
}

// Touches reports whether the ball placed at p would overlap other
func (b *Ball) Touches(p Point, other *Ball) bool {
	return Touches(p, b.Radius, other.Position, other.Radius)
}

// RollAxis is the in-plane axis a ball rolls about: the motion's perpendicular
func (b *Ball) RollAxis() Vector2D {
	return NewDirection(b.Motion.DY, -b.Motion.DX)
}

// Step advances the ball by one tick. It predicts the next position from
// the motion, bounces off the walls, then resolves overlaps with every
// peer. Resolving an overlap updates the motion of both bodies and keeps
// this ball in place for the tick. peers may include b itself.
func (b *Ball) Step(peers []*Ball) StepResult {
	next := Point{X: b.Position.X + b.Motion.DX, Y: b.Position.Y + b.Motion.DY}

	result := StepResult{
		RollDegrees: b.Motion.Size() * 360 / (2 * math.Pi * b.Radius),
	}

	next, b.Motion, result.Bounced = b.Bounds.Reflect(next, b.Motion)

	result.Collisions = b.collide(next, peers)
	if len(result.Collisions) == 0 {
		b.Position = next
		result.Moved = true
	}
	return result
}

// collide exchanges along-line motion with each overlapping peer in order.
// With several overlaps the last pairing determines the final motion.
func (b *Ball) collide(next Point, peers []*Ball) []*Ball {
	var hits []*Ball
	for _, that := range peers {
		if that == b || !b.Touches(next, that) {
			continue
		}
		hits = append(hits, that)

		centerLine := Between(next, that.Position)

		keepThis, giveThis := resolveHit(b.Motion, centerLine)
		keepThat, giveThat := resolveHit(that.Motion, centerLine.Opposite())

		b.Motion = keepThis.Add(giveThat)
		that.Motion = giveThis.Add(keepThat)
	}
	return hits
}
