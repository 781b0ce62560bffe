// pkg/entity/entity.go
package entity

import (
	"github.com/dsaiko/billiard-balls-screensaver/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for everything drawn on the table
type Entity interface {
	GetID() ID
	GetPosition() physics.Point
	Render(r Renderer)
}

// Ball is a numbered billiard ball: a physics body plus its visual spin
type Ball struct {
	Number int
	Body   *physics.Ball
	Spin   *Spin
}

// NewBall wraps a physics body. The spin starts about the body's current
// roll axis at the given angle in degrees.
func NewBall(number int, body *physics.Ball, initialRoll float64) *Ball {
	return &Ball{
		Number: number,
		Body:   body,
		Spin:   NewSpin(body.RollAxis(), initialRoll),
	}
}

// GetID returns the ball's unique identifier
func (b *Ball) GetID() ID {
	return ID(b.Body.ID)
}

// GetPosition returns the ball's center
func (b *Ball) GetPosition() physics.Point {
	return b.Body.Position
}

// GetRadius returns the ball's radius
func (b *Ball) GetRadius() float64 {
	return b.Body.Radius
}

// Render draws the ball
func (b *Ball) Render(r Renderer) {
	r.RenderBall(b)
}

// Card is a translucent playing card drifting under the balls
type Card struct {
	Name    string
	Body    *physics.Card
	Opacity float64
}

// GetID returns the card's unique identifier
func (c *Card) GetID() ID {
	return ID(c.Body.ID)
}

// GetPosition returns the card's top-left corner
func (c *Card) GetPosition() physics.Point {
	return c.Body.Position
}

// Render draws the card
func (c *Card) Render(r Renderer) {
	r.RenderCard(c)
}
