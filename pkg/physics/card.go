package physics

// CardMargin is the gap kept between a card and the field edge
const CardMargin = 2

// Card is a decorative rectangle that drifts and bounces off the walls.
// Cards never collide with balls or with each other. Position is the
// top-left corner.
type Card struct {
	ID       uint64
	Width    float64
	Height   float64
	Position Point
	Motion   Vector2D
	Bounds   Bounds
}

// NewCard creates a card confined to a width x height field
func NewCard(id uint64, cardWidth, cardHeight, width, height float64) *Card {
	return &Card{
		ID:     id,
		Width:  cardWidth,
		Height: cardHeight,
		Bounds: Bounds{
			MinX: CardMargin,
			MaxX: width - cardWidth - CardMargin,
			MinY: CardMargin,
			MaxY: height - cardHeight - CardMargin,
		},
	}
}

// Step moves the card by its motion and reports whether it hit a wall
func (c *Card) Step() bool {
	next := Point{X: c.Position.X + c.Motion.DX, Y: c.Position.Y + c.Motion.DY}

	var bounced bool
	c.Position, c.Motion, bounced = c.Bounds.Reflect(next, c.Motion)
	return bounced
}
