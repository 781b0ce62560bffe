package entity

// Renderer draws table entities. A frame is Clear, a Render call per
// entity, then Present.
type Renderer interface {
	RenderBall(ball *Ball)
	RenderCard(card *Card)
	Clear()
	Present()
}
