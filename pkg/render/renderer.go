// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/entity"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/logging"
)

// NullRenderer is an entity.Renderer that draws nothing and logs each
// call at debug level. Headless runs and benchmarks use it.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer. A nil logger discards output.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{
		logger: logger.With("component", "null_renderer"),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderBall implements entity.Renderer.
func (d *NullRenderer) RenderBall(ball *entity.Ball) {
	ctx := context.Background()
	if ball == nil {
		d.logger.Debug(ctx, "RenderBall called with nil ball")
		return
	}
	d.logger.Debug(ctx, "RenderBall called",
		"ball_id", ball.GetID(),
		"number", ball.Number,
		"x", ball.Body.Position.X,
		"y", ball.Body.Position.Y,
	)
}

// RenderCard implements entity.Renderer.
func (d *NullRenderer) RenderCard(card *entity.Card) {
	ctx := context.Background()
	if card == nil {
		d.logger.Debug(ctx, "RenderCard called with nil card")
		return
	}
	d.logger.Debug(ctx, "RenderCard called",
		"card_id", card.GetID(),
		"card_name", card.Name,
	)
}

// NullRendererInstance is a global instance of NullRenderer for convenience.
var NullRendererInstance entity.Renderer = NewNullRenderer(nil)
