// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/entity"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/physics"
)

// Z order of the table layers
const (
	cardLayer float32 = 1
	ballLayer float32 = 2
)

// sprite is one drawn entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer using the Engo game engine.
// Table coordinates are scaled by a single factor so the field fills
// the screen width.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem
	scale        float64

	sprites map[entity.ID]*sprite
	seen    map[entity.ID]bool

	// Asset management
	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer drawing a table of
// fieldWidth units across screenWidth pixels.
func NewEngoRenderer(world *ecs.World, screenWidth, fieldWidth float64) *EngoRenderer {
	return &EngoRenderer{
		world:   world,
		scale:   screenWidth / fieldWidth,
		sprites: make(map[entity.ID]*sprite),
		seen:    make(map[entity.ID]bool),
		assets:  NewAssetManager(),
	}
}

// Initialize sets up the renderer's systems and builds sprites for the table
func (r *EngoRenderer) Initialize(balls int, ballRadius float64, cards []string, cardWidth, cardHeight float64) error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)

	return r.assets.LoadAssets(
		balls, r.pixels(2*ballRadius),
		cards, r.pixels(cardWidth), r.pixels(cardHeight),
	)
}

// RenderBall implements entity.Renderer
func (r *EngoRenderer) RenderBall(ball *entity.Ball) {
	s := r.getOrCreate(ball.GetID(), func() *sprite {
		return r.newSprite(r.assets.GetBallSprite(ball.Number), color.White, ballLayer)
	})

	d := float32(2 * ball.GetRadius() * r.scale)
	s.Width, s.Height = d, d
	s.Rotation = float32(ball.Spin.Twist())
	s.SetCenter(r.worldToScreen(ball.GetPosition()))
}

// RenderCard implements entity.Renderer
func (r *EngoRenderer) RenderCard(card *entity.Card) {
	s := r.getOrCreate(card.GetID(), func() *sprite {
		return r.newSprite(r.assets.GetCardSprite(card.Name), CardTint(card.Opacity), cardLayer)
	})

	s.Width = float32(card.Body.Width * r.scale)
	s.Height = float32(card.Body.Height * r.scale)
	s.Position = r.worldToScreen(card.GetPosition())
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	clear(r.seen)
}

// Present implements entity.Renderer. Engo draws on its own; Present only
// drops sprites whose entity was not rendered this frame.
func (r *EngoRenderer) Present() {
	r.cleanupInactiveEntities()
}

func (r *EngoRenderer) getOrCreate(id entity.ID, create func() *sprite) *sprite {
	r.seen[id] = true
	if s, exists := r.sprites[id]; exists {
		return s
	}

	s := create()
	r.sprites[id] = s
	r.renderSystem.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
	return s
}

func (r *EngoRenderer) newSprite(drawable common.Drawable, tint color.Color, layer float32) *sprite {
	s := &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: drawable,
			Color:    tint,
		},
	}
	s.RenderComponent.SetZIndex(layer)
	return s
}

// cleanupInactiveEntities removes sprites that are no longer on the table
func (r *EngoRenderer) cleanupInactiveEntities() {
	for id, s := range r.sprites {
		if !r.seen[id] {
			r.renderSystem.Remove(s.BasicEntity)
			delete(r.sprites, id)
		}
	}
}

// worldToScreen converts table coordinates to screen coordinates
func (r *EngoRenderer) worldToScreen(p physics.Point) engo.Point {
	return engo.Point{
		X: float32(p.X * r.scale),
		Y: float32(p.Y * r.scale),
	}
}

func (r *EngoRenderer) pixels(units float64) int {
	return max(int(math.Round(units*r.scale)), 1)
}

// CardTint is the render color that draws a card at the given opacity
func CardTint(opacity float64) color.NRGBA {
	return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(math.Round(opacity * 0xff))}
}
