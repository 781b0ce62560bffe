// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/EngoEngine/engo/common"
)

// FeltColor is the table cloth behind everything else
var FeltColor = color.RGBA{R: 0x0b, G: 0x6b, B: 0x3a, A: 0xff}

// ballColors follows the usual pool set: 1-7 solids, 8 black, 9-15 stripes
// repeating the solids, 16 the white cue ball.
var ballColors = []color.RGBA{
	{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff}, // cue
	{R: 0xf7, G: 0xc5, B: 0x1e, A: 0xff}, // yellow
	{R: 0x1f, G: 0x4e, B: 0xc2, A: 0xff}, // blue
	{R: 0xd6, G: 0x27, B: 0x2e, A: 0xff}, // red
	{R: 0x5b, G: 0x2c, B: 0x8a, A: 0xff}, // purple
	{R: 0xf2, G: 0x7a, B: 0x1a, A: 0xff}, // orange
	{R: 0x1c, G: 0x8c, B: 0x4a, A: 0xff}, // green
	{R: 0x7d, G: 0x1c, B: 0x24, A: 0xff}, // maroon
	{R: 0x10, G: 0x10, B: 0x10, A: 0xff}, // eight
}

var (
	ballWhite = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff}
	cardWhite = color.RGBA{R: 0xfd, G: 0xfd, B: 0xf8, A: 0xff}
	heartsRed = color.RGBA{R: 0xc8, G: 0x10, B: 0x2e, A: 0xff}
)

// BallColor returns the base color of a ball and whether it is striped
func BallColor(number int) (color.RGBA, bool) {
	switch {
	case number >= 1 && number <= 8:
		return ballColors[number], false
	case number >= 9 && number <= 15:
		return ballColors[number-8], true
	default:
		return ballColors[0], false
	}
}

// AssetManager builds and caches the sprites of the table
type AssetManager struct {
	ballSprites map[int]common.Drawable
	cardSprites map[string]common.Drawable
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		ballSprites: make(map[int]common.Drawable),
		cardSprites: make(map[string]common.Drawable),
	}
}

// LoadAssets renders a sprite for every ball number up to balls and for
// every card name. Sizes are in screen pixels. It needs a GL context.
func (am *AssetManager) LoadAssets(balls, ballDiameter int, cards []string, cardWidth, cardHeight int) error {
	for n := 1; n <= balls; n++ {
		am.ballSprites[n] = am.convertToEngoTexture(BallImage(n, ballDiameter))
	}
	for _, name := range cards {
		am.cardSprites[name] = am.convertToEngoTexture(CardImage(cardWidth, cardHeight))
	}
	return nil
}

// BallImage draws ball number as a disc of the given diameter. A small
// white spot off the center makes rotation visible.
func BallImage(number, diameter int) *image.NRGBA {
	img := createBaseImage(diameter, diameter)
	base, striped := BallColor(number)

	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				continue
			}

			c := base
			if striped && (dy < -r/2 || dy > r/2) {
				c = ballWhite
			}

			sx, sy := dx, dy+r/2
			if sx*sx+sy*sy <= r*r/16 {
				c = ballWhite
			}
			img.SetNRGBA(x, y, color.NRGBA(c))
		}
	}
	return img
}

// CardImage draws a plain hearts card face with a red border
func CardImage(width, height int) *image.NRGBA {
	img := createBaseImage(width, height)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: cardWhite}, image.Point{}, draw.Src)

	border := max(width/24, 1)
	inner := image.Rect(border, border, width-border, height-border)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !(image.Point{X: x, Y: y}).In(inner) {
				img.Set(x, y, heartsRed)
			}
		}
	}
	return img
}

// createBaseImage creates a transparent image with the specified dimensions
func createBaseImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return img
}

// convertToEngoTexture uploads an image as an Engo texture
func (am *AssetManager) convertToEngoTexture(img *image.NRGBA) common.Drawable {
	texture := common.NewImageObject(img)
	return common.NewTextureSingle(texture)
}

// GetBallSprite returns the sprite for a ball number, falling back to the
// last one loaded
func (am *AssetManager) GetBallSprite(number int) common.Drawable {
	if sprite, exists := am.ballSprites[number]; exists {
		return sprite
	}
	return am.ballSprites[len(am.ballSprites)]
}

// GetCardSprite returns the sprite for a card name
func (am *AssetManager) GetCardSprite(name string) common.Drawable {
	return am.cardSprites[name]
}
