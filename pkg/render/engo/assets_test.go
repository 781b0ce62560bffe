package engo

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAssetManager(t *testing.T) {
	am := NewAssetManager()

	assert.NotNil(t, am.ballSprites)
	assert.NotNil(t, am.cardSprites)
	assert.Empty(t, am.ballSprites)
	assert.Nil(t, am.GetCardSprite("hearts-king"), "nothing is loaded without a GL context")
}

func TestBallColor(t *testing.T) {
	tests := []struct {
		name    string
		number  int
		color   color.RGBA
		striped bool
	}{
		{"one_is_solid_yellow", 1, ballColors[1], false},
		{"eight_is_black", 8, ballColors[8], false},
		{"nine_is_striped_yellow", 9, ballColors[1], true},
		{"fifteen_is_striped_maroon", 15, ballColors[7], true},
		{"sixteen_is_cue", 16, ballColors[0], false},
		{"out_of_set_is_cue", 40, ballColors[0], false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, striped := BallColor(tt.number)
			assert.Equal(t, tt.color, c)
			assert.Equal(t, tt.striped, striped)
		})
	}
}

func TestBallImage(t *testing.T) {
	const d = 40
	img := BallImage(3, d)

	assert.Equal(t, d, img.Bounds().Dx())
	assert.Equal(t, d, img.Bounds().Dy())

	red := color.NRGBA(ballColors[3])
	assert.Equal(t, red, img.NRGBAAt(d/2, d*3/4), "body")
	assert.Equal(t, color.NRGBA(ballWhite), img.NRGBAAt(d/2, d/4), "spot")
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A, "corners are transparent")
}

func TestBallImage_Stripes(t *testing.T) {
	const d = 40
	img := BallImage(11, d)

	assert.Equal(t, color.NRGBA(ballColors[3]), img.NRGBAAt(d/2+6, d/2), "band")
	assert.Equal(t, color.NRGBA(ballWhite), img.NRGBAAt(d/2, d-3), "cap")
}

func TestCardImage(t *testing.T) {
	img := CardImage(48, 67)

	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 67, img.Bounds().Dy())
	assert.Equal(t, color.NRGBA(heartsRed), img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA(heartsRed), img.NRGBAAt(47, 66))
	assert.Equal(t, color.NRGBA(cardWhite), img.NRGBAAt(24, 33))
}

func TestCardTint(t *testing.T) {
	assert.Equal(t, uint8(51), CardTint(0.2).A)
	assert.Equal(t, uint8(255), CardTint(1).A)
	assert.Equal(t, uint8(0), CardTint(0).A)
}
