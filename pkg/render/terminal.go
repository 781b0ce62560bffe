package render

import (
	"io"
	"strings"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/entity"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/physics"
)

const (
	clearScreen = "\033[H\033[2J"
	ballGlyphs  = "0123456789ABCDEF"
	cardGlyph   = ':'
	feltGlyph   = ' '
)

// TerminalRenderer draws the table as a grid of characters. Balls show as
// their number in hex, cards as a shaded rectangle underneath.
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
	buffer [][]rune
	scaleX float64
	scaleY float64
}

// NewTerminalRenderer creates a renderer mapping a fieldWidth x fieldHeight
// table onto a width x height character grid written to out.
func NewTerminalRenderer(out io.Writer, width, height int, fieldWidth, fieldHeight float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	r := &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
		buffer: buffer,
		scaleX: fieldWidth / float64(width),
		scaleY: fieldHeight / float64(height),
	}
	r.Clear()
	return r
}

// worldToScreen converts table coordinates to a grid cell
func (r *TerminalRenderer) worldToScreen(p physics.Point) (int, int) {
	return int(p.X / r.scaleX), int(p.Y / r.scaleY)
}

func (r *TerminalRenderer) inside(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = feltGlyph
		}
	}
}

// Present implements entity.Renderer. The frame is written in one call.
func (r *TerminalRenderer) Present() {
	border := "+" + strings.Repeat("-", r.width) + "+\n"

	var sb strings.Builder
	sb.Grow((r.width+3)*(r.height+2) + len(clearScreen))
	sb.WriteString(clearScreen)
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	// a failed write only loses one frame
	_, _ = io.WriteString(r.out, sb.String())
}

// RenderBall implements entity.Renderer
func (r *TerminalRenderer) RenderBall(ball *entity.Ball) {
	x, y := r.worldToScreen(ball.GetPosition())
	if r.inside(x, y) {
		r.buffer[y][x] = BallGlyph(ball.Number)
	}
}

// RenderCard implements entity.Renderer
func (r *TerminalRenderer) RenderCard(card *entity.Card) {
	x0, y0 := r.worldToScreen(card.GetPosition())
	x1, y1 := r.worldToScreen(physics.Point{
		X: card.Body.Position.X + card.Body.Width,
		Y: card.Body.Position.Y + card.Body.Height,
	})

	for y := max(y0, 0); y <= min(y1, r.height-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.width-1); x++ {
			r.buffer[y][x] = cardGlyph
		}
	}
}

// BallGlyph returns the character drawn for a ball number
func BallGlyph(number int) rune {
	return rune(ballGlyphs[number%len(ballGlyphs)])
}
