// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
)

// exitButton is the Engo button bound to the keys that close the screensaver
const exitButton = "exit"

// mouseSlack is how far, in pixels, the mouse may drift before it counts
// as the user coming back
const mouseSlack = 8

// SetupExitControls registers the keys that close the screensaver
func SetupExitControls() {
	engo.Input.RegisterButton(exitButton, engo.KeyEscape, engo.KeySpace, engo.KeyEnter, engo.KeyQ)
}

// ExitSystem closes the screensaver on a key press or mouse movement
type ExitSystem struct {
	exit     func()
	anchored bool
	anchorX  float32
	anchorY  float32
}

// NewExitSystem creates an input system calling exit when the user returns
func NewExitSystem(exit func()) *ExitSystem {
	return &ExitSystem{exit: exit}
}

// Update satisfies the ecs.System interface
func (is *ExitSystem) Update(dt float32) {
	if engo.Input.Button(exitButton).JustPressed() {
		is.exit()
		return
	}
	if is.mouseMoved(engo.Input.Mouse.X, engo.Input.Mouse.Y) {
		is.exit()
	}
}

// mouseMoved reports whether the cursor left the slack area around the
// first position it was seen at
func (is *ExitSystem) mouseMoved(x, y float32) bool {
	if !is.anchored {
		is.anchorX, is.anchorY = x, y
		is.anchored = true
		return false
	}
	dx, dy := x-is.anchorX, y-is.anchorY
	return dx*dx+dy*dy > mouseSlack*mouseSlack
}

// Remove satisfies the ecs.System interface
func (is *ExitSystem) Remove(basic ecs.BasicEntity) {}
