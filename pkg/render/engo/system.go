package engo

import (
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/entity"
)

// maxCatchUp bounds the ticks run in a single frame after a stall
const maxCatchUp = 5

// Table is the part of the simulation the frame loop drives
type Table interface {
	Tick()
	Render(r entity.Renderer)
}

// SimulationSystem ticks the table at a fixed interval from Engo's
// variable frame time and redraws after each frame that ticked.
type SimulationSystem struct {
	table    Table
	renderer entity.Renderer
	interval float32
	pending  float32
	drawn    bool
}

// NewSimulationSystem creates a system ticking table every interval
func NewSimulationSystem(table Table, renderer entity.Renderer, interval time.Duration) *SimulationSystem {
	return &SimulationSystem{
		table:    table,
		renderer: renderer,
		interval: float32(interval.Seconds()),
	}
}

// Update satisfies the ecs.System interface. dt is in seconds.
func (s *SimulationSystem) Update(dt float32) {
	s.pending += dt

	ticks := 0
	for s.pending >= s.interval && ticks < maxCatchUp {
		s.table.Tick()
		s.pending -= s.interval
		ticks++
	}
	if s.pending >= s.interval {
		// drop the backlog rather than spiral
		s.pending = 0
	}

	if ticks > 0 || !s.drawn {
		s.table.Render(s.renderer)
		s.drawn = true
	}
}

// Remove satisfies the ecs.System interface
func (s *SimulationSystem) Remove(ecs.BasicEntity) {}
