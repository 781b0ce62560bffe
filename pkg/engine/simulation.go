// pkg/engine/simulation.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dsaiko/billiard-balls-screensaver/pkg/config"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/entity"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/event"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/logging"
	"github.com/dsaiko/billiard-balls-screensaver/pkg/physics"
)

// ErrBodiesDoNotFit is returned when random placement runs out of attempts
var ErrBodiesDoNotFit = errors.New("bodies do not fit in field")

// BallState is a copy of a ball's state at the end of a tick
type BallState struct {
	ID       uint64
	Number   int
	Radius   float64
	Position physics.Point
	Motion   physics.Vector2D
	Twist    float64
}

// Simulation owns the table: balls, cards and the event bus. Tick is
// single-writer; mu lets a host render from another goroutine.
type Simulation struct {
	Config   *config.Config
	Balls    []*entity.Ball
	Cards    []*entity.Card
	EventBus *event.Bus

	bodies []*physics.Ball
	byID   map[uint64]*entity.Ball
	rng    *rand.Rand
	logger *logging.Logger
	tick   uint64
	mu     sync.RWMutex
}

// NewRand returns a generator for seed. Seed 0 draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSimulation validates cfg and places every ball and card. A nil rng is
// replaced by one seeded from cfg, a nil logger discards output.
func NewSimulation(cfg *config.Config, rng *rand.Rand, logger *logging.Logger) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(cfg.Simulation.Seed)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	s := &Simulation{
		Config:   cfg,
		EventBus: event.NewEventBus(),
		byID:     make(map[uint64]*entity.Ball),
		rng:      rng,
		logger:   logger.With("component", "simulation"),
	}

	if err := s.placeBalls(); err != nil {
		return nil, err
	}
	s.placeCards()
	s.registerEventHandlers()

	s.logger.Info(context.Background(), "table ready",
		"balls", len(s.Balls),
		"cards", len(s.Cards),
		"radius", cfg.BallRadius(),
		"field_width", cfg.Field.Width,
		"field_height", cfg.Field.Height,
	)
	return s, nil
}

// placeBalls drops balls at uniform random positions, rejecting any that
// would touch a ball already on the table.
func (s *Simulation) placeBalls() error {
	cfg := s.Config
	radius := cfg.BallRadius()

	for i := 0; i < cfg.Balls.Count; i++ {
		body := physics.NewBall(uint64(i+1), radius, cfg.Field.Width, cfg.Field.Height)

		pos, ok := s.freeSpot(body)
		if !ok {
			return fmt.Errorf("%w: placed %d of %d balls after %d attempts",
				ErrBodiesDoNotFit, i, cfg.Balls.Count, cfg.Simulation.MaxPlacementAttempts)
		}
		body.Position = pos

		speed := (cfg.Balls.SpeedMin + s.rng.Float64()*cfg.Balls.SpeedRange) * radius / 25
		body.Motion = physics.NewDirection(0, speed).Rotate(degToRad(float64(s.rng.IntN(360))))

		ball := entity.NewBall(i+1, body, float64(s.rng.IntN(360)))
		s.Balls = append(s.Balls, ball)
		s.bodies = append(s.bodies, body)
		s.byID[body.ID] = ball
	}
	return nil
}

func (s *Simulation) freeSpot(body *physics.Ball) (physics.Point, bool) {
	b := body.Bounds
	for attempt := 0; attempt < s.Config.Simulation.MaxPlacementAttempts; attempt++ {
		p := physics.Point{
			X: b.MinX + s.rng.Float64()*(b.MaxX-b.MinX),
			Y: b.MinY + s.rng.Float64()*(b.MaxY-b.MinY),
		}
		if !s.overlaps(body, p) {
			return p, true
		}
	}
	return physics.Point{}, false
}

func (s *Simulation) overlaps(body *physics.Ball, p physics.Point) bool {
	for _, other := range s.bodies {
		if body.Touches(p, other) {
			return true
		}
	}
	return false
}

// placeCards drops cards anywhere inside their bounds, moving diagonally
func (s *Simulation) placeCards() {
	cfg := s.Config
	cw, ch := cfg.CardWidth(), cfg.CardHeight()
	speed := cw * cfg.Cards.SpeedRatio

	for i, name := range cfg.Cards.Names {
		body := physics.NewCard(uint64(cfg.Balls.Count+i+1), cw, ch, cfg.Field.Width, cfg.Field.Height)
		body.Position = physics.Point{
			X: body.Bounds.MinX + s.rng.Float64()*(body.Bounds.MaxX-body.Bounds.MinX),
			Y: body.Bounds.MinY + s.rng.Float64()*(body.Bounds.MaxY-body.Bounds.MinY),
		}

		switch s.rng.IntN(4) {
		case 0:
			body.Motion = physics.NewDirection(speed, speed)
		case 1:
			body.Motion = physics.NewDirection(-speed, speed)
		case 2:
			body.Motion = physics.NewDirection(-speed, -speed)
		default:
			body.Motion = physics.NewDirection(speed, -speed)
		}

		s.Cards = append(s.Cards, &entity.Card{
			Name:    name,
			Body:    body,
			Opacity: cfg.Cards.Opacity,
		})
	}
}

// registerEventHandlers restarts a ball's spin whenever its motion changes
// direction.
func (s *Simulation) registerEventHandlers() {
	s.EventBus.Subscribe(event.BallBounced, func(e event.Event) {
		if ev, ok := e.(*event.BounceEvent); ok {
			s.resetSpin(ev.EntityID)
		}
	})
	s.EventBus.Subscribe(event.BallsCollided, func(e event.Event) {
		if ev, ok := e.(*event.CollisionEvent); ok {
			s.resetSpin(ev.EntityA)
			s.resetSpin(ev.EntityB)
		}
	})
}

func (s *Simulation) resetSpin(id uint64) {
	if ball, ok := s.byID[id]; ok {
		ball.Spin.Reset(ball.Body.Motion)
	}
}

// Tick advances the table by one step. Balls move in insertion order and
// each sees the positions and motions its predecessors left this tick.
func (s *Simulation) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tick++

	collisions := 0
	for _, ball := range s.Balls {
		result := ball.Body.Step(s.bodies)
		ball.Spin.Roll(result.RollDegrees)

		if result.Bounced {
			s.EventBus.Publish(event.NewBounceEvent(event.BallBounced, s, ball.Body.ID, s.tick))
		}
		for _, peer := range result.Collisions {
			collisions++
			s.EventBus.Publish(event.NewCollisionEvent(s, ball.Body.ID, peer.ID, s.tick))
		}
	}

	for _, card := range s.Cards {
		if card.Body.Step() {
			s.EventBus.Publish(event.NewBounceEvent(event.CardBounced, s, card.Body.ID, s.tick))
		}
	}

	s.logger.Debug(context.Background(), "tick", "tick", s.tick, "collisions", collisions)
}

// CurrentTick returns the number of ticks performed so far
func (s *Simulation) CurrentTick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tick
}

// Snapshot copies the state of every ball
func (s *Simulation) Snapshot() []BallState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]BallState, 0, len(s.Balls))
	for _, ball := range s.Balls {
		states = append(states, BallState{
			ID:       ball.Body.ID,
			Number:   ball.Number,
			Radius:   ball.Body.Radius,
			Position: ball.Body.Position,
			Motion:   ball.Body.Motion,
			Twist:    ball.Spin.Twist(),
		})
	}
	return states
}

// Render draws one frame: cards below balls
func (s *Simulation) Render(r entity.Renderer) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r.Clear()
	for _, card := range s.Cards {
		card.Render(r)
	}
	for _, ball := range s.Balls {
		ball.Render(r)
	}
	r.Present()
}

// Run ticks at the configured interval and renders after every tick until
// ctx is cancelled or MaxTicks is reached. A nil renderer skips drawing.
func (s *Simulation) Run(ctx context.Context, r entity.Renderer) error {
	runID := logging.GenerateCorrelationID()
	ctx = logging.WithCorrelationID(ctx, runID)

	s.logger.Info(ctx, "simulation started", "tick_interval", s.Config.TickInterval())
	s.EventBus.Publish(event.NewLifecycleEvent(event.SimulationStarted, s, runID, s.CurrentTick()))

	ticker := time.NewTicker(s.Config.TickInterval())
	defer ticker.Stop()

	if r != nil {
		s.Render(r)
	}

	var err error
loop:
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		case <-ticker.C:
			s.Tick()
			if r != nil {
				s.Render(r)
			}
			if limit := s.Config.Simulation.MaxTicks; limit > 0 && s.CurrentTick() >= limit {
				break loop
			}
		}
	}

	tick := s.CurrentTick()
	s.EventBus.Publish(event.NewLifecycleEvent(event.SimulationStopped, s, runID, tick))
	s.logger.Info(ctx, "simulation stopped", "ticks", tick)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
