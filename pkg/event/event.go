// pkg/event/event.go
package event

import (
	"sync"

	"github.com/google/uuid"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	BallBounced       Type = "ball_bounced"
	BallsCollided     Type = "balls_collided"
	CardBounced       Type = "card_bounced"
	SimulationStarted Type = "simulation_started"
	SimulationStopped Type = "simulation_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

type registration struct {
	id      string
	handler Handler
}

// Subscription identifies a registered handler
type Subscription struct {
	ID        string
	EventType Type
	bus       *Bus
}

// Cancel removes the handler from the bus. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	s.bus.Unsubscribe(s.EventType, s.ID)
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine, in subscription order.
type Bus struct {
	handlers map[Type][]registration
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{ID: id, EventType: eventType, bus: b}
}

// Unsubscribe removes the handler registered under id
func (b *Bus) Unsubscribe(eventType Type, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// BounceEvent reports a body hitting a wall
type BounceEvent struct {
	BaseEvent
	EntityID uint64
	Tick     uint64
}

// NewBounceEvent creates a ball or card bounce event
func NewBounceEvent(eventType Type, source interface{}, entityID, tick uint64) *BounceEvent {
	return &BounceEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		Tick:     tick,
	}
}

// CollisionEvent reports two balls exchanging motion. EntityA is the ball
// that was stepping.
type CollisionEvent struct {
	BaseEvent
	EntityA uint64
	EntityB uint64
	Tick    uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, entityA, entityB, tick uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: BallsCollided,
			Source:    source,
		},
		EntityA: entityA,
		EntityB: entityB,
		Tick:    tick,
	}
}

// LifecycleEvent reports a simulation run starting or stopping
type LifecycleEvent struct {
	BaseEvent
	RunID string
	Tick  uint64
}

// NewLifecycleEvent creates a start or stop event
func NewLifecycleEvent(eventType Type, source interface{}, runID string, tick uint64) *LifecycleEvent {
	return &LifecycleEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		RunID: runID,
		Tick:  tick,
	}
}
