package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit   CombatEventType = "hit"
	EventDeath CombatEventType = "death"
)

// HitPath tells which part of a shot landed the hit.
type HitPath string

const (
	HitPathHitscan    HitPath = "hitscan"
	HitPathProjectile HitPath = "projectile"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type      CombatEventType
	Path      HitPath
	TargetID  uint64
	ObjectID  uint64
	Damage    int
	Remaining int
	Point     mgl64.Vec3
	At        time.Duration
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe adds a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
