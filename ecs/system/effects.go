package system

import (
	"time"

	"github.com/milk9111/arena3d/ecs/component"
)

// EffectQueue holds the transient effects the renderer and audio layer read
// each frame. Entries leave the queue once their expiry time has passed.
type EffectQueue struct {
	items []component.Effect
}

func NewEffectQueue() *EffectQueue {
	return &EffectQueue{}
}

func (q *EffectQueue) Push(effect component.Effect) {
	if q == nil {
		return
	}
	q.items = append(q.items, effect)
}

// Prune drops expired effects and returns how many were removed.
func (q *EffectQueue) Prune(now time.Duration) int {
	if q == nil {
		return 0
	}
	kept := q.items[:0]
	for _, e := range q.items {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	removed := len(q.items) - len(kept)
	clear(q.items[len(kept):])
	q.items = kept
	return removed
}

// Active returns a copy of the queued effects in push order.
func (q *EffectQueue) Active() []component.Effect {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	return append([]component.Effect(nil), q.items...)
}

func (q *EffectQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
