package system

import (
	"testing"
	"time"

	"github.com/milk9111/arena3d/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestEffectQueuePrune(t *testing.T) {
	q := NewEffectQueue()
	q.Push(component.Effect{Kind: component.EffectMuzzleFlash, SpawnedAt: 0, ExpiresAt: 50 * time.Millisecond})
	q.Push(component.Effect{Kind: component.EffectShotSound, SpawnedAt: 10 * time.Millisecond, ExpiresAt: 10 * time.Millisecond})
	q.Push(component.Effect{Kind: component.EffectHitMarker, SpawnedAt: 0, ExpiresAt: 200 * time.Millisecond})

	assert.Equal(t, 0, q.Prune(10*time.Millisecond), "a zero-length effect survives the prune at its spawn time")
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, 1, q.Prune(20*time.Millisecond))
	assert.Equal(t, 1, q.Prune(50*time.Millisecond))

	active := q.Active()
	if assert.Len(t, active, 1) {
		assert.Equal(t, component.EffectHitMarker, active[0].Kind)
	}

	assert.Equal(t, 1, q.Prune(time.Second))
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Active())
}

func TestEffectQueueActiveIsACopy(t *testing.T) {
	q := NewEffectQueue()
	q.Push(component.Effect{Kind: component.EffectHitMarker, Size: 0.1, ExpiresAt: time.Second})

	active := q.Active()
	active[0].Size = 5
	assert.Equal(t, 0.1, q.Active()[0].Size)
}

func TestEffectQueueNilSafe(t *testing.T) {
	var q *EffectQueue
	q.Push(component.Effect{})
	assert.Zero(t, q.Prune(time.Second))
	assert.Zero(t, q.Len())
	assert.Nil(t, q.Active())
}

func TestClock(t *testing.T) {
	var c Clock
	c.Advance(0.25)
	c.Advance(-1)
	c.Advance(0)
	assert.Equal(t, 250*time.Millisecond, c.Now())

	var nilClock *Clock
	nilClock.Advance(1)
	assert.Zero(t, nilClock.Now())
}
