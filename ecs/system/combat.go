package system

import (
	"log/slog"
	"time"

	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/logging"
	"github.com/milk9111/arena3d/telemetry"
)

// Combat bundles the collaborators shared by the weapon and its projectiles.
// Only World and Resolver are required.
type Combat struct {
	World    Raycaster
	Resolver DamageResolver
	Effects  EffectSink
	Events   *component.CombatEventEmitter
	Clock    *Clock
	Metrics  *telemetry.Metrics
	Logger   *slog.Logger
}

func (c *Combat) now() time.Duration {
	return c.Clock.Now()
}

func (c *Combat) push(effect component.Effect) {
	sinkOrNop(c.Effects).Push(effect)
}

func (c *Combat) logger() *slog.Logger {
	return logging.OrDefault(c.Logger)
}

// applyHit damages the actor owning the hit object. Hits on objects without a
// damageable owner are dropped.
func (c *Combat) applyHit(path component.HitPath, hit component.RayHit, damage int) bool {
	if c == nil || c.Resolver == nil {
		return false
	}

	object := ecs.FromHandle(hit.Object)
	target, health, ok := c.Resolver.ResolveDamageable(object)
	if !ok {
		c.logger().Debug("combat: hit has no damageable owner", "path", path, "object", object)
		return false
	}

	wasAlive := health.IsAlive()
	if !health.ApplyDamage(damage) {
		return false
	}

	now := c.now()
	c.Metrics.Hit(string(path))
	c.push(component.Effect{Kind: component.EffectHitSound, Position: hit.Point, SpawnedAt: now, ExpiresAt: now})

	evt := component.CombatEvent{
		Type:      component.EventHit,
		Path:      path,
		TargetID:  target.Handle(),
		ObjectID:  hit.Object,
		Damage:    damage,
		Remaining: health.Current,
		Point:     hit.Point,
		At:        now,
	}
	c.Events.Emit(evt)

	if wasAlive && !health.IsAlive() {
		c.Metrics.Death()
		c.logger().Info("combat: entity died", "target", target, "path", path)
		evt.Type = component.EventDeath
		c.Events.Emit(evt)
	}
	return true
}
