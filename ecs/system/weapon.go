package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs/component"
)

// muzzleOffset places the flash at the barrel tip in view space.
var muzzleOffset = mgl64.Vec3{0.5, -0.4, -1.6}

// WeaponController runs the Ready/Cooldown state machine of a gun that fires
// an instant hitscan ray and a visible projectile on every shot.
type WeaponController struct {
	weapon component.Weapon
	fx     component.WeaponFX
	view   Viewpoint
	pool   *ProjectilePool
	combat *Combat
}

func NewWeaponController(weapon component.Weapon, fx component.WeaponFX, view Viewpoint, pool *ProjectilePool, combat *Combat) *WeaponController {
	if combat == nil {
		combat = &Combat{}
	}
	if pool == nil {
		pool = NewProjectilePool(DefaultPoolConfig(), weapon.DamagePerHit, combat)
	}
	return &WeaponController{
		weapon: weapon,
		fx:     fx,
		view:   view,
		pool:   pool,
		combat: combat,
	}
}

// Fire attempts a shot. It returns false while the weapon is cooling down.
func (w *WeaponController) Fire() bool {
	if w.view == nil || w.weapon.State() == component.WeaponCooldown {
		return false
	}
	w.weapon.CooldownRemaining = w.weapon.FireRatePeriod

	c := w.combat
	now := c.now()
	pose := w.view.Pose()
	forward := pose.Forward()

	c.push(component.Effect{
		Kind:      component.EffectMuzzleFlash,
		Position:  pose.Position.Add(pose.Orientation.Rotate(muzzleOffset)),
		Normal:    forward,
		SpawnedAt: now,
		ExpiresAt: now + w.fx.MuzzleFlash,
	})
	c.push(component.Effect{Kind: component.EffectShotSound, Position: pose.Position, SpawnedAt: now, ExpiresAt: now})
	c.Metrics.Shot()

	w.pool.Spawn(pose, w.weapon.BulletSpeed, w.weapon.BulletLifetime)

	if c.World == nil {
		return true
	}
	hit, ok := c.World.Raycast(pose.Position, forward, math.Inf(1))
	if !ok {
		return true
	}

	size := w.fx.MarkerSize(hit.Distance)
	c.push(component.Effect{
		Kind:      component.EffectHitMarker,
		Position:  hit.Point.Add(hit.Normal.Mul(size / 2)),
		Normal:    hit.Normal,
		Size:      size,
		SpawnedAt: now,
		ExpiresAt: now + w.fx.HitMarker,
	})
	c.applyHit(component.HitPathHitscan, hit, w.weapon.DamagePerHit)
	return true
}

// Tick counts the cooldown down (never below zero), advances the projectiles
// and culls the ones that left the weapon's range.
func (w *WeaponController) Tick(dt float64) {
	w.weapon.CooldownRemaining = math.Max(0, w.weapon.CooldownRemaining-dt)
	if w.weapon.CooldownRemaining <= component.CooldownEpsilon {
		w.weapon.CooldownRemaining = 0
	}
	w.pool.Advance(dt)
	if w.view != nil {
		w.pool.CullOutOfRange(w.view.Pose().Position, w.weapon.MaxRange)
	}
}

func (w *WeaponController) State() component.WeaponState {
	return w.weapon.State()
}

func (w *WeaponController) Weapon() component.Weapon {
	return w.weapon
}

func (w *WeaponController) Pool() *ProjectilePool {
	return w.pool
}

// ApplyTuning swaps the weapon tuning while keeping the running cooldown.
func (w *WeaponController) ApplyTuning(weapon component.Weapon, fx component.WeaponFX) {
	weapon.CooldownRemaining = w.weapon.CooldownRemaining
	w.weapon = weapon
	w.fx = fx
	w.pool.SetDamage(weapon.DamagePerHit)
}
