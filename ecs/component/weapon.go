package component

import "time"

type WeaponState uint8

const (
	WeaponReady WeaponState = iota
	WeaponCooldown
)

func (s WeaponState) String() string {
	if s == WeaponCooldown {
		return "cooldown"
	}
	return "ready"
}

// Weapon holds the cooldown timer and the tuning of a hitscan-plus-projectile
// gun. Durations are in seconds.
type Weapon struct {
	CooldownRemaining float64
	DamagePerHit      int
	FireRatePeriod    float64
	MaxRange          float64
	BulletSpeed       float64
	BulletLifetime    float64
}

var WeaponComponent = NewComponent[Weapon]()

func DefaultWeapon() Weapon {
	return Weapon{
		DamagePerHit:   25,
		FireRatePeriod: 0.2,
		MaxRange:       100,
		BulletSpeed:    50,
		BulletLifetime: 2,
	}
}

// CooldownEpsilon absorbs the residue left by subtracting float frame times
// from the fire-rate period.
const CooldownEpsilon = 1e-9

func (w *Weapon) State() WeaponState {
	if w == nil || w.CooldownRemaining <= CooldownEpsilon {
		return WeaponReady
	}
	return WeaponCooldown
}

// WeaponFX sizes and times the transient effects of a shot.
type WeaponFX struct {
	MuzzleFlash      time.Duration
	HitMarker        time.Duration
	HitMarkerMaxSize float64
	HitMarkerScale   float64
}

func DefaultWeaponFX() WeaponFX {
	return WeaponFX{
		MuzzleFlash:      50 * time.Millisecond,
		HitMarker:        200 * time.Millisecond,
		HitMarkerMaxSize: 0.1,
		HitMarkerScale:   0.02,
	}
}

// MarkerSize grows with distance up to HitMarkerMaxSize.
func (fx WeaponFX) MarkerSize(distance float64) float64 {
	return min(fx.HitMarkerMaxSize, fx.HitMarkerScale*distance)
}
