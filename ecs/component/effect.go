package component

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

type EffectKind uint8

const (
	EffectMuzzleFlash EffectKind = iota + 1
	EffectHitMarker
	EffectShotSound
	EffectHitSound
)

func (k EffectKind) String() string {
	switch k {
	case EffectMuzzleFlash:
		return "muzzle_flash"
	case EffectHitMarker:
		return "hit_marker"
	case EffectShotSound:
		return "shot_sound"
	case EffectHitSound:
		return "hit_sound"
	default:
		return "unknown"
	}
}

// Effect is a transient render or audio intent. Times are on the simulation
// clock; sounds have a zero duration and live until the next prune.
type Effect struct {
	Kind      EffectKind
	Position  mgl64.Vec3
	Normal    mgl64.Vec3
	Size      float64
	SpawnedAt time.Duration
	ExpiresAt time.Duration
}

func (e Effect) Expired(now time.Duration) bool {
	return now >= e.ExpiresAt && now > e.SpawnedAt
}
