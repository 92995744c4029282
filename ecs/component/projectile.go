package component

import "github.com/go-gl/mathgl/mgl64"

// Projectile is one slot of the projectile pool. Seq orders spawns so the
// pool can evict the oldest active slot.
type Projectile struct {
	Active    bool
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Remaining float64
	Seq       uint64
}
