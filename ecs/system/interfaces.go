package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . Raycaster,EffectSink,Viewpoint

// Raycaster answers nearest-hit ray queries against the collidable set. A
// maxDist of +Inf is unbounded.
type Raycaster interface {
	Raycast(origin, dir mgl64.Vec3, maxDist float64) (component.RayHit, bool)
}

// EffectSink receives transient render and audio intents.
type EffectSink interface {
	Push(effect component.Effect)
}

// Viewpoint exposes the pose shots are fired from.
type Viewpoint interface {
	Pose() component.Pose
}

// DamageResolver maps an intersected object to the damageable actor that owns
// it.
type DamageResolver interface {
	ResolveDamageable(object ecs.Entity) (ecs.Entity, *component.Health, bool)
}

type worldResolver struct {
	w *ecs.World
}

// NewWorldResolver resolves damageable owners through the world's ownership
// tree.
func NewWorldResolver(w *ecs.World) DamageResolver {
	return worldResolver{w: w}
}

func (r worldResolver) ResolveDamageable(object ecs.Entity) (ecs.Entity, *component.Health, bool) {
	return ecs.ResolveDamageable(r.w, object)
}

type nopSink struct{}

func (nopSink) Push(component.Effect) {}

func sinkOrNop(s EffectSink) EffectSink {
	if s == nil {
		return nopSink{}
	}
	return s
}
