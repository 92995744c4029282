package prefabs

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/logging"
	"github.com/milk9111/arena3d/physics"
	"golang.org/x/image/colornames"
)

const (
	defaultEnemyRadius = 0.5
	defaultEnemyHeight = 2
)

// Enemy is a damageable actor. Body is the collidable part that hits land
// on; damage is routed to Actor through the ownership tree.
type Enemy struct {
	Name  string
	Actor ecs.Entity
	Body  ecs.Entity
	Color color.Color
}

type Prop struct {
	Name     string
	Entity   ecs.Entity
	Collider component.Collider
	Color    color.Color
}

// Arena is a built arena. Physics holds every collider; enemies lose theirs
// when they die.
type Arena struct {
	Name    string
	Ground  ecs.Entity
	Props   []Prop
	Enemies []Enemy
	Physics *physics.World

	GroundHeight float64
	GroundColor  color.Color
}

// BuildArena creates the arena's entities in w and registers their colliders
// in a new physics world.
func BuildArena(w *ecs.World, spec *ArenaSpec, logger *slog.Logger) (*Arena, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("prefabs: build arena: nil world or spec")
	}
	logger = logging.OrDefault(logger)

	pw := physics.NewWorld()
	arena := &Arena{
		Name:         spec.Name,
		Physics:      pw,
		GroundHeight: spec.Ground.Height,
		GroundColor:  spec.Ground.Color.Or(colornames.Darkolivegreen),
	}

	ground, err := newTagged(w, component.KindStaticProp, "ground")
	if err != nil {
		return nil, fmt.Errorf("prefabs: build arena ground: %w", err)
	}
	pw.SetGround(ground.Handle(), spec.Ground.Height)
	arena.Ground = ground

	for _, p := range spec.Props {
		c, err := p.Collider()
		if err != nil {
			return nil, fmt.Errorf("prefabs: build arena: %w", err)
		}
		e, err := newTagged(w, component.KindStaticProp, p.Name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: build prop %q: %w", p.Name, err)
		}
		if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &c); err != nil {
			return nil, fmt.Errorf("prefabs: build prop %q: %w", p.Name, err)
		}
		if !pw.Add(e.Handle(), c) {
			return nil, fmt.Errorf("prefabs: build prop %q: degenerate collider", p.Name)
		}
		arena.Props = append(arena.Props, Prop{Name: p.Name, Entity: e, Collider: c, Color: p.Color.Or(colornames.Slategray)})
	}

	for i, es := range spec.Enemies {
		name := es.Name
		if name == "" {
			name = fmt.Sprintf("enemy_%d", i)
		}
		enemy, err := buildEnemy(w, pw, es, name, logger)
		if err != nil {
			return nil, fmt.Errorf("prefabs: build enemy %q: %w", name, err)
		}
		arena.Enemies = append(arena.Enemies, enemy)
	}

	logger.Info("arena built", "arena", spec.Name, "props", len(arena.Props), "enemies", len(arena.Enemies))
	return arena, nil
}

func buildEnemy(w *ecs.World, pw *physics.World, spec EnemySpec, name string, logger *slog.Logger) (Enemy, error) {
	radius := spec.Radius
	if radius <= 0 {
		radius = defaultEnemyRadius
	}
	height := spec.Height
	if height <= 0 {
		height = defaultEnemyHeight
	}

	actor, err := newTagged(w, component.KindEntity, name)
	if err != nil {
		return Enemy{}, err
	}
	pos := spec.Position.Vec3()
	health := component.NewHealth(spec.Health)
	if err := ecs.Add(w, actor, component.HealthComponent.Kind(), health); err != nil {
		return Enemy{}, err
	}
	if err := ecs.Add(w, actor, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		return Enemy{}, err
	}
	if err := ecs.Add(w, actor, component.IdleComponent.Kind(), &component.Idle{SpinRate: spec.SpinRate, Script: spec.Script}); err != nil {
		return Enemy{}, err
	}

	body, err := newTagged(w, component.KindEntity, name+"_body")
	if err != nil {
		return Enemy{}, err
	}
	c := component.CylinderCollider(pos.Add(mgl64.Vec3{0, height / 2, 0}), radius, height)
	if err := ecs.Add(w, body, component.ColliderComponent.Kind(), &c); err != nil {
		return Enemy{}, err
	}
	if err := ecs.SetParent(w, body, actor); err != nil {
		return Enemy{}, err
	}
	if !pw.Add(body.Handle(), c) {
		return Enemy{}, fmt.Errorf("degenerate collider")
	}

	health.OnDeath = func(*component.Health) {
		for _, part := range ecs.Children(w, actor) {
			pw.RemoveCollidable(part.Handle())
		}
		logger.Info("enemy down", "enemy", name, "actor", actor)
	}

	return Enemy{Name: name, Actor: actor, Body: body, Color: spec.Color.Or(colornames.Crimson)}, nil
}

func newTagged(w *ecs.World, kind component.Kind, name string) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Kind: kind, Name: name}); err != nil {
		return 0, err
	}
	return e, nil
}
