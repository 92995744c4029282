package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/stretchr/testify/require"
)

type fixedView component.Pose

func (v fixedView) Pose() component.Pose { return component.Pose(v) }

func viewAt(pos mgl64.Vec3, yaw, pitch float64) fixedView {
	return fixedView(component.NewPose(pos, yaw, pitch))
}

// spawnTarget creates an actor with health and a child body part, the way the
// arena builder does.
func spawnTarget(t *testing.T, w *ecs.World, hp int) (actor, body ecs.Entity, health *component.Health) {
	t.Helper()
	actor = ecs.CreateEntity(w)
	health = component.NewHealth(hp)
	require.NoError(t, ecs.Add(w, actor, component.TagComponent.Kind(), &component.Tag{Kind: component.KindEntity, Name: "target"}))
	require.NoError(t, ecs.Add(w, actor, component.HealthComponent.Kind(), health))

	body = ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, body, component.TagComponent.Kind(), &component.Tag{Kind: component.KindEntity, Name: "target_body"}))
	require.NoError(t, ecs.SetParent(w, body, actor))
	return actor, body, health
}

func spawnProp(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	prop := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, prop, component.TagComponent.Kind(), &component.Tag{Kind: component.KindStaticProp, Name: "crate"}))
	return prop
}

type eventLog struct {
	events []component.CombatEvent
}

func (l *eventLog) handler(evt component.CombatEvent) {
	l.events = append(l.events, evt)
}

func (l *eventLog) count(typ component.CombatEventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
