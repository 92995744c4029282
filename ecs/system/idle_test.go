package system

import (
	"errors"
	"io"
	"testing"

	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spinScript = `yaw = yaw + delta * rate`

type scriptSource struct {
	files map[string]string
	loads int
}

func (s *scriptSource) load(name string) ([]byte, error) {
	s.loads++
	src, ok := s.files[name]
	if !ok {
		return nil, errors.New("missing script " + name)
	}
	return []byte(src), nil
}

func spawnIdle(t *testing.T, w *ecs.World, idle component.Idle) (*component.Transform, *component.Health) {
	t.Helper()
	e := ecs.CreateEntity(w)
	tr := &component.Transform{}
	h := component.NewHealth(100)
	require.NoError(t, ecs.Add(w, e, component.IdleComponent.Kind(), &idle))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), tr))
	require.NoError(t, ecs.Add(w, e, component.HealthComponent.Kind(), h))
	return tr, h
}

func TestIdleSpinsWithoutScript(t *testing.T) {
	w := ecs.NewWorld()
	tr, _ := spawnIdle(t, w, component.Idle{SpinRate: 2})

	s := NewIdleSystem(nil, logging.New(io.Discard, "error"))
	s.Update(w, 0.25)
	s.Update(w, 0.25)
	assert.InDelta(t, 1.0, tr.Yaw, 1e-12)

	s.Update(w, 0)
	s.Update(w, -1)
	assert.InDelta(t, 1.0, tr.Yaw, 1e-12)
}

func TestIdleRunsScript(t *testing.T) {
	w := ecs.NewWorld()
	tr, _ := spawnIdle(t, w, component.Idle{SpinRate: 4, Script: "spin"})
	src := &scriptSource{files: map[string]string{"spin": spinScript}}

	s := NewIdleSystem(src.load, logging.New(io.Discard, "error"))
	for i := 0; i < 4; i++ {
		s.Update(w, 0.125)
	}
	assert.InDelta(t, 2.0, tr.Yaw, 1e-12)
	assert.Equal(t, 1, src.loads, "compiled scripts are cached")
}

func TestIdleScriptFailuresFallBackToSpin(t *testing.T) {
	cases := []struct {
		name string
		src  map[string]string
	}{
		{"missing", map[string]string{}},
		{"syntax", map[string]string{"spin": `yaw = `}},
		{"runtime", map[string]string{"spin": `yaw = undefined_fn()`}},
		{"wrong type", map[string]string{"spin": `yaw = "north"`}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			tr, _ := spawnIdle(t, w, component.Idle{SpinRate: 1, Script: "spin"})
			src := &scriptSource{files: c.src}

			s := NewIdleSystem(src.load, logging.New(io.Discard, "error"))
			s.Update(w, 0.5)
			s.Update(w, 0.5)
			assert.InDelta(t, 1.0, tr.Yaw, 1e-12)
			assert.LessOrEqual(t, src.loads, 1, "failed scripts are not retried every tick")
		})
	}
}

func TestIdleInvalidateReloadsScript(t *testing.T) {
	w := ecs.NewWorld()
	tr, _ := spawnIdle(t, w, component.Idle{SpinRate: 1, Script: "spin"})
	src := &scriptSource{files: map[string]string{"spin": `yaw = yaw + delta`}}

	s := NewIdleSystem(src.load, logging.New(io.Discard, "error"))
	s.Update(w, 0.5)
	assert.InDelta(t, 0.5, tr.Yaw, 1e-12)

	src.files["spin"] = `yaw = yaw - delta`
	s.Invalidate("spin")
	s.Update(w, 0.5)
	assert.InDelta(t, 0.0, tr.Yaw, 1e-12)
	assert.Equal(t, 2, src.loads)
}

func TestIdleSkipsDeadActors(t *testing.T) {
	w := ecs.NewWorld()
	tr, h := spawnIdle(t, w, component.Idle{SpinRate: 1})
	require.True(t, h.ApplyDamage(100))

	s := NewIdleSystem(nil, logging.New(io.Discard, "error"))
	s.Update(w, 1)
	assert.Zero(t, tr.Yaw)
}
