package system

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arena3d/ecs"
	"github.com/milk9111/arena3d/ecs/component"
	"github.com/milk9111/arena3d/logging"
)

// ScriptLoader returns the source of a named idle script.
type ScriptLoader func(name string) ([]byte, error)

// IdleSystem ticks live actors. Actors with a script run it with the globals
// delta, yaw and rate and read yaw back; the rest spin at their SpinRate.
type IdleSystem struct {
	load    ScriptLoader
	scripts map[string]*tengo.Compiled
	failed  map[string]bool
	logger  *slog.Logger
}

func NewIdleSystem(load ScriptLoader, logger *slog.Logger) *IdleSystem {
	return &IdleSystem{
		load:    load,
		scripts: make(map[string]*tengo.Compiled),
		failed:  make(map[string]bool),
		logger:  logging.OrDefault(logger),
	}
}

func (s *IdleSystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || dt <= 0 {
		return
	}
	ecs.ForEach2(w, component.IdleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, idle *component.Idle, t *component.Transform) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.IsAlive() {
			return
		}

		script := strings.TrimSpace(idle.Script)
		if script == "" || s.failed[script] {
			t.Yaw += idle.SpinRate * dt
			return
		}

		yaw, err := s.run(script, t.Yaw, idle.SpinRate, dt)
		if err != nil {
			s.failed[script] = true
			s.logger.Warn("idle: script failed, falling back to spin", "entity", e, "script", script, "err", err)
			t.Yaw += idle.SpinRate * dt
			return
		}
		t.Yaw = yaw
	})
}

// Invalidate drops a cached script so the next tick recompiles it.
func (s *IdleSystem) Invalidate(name string) {
	name = strings.TrimSpace(name)
	delete(s.scripts, name)
	delete(s.failed, name)
}

func (s *IdleSystem) run(name string, yaw, rate, dt float64) (float64, error) {
	compiled, err := s.compiled(name)
	if err != nil {
		return 0, err
	}
	if err := compiled.Set("delta", dt); err != nil {
		return 0, err
	}
	if err := compiled.Set("yaw", yaw); err != nil {
		return 0, err
	}
	if err := compiled.Set("rate", rate); err != nil {
		return 0, err
	}
	if err := compiled.Run(); err != nil {
		return 0, err
	}
	v := compiled.Get("yaw")
	switch v.ValueType() {
	case "float", "int":
		return v.Float(), nil
	default:
		return 0, fmt.Errorf("yaw must be a number, got %s", v.ValueType())
	}
}

func (s *IdleSystem) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := s.scripts[name]; ok {
		return c, nil
	}
	if s.load == nil {
		return nil, fmt.Errorf("no script loader")
	}
	src, err := s.load(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	_ = script.Add("delta", 0.0)
	_ = script.Add("yaw", 0.0)
	_ = script.Add("rate", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	s.scripts[name] = compiled
	return compiled, nil
}
