package ecs

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/arena3d/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", reused.id(), old.id())
	}
	if reused == old {
		t.Fatalf("expected a new generation for reused id")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if _, ok := Get(w, reused, h.Kind()); ok {
		t.Fatalf("components of the destroyed entity leaked into the reused id")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, h1.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	var zero component.ComponentKind[int]
	if err := Add(w, e1, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	g := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	for _, step := range []error{
		Add(w, e1, h.Kind(), intPtr(1)),
		Add(w, e3, h.Kind(), intPtr(3)),
		Add(w, e3, g.Kind(), stringPtr("c")),
		Add(w, e2, g.Kind(), stringPtr("b")),
	} {
		if step != nil {
			t.Fatalf("add failed: %v", step)
		}
	}

	t.Run("single", func(t *testing.T) {
		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
			t.Fatalf("expected [e1 e3], got %v", ents)
		}
	})

	t.Run("pair", func(t *testing.T) {
		var ents []Entity
		ForEach2(w, h.Kind(), g.Kind(), func(e Entity, _ *int, s *string) { ents = append(ents, e) })
		if len(ents) != 1 || ents[0] != e3 {
			t.Fatalf("expected only e3, got %v", ents)
		}
	})

	t.Run("remove_during_iteration", func(t *testing.T) {
		ForEach(w, h.Kind(), func(e Entity, _ *int) { Remove(w, e, h.Kind()) })
		count := 0
		ForEach(w, h.Kind(), func(Entity, *int) { count++ })
		if count != 0 {
			t.Fatalf("expected store to be empty, got %d", count)
		}
	})
}

func TestResolveDamageable(t *testing.T) {
	w := NewWorld()

	actor := CreateEntity(w)
	mustAdd(t, Add(w, actor, component.TagComponent.Kind(), &component.Tag{Kind: component.KindEntity}))
	mustAdd(t, Add(w, actor, component.HealthComponent.Kind(), component.NewHealth(100)))

	body := CreateEntity(w)
	mustAdd(t, Add(w, body, component.TagComponent.Kind(), &component.Tag{Kind: component.KindEntity}))
	mustAdd(t, SetParent(w, body, actor))

	armour := CreateEntity(w)
	mustAdd(t, Add(w, armour, component.TagComponent.Kind(), &component.Tag{Kind: component.KindStaticProp}))
	mustAdd(t, SetParent(w, armour, body))

	prop := CreateEntity(w)
	mustAdd(t, Add(w, prop, component.TagComponent.Kind(), &component.Tag{Kind: component.KindStaticProp}))
	mustAdd(t, Add(w, prop, component.HealthComponent.Kind(), component.NewHealth(100)))

	cases := []struct {
		name  string
		start Entity
		want  Entity
		ok    bool
	}{
		{"actor_itself", actor, actor, true},
		{"child_body", body, actor, true},
		{"grandchild_prop", armour, actor, true},
		{"static_prop_with_health", prop, 0, false},
		{"zero_handle", 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, h, ok := ResolveDamageable(w, c.start)
			if ok != c.ok || got != c.want {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.want, c.ok, got, ok)
			}
			if ok && h == nil {
				t.Fatalf("expected health for resolved entity")
			}
		})
	}

	t.Run("dead_parent_breaks_chain", func(t *testing.T) {
		DestroyEntity(w, actor)
		if _, _, ok := ResolveDamageable(w, body); ok {
			t.Fatalf("expected no damageable after owner destroyed")
		}
	})
}

func TestSetParentRejectsCycles(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)

	mustAdd(t, SetParent(w, b, a))
	mustAdd(t, SetParent(w, c, b))

	if err := SetParent(w, a, c); !errors.Is(err, ErrOwnershipCycle) {
		t.Fatalf("expected ErrOwnershipCycle, got %v", err)
	}
	if err := SetParent(w, a, a); !errors.Is(err, ErrOwnershipCycle) {
		t.Fatalf("expected ErrOwnershipCycle for self parent, got %v", err)
	}

	kids := Children(w, a)
	if len(kids) != 1 || kids[0] != b {
		t.Fatalf("expected [b], got %v", kids)
	}

	mustAdd(t, SetParent(w, c, 0))
	if _, ok := Parent(w, c); ok {
		t.Fatalf("expected c to be detached")
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld()
	q := w.Events()
	q.Push(Event{Type: "hit"})
	q.Push(Event{Type: "death"})
	if q.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Type != "hit" || got[1].Type != "death" {
		t.Fatalf("unexpected drain order %v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("expected empty queue after drain")
	}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSparseSetSwapRemove(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	var es []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		es = append(es, e)
	}

	if !Remove(w, es[1], h.Kind()) {
		t.Fatalf("expected remove to succeed")
	}
	if Remove(w, es[1], h.Kind()) {
		t.Fatalf("second remove should report false")
	}
	if got := Count(w, h.Kind()); got != 3 {
		t.Fatalf("expected 3 components, got %d", got)
	}

	for i, e := range es {
		v, ok := Get(w, e, h.Kind())
		if i == 1 {
			if ok {
				t.Fatalf("removed component still readable")
			}
			continue
		}
		if !ok || *v != i {
			t.Fatalf("entity %d: expected %d, got %v ok=%v", i, i, v, ok)
		}
	}
}

func TestAddErrorNamesComponent(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	DestroyEntity(w, e)

	err := Add(w, e, component.HealthComponent.Kind(), component.NewHealth(10))
	if !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "Health") {
		t.Fatalf("expected component name in %q", got)
	}
}
