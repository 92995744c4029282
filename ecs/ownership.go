package ecs

import (
	"errors"

	"github.com/milk9111/arena3d/ecs/component"
)

// ErrOwnershipCycle is returned when a parent link would close a loop.
var ErrOwnershipCycle = errors.New("ecs: ownership cycle")

const maxOwnershipDepth = 64

// SetParent links child under parent. Passing a zero parent detaches child.
func SetParent(w *World, child, parent Entity) error {
	if !IsAlive(w, child) {
		return component.ErrEntityNotAlive
	}
	if !parent.Valid() {
		Remove(w, child, component.OwnerComponent.Kind())
		return nil
	}
	if !IsAlive(w, parent) {
		return component.ErrEntityNotAlive
	}
	for cur, depth := parent, 0; depth < maxOwnershipDepth; depth++ {
		if cur == child {
			return ErrOwnershipCycle
		}
		next, ok := Parent(w, cur)
		if !ok {
			return Add(w, child, component.OwnerComponent.Kind(), &component.Owner{Parent: parent.Handle()})
		}
		cur = next
	}
	return ErrOwnershipCycle
}

// Parent returns the live owner of e.
func Parent(w *World, e Entity) (Entity, bool) {
	owner, ok := Get(w, e, component.OwnerComponent.Kind())
	if !ok {
		return 0, false
	}
	parent := FromHandle(owner.Parent)
	if !IsAlive(w, parent) {
		return 0, false
	}
	return parent, true
}

// Children returns the live entities directly owned by parent.
func Children(w *World, parent Entity) []Entity {
	var out []Entity
	ForEach(w, component.OwnerComponent.Kind(), func(e Entity, o *component.Owner) {
		if FromHandle(o.Parent) == parent {
			out = append(out, e)
		}
	})
	return out
}

// ResolveDamageable walks from an intersected object up its ownership chain
// and returns the first ancestor (or the object itself) tagged KindEntity that
// carries Health.
func ResolveDamageable(w *World, e Entity) (Entity, *component.Health, bool) {
	cur := e
	for depth := 0; depth < maxOwnershipDepth; depth++ {
		if !IsAlive(w, cur) {
			return 0, nil, false
		}
		if tag, ok := Get(w, cur, component.TagComponent.Kind()); ok && tag.Kind == component.KindEntity {
			if h, ok := Get(w, cur, component.HealthComponent.Kind()); ok {
				return cur, h, true
			}
		}
		parent, ok := Parent(w, cur)
		if !ok {
			return 0, nil, false
		}
		cur = parent
	}
	return 0, nil, false
}
