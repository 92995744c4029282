package ecs

// sparseSet stores one component kind keyed by entity id. Values are kept as
// `any` so the World can hold every kind in a single map. Removal swaps the
// last element into the hole, so dense order is not insertion order.
type sparseSet struct {
	ids    []entityID
	values []any
	index  []int32 // entity id - 1 -> dense slot, -1 when absent
}

func (s *sparseSet) slot(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.index) {
		return 0, false
	}
	i := int(s.index[id-1])
	return i, i >= 0
}

func (s *sparseSet) has(id entityID) bool {
	_, ok := s.slot(id)
	return ok
}

func (s *sparseSet) get(id entityID) any {
	if i, ok := s.slot(id); ok {
		return s.values[i]
	}
	return nil
}

func (s *sparseSet) set(id entityID, v any) {
	if id == 0 {
		return
	}
	if i, ok := s.slot(id); ok {
		s.values[i] = v
		return
	}
	for int(id) > len(s.index) {
		s.index = append(s.index, -1)
	}
	s.index[id-1] = int32(len(s.ids))
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
}

func (s *sparseSet) remove(id entityID) bool {
	i, ok := s.slot(id)
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	moved := s.ids[last]

	s.ids[i] = moved
	s.values[i] = s.values[last]
	s.index[moved-1] = int32(i)

	s.values[last] = nil
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	s.index[id-1] = -1
	return true
}

func (s *sparseSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// snapshot copies the dense id list so callers may mutate the set while
// iterating.
func (s *sparseSet) snapshot() []entityID {
	if s == nil {
		return nil
	}
	return append([]entityID(nil), s.ids...)
}

// intersect returns the ids present in both sets, walking the smaller one.
func intersect(a, b *sparseSet) []entityID {
	if a == nil || b == nil {
		return nil
	}
	if len(a.ids) > len(b.ids) {
		a, b = b, a
	}
	out := make([]entityID, 0, len(a.ids))
	for _, id := range a.ids {
		if b.has(id) {
			out = append(out, id)
		}
	}
	return out
}
