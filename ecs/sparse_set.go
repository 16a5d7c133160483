package ecs

// componentStore holds every value of one component kind. sparse maps an
// entity slot to its position in dense plus one, so the zero value means
// absent and a fresh store needs no initialisation.
type componentStore struct {
	sparse []int32
	dense  []entityID
	values []any
}

func (s *componentStore) index(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return 0, false
	}
	pos := s.sparse[id-1]
	if pos == 0 {
		return 0, false
	}
	return int(pos - 1), true
}

func (s *componentStore) has(id entityID) bool {
	_, ok := s.index(id)
	return ok
}

func (s *componentStore) get(id entityID) any {
	idx, ok := s.index(id)
	if !ok {
		return nil
	}
	return s.values[idx]
}

// set inserts or replaces the value for id.
func (s *componentStore) set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	if idx, ok := s.index(id); ok {
		s.values[idx] = v
		return
	}
	if grow := int(id) - len(s.sparse); grow > 0 {
		s.sparse = append(s.sparse, make([]int32, grow)...)
	}
	s.dense = append(s.dense, id)
	s.values = append(s.values, v)
	s.sparse[id-1] = int32(len(s.dense))
}

// remove swaps the last value into the hole left by id.
func (s *componentStore) remove(id entityID) bool {
	idx, ok := s.index(id)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved-1] = int32(idx + 1)

	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[id-1] = 0
	return true
}

func (s *componentStore) len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// ids is the dense slot list. Callers must not keep it across mutations.
func (s *componentStore) ids() []entityID {
	if s == nil {
		return nil
	}
	return s.dense
}
