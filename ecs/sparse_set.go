package ecs

// sparseSet is cache-friendly component storage keyed by entity id. Values
// are stored as `any` holding a *T; the typed accessors in generics.go do the
// casting.
type sparseSet struct {
	denseIDs    []int
	denseValues []any
	sparse      []int
}

func (s *sparseSet) has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

func (s *sparseSet) get(id int) any {
	if !s.has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

func (s *sparseSet) set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

// remove swaps the last dense slot into the removed position.
func (s *sparseSet) remove(id int) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet) ids() []int {
	if s == nil {
		return nil
	}
	return s.denseIDs
}

func (s *sparseSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}
