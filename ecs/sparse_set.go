package ecs

// SparseSet stores one component type. dense keeps ids and values packed for
// iteration; slot maps an id to its dense index plus one, so zero is empty.
type SparseSet struct {
	ids    []entityID
	values []any
	slot   []uint32
}

func (s *SparseSet) index(id entityID) (int, bool) {
	if s == nil || id == 0 || int(id) > len(s.slot) {
		return 0, false
	}
	i := s.slot[id-1]
	if i == 0 {
		return 0, false
	}
	return int(i - 1), true
}

func (s *SparseSet) Has(id entityID) bool {
	_, ok := s.index(id)
	return ok
}

// Get returns the value stored for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	i, ok := s.index(id)
	if !ok {
		return nil
	}
	return s.values[i]
}

// Set stores v for id, replacing any previous value.
func (s *SparseSet) Set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	if i, ok := s.index(id); ok {
		s.values[i] = v
		return
	}
	if n := int(id); n > len(s.slot) {
		s.slot = append(s.slot, make([]uint32, n-len(s.slot))...)
	}
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
	s.slot[id-1] = uint32(len(s.ids))
}

// Remove swaps the last element into id's place.
func (s *SparseSet) Remove(id entityID) bool {
	i, ok := s.index(id)
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	if i != last {
		moved := s.ids[last]
		s.ids[i], s.values[i] = moved, s.values[last]
		s.slot[moved-1] = uint32(i + 1)
	}
	s.values[last] = nil
	s.ids, s.values = s.ids[:last], s.values[:last]
	s.slot[id-1] = 0
	return true
}

func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// snapshot copies the id list so callers may mutate the set while iterating.
func (s *SparseSet) snapshot() []entityID {
	if s.Len() == 0 {
		return nil
	}
	return append([]entityID(nil), s.ids...)
}
