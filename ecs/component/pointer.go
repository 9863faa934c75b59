package component

type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerMove
	PointerUp
)

func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is one touch or mouse sample in screen space.
type PointerEvent struct {
	ID    int
	Phase PointerPhase
	X     float64
	Y     float64
}

// PointerQueue holds the events for the current tick only.
type PointerQueue struct {
	Events []PointerEvent
}

var PointerQueueComponent = NewComponent[PointerQueue]()

// PointerSessions maps a pointer id to the single entity it manipulates.
type PointerSessions struct {
	Claims map[int]uint64
}

// Claim binds pointer id to target. It fails if the pointer already holds
// something or another pointer already holds target.
func (s *PointerSessions) Claim(id int, target uint64) bool {
	if s.Claims == nil {
		s.Claims = make(map[int]uint64)
	}
	if _, busy := s.Claims[id]; busy {
		return false
	}
	if _, held := s.Holder(target); held {
		return false
	}
	s.Claims[id] = target
	return true
}

// Release ends the session for id and returns what it held.
func (s *PointerSessions) Release(id int) (uint64, bool) {
	target, ok := s.Claims[id]
	if ok {
		delete(s.Claims, id)
	}
	return target, ok
}

// Holding reports what pointer id currently manipulates.
func (s *PointerSessions) Holding(id int) (uint64, bool) {
	target, ok := s.Claims[id]
	return target, ok
}

// Holder returns the pointer holding target.
func (s *PointerSessions) Holder(target uint64) (int, bool) {
	for id, t := range s.Claims {
		if t == target {
			return id, true
		}
	}
	return 0, false
}

var PointerSessionsComponent = NewComponent[PointerSessions]()
