package system

import (
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// pointerState returns the per-tick pointer queue and the session table.
func pointerState(w *ecs.World) (*component.PointerQueue, *component.PointerSessions, bool) {
	e, ok := ecs.First(w, component.PointerQueueComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	queue, ok := ecs.Get(w, e, component.PointerQueueComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	sessions, ok := ecs.Get(w, e, component.PointerSessionsComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return queue, sessions, true
}

// deltaTime is the seconds elapsed since the previous tick, 0 without a clock.
func deltaTime(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, e, component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.Delta
}

// worldPosition resolves e's transform through its parent, if any.
func worldPosition(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	x, y := t.X, t.Y
	if parent, ok := ecs.Get(w, e, component.ParentComponent.Kind()); ok {
		if pt, ok := ecs.Get(w, ecs.Entity(parent.Entity), component.TransformComponent.Kind()); ok {
			x += pt.X
			y += pt.Y
		}
	}
	return x, y, true
}

// requestSound raises a one-shot clip on e, if e has audio.
func requestSound(w *ecs.World, e ecs.Entity, name string) {
	if audioComp, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		audioComp.Request(name)
	}
}
