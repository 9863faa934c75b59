package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// ButtonSystem raises the player's intents when a pointer goes down on an
// on-screen button. The pointer stays bound to the button until it lifts, so
// holding a button never repeats.
type ButtonSystem struct{}

func NewButtonSystem() *ButtonSystem {
	return &ButtonSystem{}
}

func (b *ButtonSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	queue, sessions, ok := pointerState(w)
	if !ok || len(queue.Events) == 0 {
		return
	}
	_, intent, hasIntent := ecs.Lookup(w, component.NodePlayer, component.IntentComponent.Kind())

	for _, ev := range queue.Events {
		switch ev.Phase {
		case component.PointerDown:
			e, button, ok := buttonAt(w, ev.X, ev.Y)
			if !ok || !sessions.Claim(ev.ID, uint64(e)) {
				continue
			}
			if !hasIntent {
				continue
			}
			switch button.Action {
			case component.ButtonAttack:
				intent.Attack = true
			case component.ButtonJump:
				intent.Jump = true
			case component.ButtonReload:
				intent.Reload = true
			}
		case component.PointerUp:
			held, ok := sessions.Holding(ev.ID)
			if !ok || !ecs.Has(w, ecs.Entity(held), component.ButtonComponent.Kind()) {
				continue
			}
			sessions.Release(ev.ID)
		}
	}
}

func buttonAt(w *ecs.World, x, y float64) (ecs.Entity, *component.Button, bool) {
	var (
		found  ecs.Entity
		button *component.Button
	)
	ecs.ForEach(w, component.ButtonComponent.Kind(), func(e ecs.Entity, btn *component.Button) {
		if button != nil {
			return
		}
		bx, by, ok := worldPosition(w, e)
		if !ok {
			return
		}
		pos := cp.Vector{X: x, Y: y}
		if pos.Distance(cp.Vector{X: bx, Y: by}) <= btn.Radius {
			found, button = e, btn
		}
	})
	return found, button, button != nil
}
