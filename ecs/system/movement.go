package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// MovementSystem moves the player by the knob offset scaled by the frame
// delta and turns it to face the knob direction. A released or returning
// knob contributes nothing.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, joy, ok := ecs.Lookup(w, component.NodeJoystick, component.JoystickComponent.Kind())
	if !ok || !joy.Active || joy.Returning {
		return
	}
	knobT, ok := ecs.Get(w, ecs.Entity(joy.Knob), component.TransformComponent.Kind())
	if !ok {
		return
	}
	player, p, ok := ecs.Lookup(w, component.NodePlayer, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	offset := cp.Vector{X: knobT.X, Y: knobT.Y}
	// atan2(0, 0) is 0, so a centered knob faces right without NaN.
	angle := offset.ToAngle()
	displacement := offset.Mult(deltaTime(w))

	t.X += displacement.X
	t.Y += displacement.Y
	t.Rotation = angle
	p.Facing = angle
}
