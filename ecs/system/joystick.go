package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

const KnobReturnTimeline = "knob_return"

// JoystickSystem turns pointer sessions on the knob into a clamped knob
// offset, and animates the knob home on release.
type JoystickSystem struct{}

func NewJoystickSystem() *JoystickSystem {
	return &JoystickSystem{}
}

func (j *JoystickSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	base, joy, ok := ecs.Lookup(w, component.NodeJoystick, component.JoystickComponent.Kind())
	if !ok {
		return
	}
	knob := ecs.Entity(joy.Knob)
	knobT, ok := ecs.Get(w, knob, component.TransformComponent.Kind())
	if !ok {
		return
	}
	anim, _ := ecs.Get(w, knob, component.AnimatorComponent.Kind())

	// The return timeline owns the Returning flag.
	if joy.Returning && !anim.Playing(KnobReturnTimeline) {
		joy.Returning = false
		knobT.X, knobT.Y = 0, 0
	}

	queue, sessions, ok := pointerState(w)
	if !ok {
		return
	}
	originX, originY := 0.0, 0.0
	if bt, ok := ecs.Get(w, base, component.TransformComponent.Kind()); ok {
		originX, originY = bt.X, bt.Y
	}

	for _, ev := range queue.Events {
		local := cp.Vector{X: ev.X - originX, Y: ev.Y - originY}
		switch ev.Phase {
		case component.PointerDown:
			if local.Distance(cp.Vector{X: knobT.X, Y: knobT.Y}) > joy.HitRadius {
				continue
			}
			if !sessions.Claim(ev.ID, uint64(knob)) {
				continue
			}
			joy.Active = true
			joy.Returning = false
			if anim != nil {
				anim.Stop(KnobReturnTimeline)
			}
		case component.PointerMove:
			if held, ok := sessions.Holding(ev.ID); !ok || held != uint64(knob) {
				continue
			}
			offset := ClampOffset(local, joy.Radius)
			knobT.X, knobT.Y = offset.X, offset.Y
		case component.PointerUp:
			if held, ok := sessions.Holding(ev.ID); !ok || held != uint64(knob) {
				continue
			}
			sessions.Release(ev.ID)
			joy.Active = false
			j.release(w, knob, joy, knobT, anim)
		}
	}
}

func (j *JoystickSystem) release(w *ecs.World, knob ecs.Entity, joy *component.Joystick, knobT *component.Transform, anim *component.Animator) {
	if anim == nil {
		anim = &component.Animator{}
		if err := ecs.Add(w, knob, component.AnimatorComponent.Kind(), anim); err != nil {
			knobT.X, knobT.Y = 0, 0
			return
		}
	}
	joy.Returning = true
	anim.Play(component.Timeline{
		Name: KnobReturnTimeline,
		Tracks: []component.Track{
			{Attr: component.AttrX, From: knobT.X, To: 0, Duration: joy.ReturnDuration},
			{Attr: component.AttrY, From: knobT.Y, To: 0, Duration: joy.ReturnDuration},
		},
	})
}

// ClampOffset limits a drag vector to radius, keeping its angle.
func ClampOffset(v cp.Vector, radius float64) cp.Vector {
	if v.Length() <= radius {
		return v
	}
	return cp.ForAngle(v.ToAngle()).Mult(radius)
}
