package system

import (
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

const JumpTimeline = "jump"

// JumpSystem consumes the jump intent and plays the squash and stretch on the
// player and the opposite phase on its shadow. Jumping has no gameplay effect.
type JumpSystem struct{}

func NewJumpSystem() *JumpSystem {
	return &JumpSystem{}
}

func (s *JumpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, intent, ok := ecs.Lookup(w, component.NodePlayer, component.IntentComponent.Kind())
	if !ok || !intent.Jump {
		return
	}
	intent.Jump = false

	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	half := p.JumpDuration / 2
	if anim, ok := ecs.Get(w, player, component.AnimatorComponent.Kind()); ok {
		anim.Play(pulseTimeline(JumpTimeline, p.BaseScale, p.BaseScale*p.JumpStretch, half))
	}
	if shadowEnt, shadow, ok := ecs.Lookup(w, component.NodeShadow, component.ShadowComponent.Kind()); ok {
		if anim, ok := ecs.Get(w, shadowEnt, component.AnimatorComponent.Kind()); ok {
			anim.Play(pulseTimeline(JumpTimeline, shadow.BaseScale, shadow.BaseScale*shadow.Squash, half))
		}
	}
	requestSound(w, player, "jump")
}

// pulseTimeline scales from base to peak over half seconds, then back.
func pulseTimeline(name string, base, peak, half float64) component.Timeline {
	tracks := make([]component.Track, 0, 4)
	for _, attr := range []component.Attribute{component.AttrScaleX, component.AttrScaleY} {
		tracks = append(tracks,
			component.Track{Attr: attr, From: base, To: peak, Duration: half, Easing: component.EaseInOut},
			component.Track{Attr: attr, From: peak, To: base, Delay: half, Duration: half, Easing: component.EaseInOut},
		)
	}
	return component.Timeline{Name: name, Tracks: tracks}
}
