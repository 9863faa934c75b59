package system

import (
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// AnimationSystem advances every entity's timelines by the frame delta and
// writes the sampled values. Finished timelines are applied at their end
// values and removed.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := deltaTime(w)

	ecs.ForEach2(w, component.AnimatorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, anim *component.Animator, t *component.Transform) {
		if len(anim.Timelines) == 0 {
			return
		}
		sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())

		live := anim.Timelines[:0]
		for _, tl := range anim.Timelines {
			tl.Elapsed += dt
			for _, track := range tl.Tracks {
				if !track.Started(tl.Elapsed) {
					continue
				}
				applyTrack(t, sprite, track.Attr, track.Value(tl.Elapsed))
			}
			if !tl.Done() {
				live = append(live, tl)
			}
		}
		anim.Timelines = live
	})
}

func applyTrack(t *component.Transform, sprite *component.Sprite, attr component.Attribute, v float64) {
	switch attr {
	case component.AttrX:
		t.X = v
	case component.AttrY:
		t.Y = v
	case component.AttrScaleX:
		t.ScaleX = v
	case component.AttrScaleY:
		t.ScaleY = v
	case component.AttrRotation:
		t.Rotation = v
	case component.AttrOpacity:
		if sprite != nil {
			sprite.Opacity = v
		}
	}
}
