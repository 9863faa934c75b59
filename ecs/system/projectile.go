package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// ProjectileSystem moves active projectiles a fixed distance per tick along
// their firing angle and retires them once they leave the floor. The step is
// per tick, not per second.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	floorT, floor, hasFloor := floorBounds(w)

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, proj *component.Projectile, t *component.Transform) {
		if !proj.Active {
			return
		}
		step := cp.ForAngle(proj.Angle).Mult(proj.Speed)
		t.X += step.X
		t.Y += step.Y
		proj.Ticks++

		if !hasFloor || floor.BB(*floorT).ContainsVect(cp.Vector{X: t.X, Y: t.Y}) {
			return
		}
		proj.Active = false
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = true
		}
	})
}

func floorBounds(w *ecs.World) (*component.Transform, *component.Bounds, bool) {
	floor, bounds, ok := ecs.Lookup(w, component.NodeFloor, component.BoundsComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	t, ok := ecs.Get(w, floor, component.TransformComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return t, bounds, true
}
