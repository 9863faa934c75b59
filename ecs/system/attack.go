package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// AttackSystem consumes the attack intent. Armed players fire the single
// projectile from the muzzle along their facing; unarmed players swing.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem {
	return &AttackSystem{}
}

func (s *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, intent, ok := ecs.Lookup(w, component.NodePlayer, component.IntentComponent.Kind())
	if !ok || !intent.Attack {
		return
	}
	intent.Attack = false

	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	if !p.Armed {
		requestSound(w, player, "melee")
		return
	}

	angle := p.Facing
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		fireProjectile(w, *t, p, angle)
	}
	requestSound(w, player, "fire")
	startFlash(w)
}

// fireProjectile places the projectile at the rotated muzzle and restarts it,
// even if it is still in flight.
func fireProjectile(w *ecs.World, from component.Transform, p *component.Player, angle float64) {
	e, proj, ok := ecs.Lookup(w, component.NodeProjectile, component.ProjectileComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	muzzle := MuzzlePosition(cp.Vector{X: from.X, Y: from.Y}, cp.Vector{X: p.MuzzleX, Y: p.MuzzleY}, angle)
	t.X, t.Y = muzzle.X, muzzle.Y
	t.Rotation = angle

	proj.Angle = angle
	proj.Active = true
	proj.Ticks = 0
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Hidden = false
	}
}

// MuzzlePosition rotates the local muzzle offset by angle around origin.
func MuzzlePosition(origin, offset cp.Vector, angle float64) cp.Vector {
	return origin.Add(offset.Rotate(cp.ForAngle(angle)))
}

func startFlash(w *ecs.World) {
	e, flash, ok := ecs.Lookup(w, component.NodeFlash, component.FlashComponent.Kind())
	if !ok {
		return
	}
	flash.Frame = 0
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		sprite.Opacity = 0
	}
}
