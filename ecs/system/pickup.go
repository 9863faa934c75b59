package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
	"github.com/milk9111/zebulew/logging"
)

// PickupSystem collects uncollected pickups the player overlaps. The first
// collection arms the player; collected pickups stay hidden and inert.
type PickupSystem struct {
	log *zap.Logger
}

func NewPickupSystem(log *zap.Logger) *PickupSystem {
	return &PickupSystem{log: logging.OrNop(log)}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, p, ok := ecs.Lookup(w, component.NodePlayer, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	playerT, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	playerBounds, ok := ecs.Get(w, player, component.BoundsComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach3(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), component.BoundsComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform, bounds *component.Bounds) {
		if pickup.Collected {
			return
		}
		// Re-read each time: arming may resize the player.
		if !playerBounds.BB(*playerT).Intersects(bounds.BB(*t)) {
			return
		}

		pickup.Collected = true
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = true
		}
		requestSound(w, player, "pickup")

		if p.Armed {
			return
		}
		s.arm(w, player, p, playerBounds)
		s.log.Info("player armed",
			zap.String("pickup", pickup.Kind),
			zap.Stringer("entity", e),
			zap.Float64("x", playerT.X),
			zap.Float64("y", playerT.Y),
		)
	})
}

func (s *PickupSystem) arm(w *ecs.World, player ecs.Entity, p *component.Player, bounds *component.Bounds) {
	p.Armed = true
	sprite, hasSprite := ecs.Get(w, player, component.SpriteComponent.Kind())
	if hasSprite && p.ArmedAsset != "" {
		sprite.Asset = p.ArmedAsset
	}
	if p.ArmedWidth <= 0 || p.ArmedHeight <= 0 {
		return
	}
	bounds.Width, bounds.Height = p.ArmedWidth, p.ArmedHeight
	if hasSprite {
		sprite.Width, sprite.Height = p.ArmedWidth, p.ArmedHeight
	}
}
