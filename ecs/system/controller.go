package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/zebulew/ecs"
)

// Options configures the controller systems.
type Options struct {
	Now    func() time.Duration
	Input  InputSource
	Logger *zap.Logger
	Debug  bool
}

// NewControllerSystems returns the systems in tick order. Animation runs
// before the joystick so a finished knob return is observed in the same tick,
// and the projectile advances before attacks so the firing tick leaves it at
// the muzzle.
func NewControllerSystems(opts Options) []ecs.System {
	return []ecs.System{
		NewClockSystem(opts.Now),
		NewInputSystem(opts.Input),
		NewAnimationSystem(),
		NewJoystickSystem(),
		NewButtonSystem(),
		NewMovementSystem(),
		NewPickupSystem(opts.Logger),
		NewProjectileSystem(),
		NewAttackSystem(),
		NewJumpSystem(),
		NewFlashSystem(),
		NewReloadSystem(opts.Logger),
		NewAudioSystem(),
		NewRenderSystem(opts.Debug),
	}
}
