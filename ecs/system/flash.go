package system

import (
	"math"

	"github.com/milk9111/zebulew/common"
	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// FlashSystem plays flash ramps one tick at a time.
type FlashSystem struct{}

func NewFlashSystem() *FlashSystem {
	return &FlashSystem{}
}

func (s *FlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.FlashComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, flash *component.Flash, sprite *component.Sprite) {
		if !flash.Running() {
			return
		}
		flash.Frame++
		sprite.Opacity = FlashOpacity(flash.Frame, flash.Total, flash.Peak)
	})
}

// FlashOpacity is a triangle ramp: zero at frame 0, peak at total/2, zero
// again at total.
func FlashOpacity(frame, total int, peak float64) float64 {
	if total <= 0 || frame <= 0 || frame >= total {
		return 0
	}
	half := float64(total) / 2
	return common.Clamp(peak*(1-math.Abs(float64(frame)-half)/half), 0, peak)
}
