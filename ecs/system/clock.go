package system

import (
	"time"

	"github.com/milk9111/zebulew/ecs"
	"github.com/milk9111/zebulew/ecs/component"
)

// ClockSystem samples a monotonic clock once per tick and publishes the
// delta. The first sample only sets the baseline.
type ClockSystem struct {
	now func() time.Duration
}

func NewClockSystem(now func() time.Duration) *ClockSystem {
	if now == nil {
		start := time.Now()
		now = func() time.Duration { return time.Since(start) }
	}
	return &ClockSystem{now: now}
}

func (c *ClockSystem) Update(w *ecs.World) {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return
	}
	clock, ok := ecs.Get(w, e, component.ClockComponent.Kind())
	if !ok {
		return
	}

	now := c.now()
	clock.Ticks++
	clock.Elapsed = now
	if !clock.Started {
		clock.Started = true
		clock.Previous = now
		clock.Delta = 0
		return
	}

	delta := (now - clock.Previous).Seconds()
	clock.Previous = now
	if delta < 0 {
		delta = 0
	}
	if clock.MaxDelta > 0 && delta > clock.MaxDelta {
		delta = clock.MaxDelta
	}
	clock.Delta = delta
}
