package component

import "time"

// Clock carries the monotonic frame time. Delta is in seconds.
type Clock struct {
	Elapsed  time.Duration
	Previous time.Duration
	Delta    float64
	// MaxDelta caps Delta after a stall, in seconds.
	MaxDelta float64
	Started  bool
	Ticks    int
}

var ClockComponent = NewComponent[Clock]()
