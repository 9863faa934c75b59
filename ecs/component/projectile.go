package component

// Projectile is the single reusable shot. Speed is in units per tick.
type Projectile struct {
	Angle  float64
	Speed  float64
	Active bool
	Ticks  int
}

var ProjectileComponent = NewComponent[Projectile]()
