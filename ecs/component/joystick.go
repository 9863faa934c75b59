package component

// Joystick lives on the joystick base. The knob offset is the knob entity's
// local Transform, so it is whatever the renderer shows.
type Joystick struct {
	Knob uint64 // ecs.Entity

	// Radius bounds the knob offset.
	Radius float64
	// HitRadius is how close to the knob a press must land to grab it.
	HitRadius float64
	// ReturnDuration is the release animation length, in seconds.
	ReturnDuration float64

	Active    bool
	Returning bool
}

var JoystickComponent = NewComponent[Joystick]()
