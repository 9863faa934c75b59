package component

type Player struct {
	// Facing is the angle in radians the player last moved toward.
	Facing float64
	Armed  bool

	BaseScale float64

	// MuzzleX and MuzzleY are the projectile spawn point in player space,
	// rotated by Facing when firing.
	MuzzleX float64
	MuzzleY float64

	ArmedAsset  string
	ArmedWidth  float64
	ArmedHeight float64

	JumpStretch  float64
	JumpDuration float64
}

var PlayerComponent = NewComponent[Player]()

// Shadow is the decoration under the player that squashes while it jumps.
type Shadow struct {
	BaseScale float64
	Squash    float64
}

var ShadowComponent = NewComponent[Shadow]()
