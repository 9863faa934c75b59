package component

// Scene node names. Every handle is optional; systems skip work whose node is
// missing.
const (
	NodePlayer       = "player"
	NodeShadow       = "shadow"
	NodeFloor        = "floor"
	NodeJoystick     = "joystick"
	NodeKnob         = "knob"
	NodeAttackButton = "attack_button"
	NodeJumpButton   = "jump_button"
	NodeReloadButton = "reload_button"
	NodeFlash        = "flash"
	NodeWall         = "wall"
	NodeWeapon       = "weapon"
	NodeProjectile   = "projectile"
)

// Node names an entity in the scene graph.
type Node struct {
	Name string
}

var NodeComponent = NewComponent[Node]()

// SceneNodes is the name-to-entity table built once when a scene loads.
type SceneNodes struct {
	ByName map[string]uint64
}

var SceneNodesComponent = NewComponent[SceneNodes]()
