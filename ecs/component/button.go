package component

type ButtonAction int

const (
	ButtonAttack ButtonAction = iota
	ButtonJump
	ButtonReload
)

// Button is a circular on-screen button that raises an intent on press.
type Button struct {
	Action ButtonAction
	Radius float64
}

var ButtonComponent = NewComponent[Button]()
