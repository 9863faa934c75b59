package component

// Parent makes an entity's Transform local to another entity's position.
type Parent struct {
	Entity uint64 // ecs.Entity
}

var ParentComponent = NewComponent[Parent]()
