package component

// Pickup is a collectible that arms the player on first overlap.
type Pickup struct {
	Kind      string
	Collected bool
}

var PickupComponent = NewComponent[Pickup]()
