package component

// Flash ramps the overlay opacity up to Peak and back to zero over Total
// update ticks. Frame counts ticks already played.
type Flash struct {
	Total int
	Frame int
	Peak  float64
}

func (f Flash) Running() bool {
	return f.Frame < f.Total
}

var FlashComponent = NewComponent[Flash]()
