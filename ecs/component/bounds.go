package component

import "github.com/jakecoffman/cp"

// Bounds is an axis-aligned box centered on the entity's Transform. Scale is
// visual only and never changes the box; resize Width and Height instead.
type Bounds struct {
	Width  float64
	Height float64
}

// BB returns the world-space box at t's position.
func (b Bounds) BB(t Transform) cp.BB {
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, b.Width/2, b.Height/2)
}

var BoundsComponent = NewComponent[Bounds]()
