package component

type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Sprite describes how the renderer draws an entity. Asset names a color in
// the render palette; Width and Height are unscaled.
type Sprite struct {
	Asset   string
	Shape   Shape
	Width   float64
	Height  float64
	Opacity float64
	Hidden  bool
}

var SpriteComponent = NewComponent[Sprite]()
