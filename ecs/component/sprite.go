package component

// Sprite names the image a host draws for an entity. Hosts without image
// assets fall back to a flat colour keyed by Name.
type Sprite struct {
	Name   string
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
