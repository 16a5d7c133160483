package component

// ActionActive marks trash whose word is still on screen and typeable.
type ActionActive struct{}

var ActionActiveComponent = NewComponent[ActionActive]()

// ActionDuplicate marks trash that splits into a clone on its first
// qualifying impact.
type ActionDuplicate struct{}

var ActionDuplicateComponent = NewComponent[ActionDuplicate]()

// Marked marks trash whose word has the typing buffer as a prefix.
type Marked struct{}

var MarkedComponent = NewComponent[Marked]()

type Wall struct{}

var WallComponent = NewComponent[Wall]()

type Floor struct{}

var FloorComponent = NewComponent[Floor]()

// GameOverLine is the sensor that ends the round when settled debris
// reaches it.
type GameOverLine struct{}

var GameOverLineComponent = NewComponent[GameOverLine]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
