package component

import "math"

// Velocity is the gameplay view of a body's linear velocity. The physics
// system pushes it into the body before each step and reads it back after.
type Velocity struct {
	X float64
	Y float64
}

func (v Velocity) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

var VelocityComponent = NewComponent[Velocity]()
