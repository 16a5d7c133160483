package component

// Camera is the view onto the play area. Zoom <= 0 means 1.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
