package component

// GravityScale multiplies world gravity for one body. Duplicates spawn with
// a large scale so they drop onto the pile at once.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
