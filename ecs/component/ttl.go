package component

// TTL despawns an entity after Frames more ticks.
type TTL struct {
	Frames int
}

var TTLComponent = NewComponent[TTL]()
