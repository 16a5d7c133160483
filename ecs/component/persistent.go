package component

// Persistent entities survive the teardown that runs when a round ends.
type Persistent struct {
	ID string
}

var PersistentComponent = NewComponent[Persistent]()
