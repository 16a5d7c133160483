package ecs

// CollisionEventKind identifies collision event types.
type CollisionEventKind int

const (
	CollisionStarted CollisionEventKind = iota
	CollisionStopped
)

func (k CollisionEventKind) String() string {
	if k == CollisionStarted {
		return "started"
	}
	return "stopped"
}

// CollisionEvent reports that two entities began or stopped touching.
type CollisionEvent struct {
	Kind CollisionEventKind
	A    Entity
	B    Entity
}

// CollisionQueue is a FIFO buffer filled by the physics step and drained by
// collision resolution on the following tick.
type CollisionQueue struct {
	items []CollisionEvent
}

// Push adds an event.
func (q *CollisionQueue) Push(evt CollisionEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Started is shorthand for pushing a CollisionStarted event.
func (q *CollisionQueue) Started(a, b Entity) {
	q.Push(CollisionEvent{Kind: CollisionStarted, A: a, B: b})
}

// Stopped is shorthand for pushing a CollisionStopped event.
func (q *CollisionQueue) Stopped(a, b Entity) {
	q.Push(CollisionEvent{Kind: CollisionStopped, A: a, B: b})
}

// Len returns the number of queued events.
func (q *CollisionQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *CollisionQueue) Drain() []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Clear drops all queued events.
func (q *CollisionQueue) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
