// Package session holds the per-process gameplay state shared by the
// systems of one round: the typing buffer, score and combo, the game state
// and the power-up events raised this tick.
package session

import (
	"fmt"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/score"
	"github.com/milk9111/trashtype/typing"
)

// State is the host-level game state the core gates on.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PowerUpEventKind names what a triggered power-up did.
type PowerUpEventKind int

const (
	PowerUpExploded PowerUpEventKind = iota
	// PowerUpDestroyLinked is raised by Link trash. Nothing consumes it for
	// gameplay yet; hosts may use it for cues.
	PowerUpDestroyLinked
)

func (k PowerUpEventKind) String() string {
	switch k {
	case PowerUpExploded:
		return "exploded"
	case PowerUpDestroyLinked:
		return "destroy_linked"
	default:
		return fmt.Sprintf("power_up_event(%d)", int(k))
	}
}

type PowerUpEvent struct {
	Kind   PowerUpEventKind
	Source ecs.Entity
	X      float64
	Y      float64
}

// Session is passed to every gameplay system. Buffer is written by input
// ingestion, matching and collision resolution; Score only by matching.
type Session struct {
	Buffer typing.Buffer
	Score  *score.Tracker

	// Delta is the simulation time of the current tick in seconds.
	Delta float64
	Debug bool

	state     State
	requested *State
	powerUps  []PowerUpEvent
}

func New(comboStep float64) *Session {
	return &Session{
		Score: score.NewTracker(comboStep),
		state: StatePlaying,
	}
}

// Reset clears buffer, score and combo for a new round.
func (s *Session) Reset() {
	s.Buffer.Clear()
	s.Score.Reset()
	s.powerUps = nil
	s.requested = nil
}

func (s *Session) State() State {
	return s.state
}

// RequestState asks the host to transition at the end of the tick.
func (s *Session) RequestState(next State) {
	s.requested = &next
}

// TakeRequest returns and clears a pending state transition.
func (s *Session) TakeRequest() (State, bool) {
	if s.requested == nil {
		return s.state, false
	}
	next := *s.requested
	s.requested = nil
	return next, true
}

// SetState is called by the host once it has applied a transition.
func (s *Session) SetState(st State) {
	s.state = st
}

func (s *Session) PushPowerUp(evt PowerUpEvent) {
	s.powerUps = append(s.powerUps, evt)
}

// DrainPowerUps returns the power-up events raised since the last drain.
func (s *Session) DrainPowerUps() []PowerUpEvent {
	out := s.powerUps
	s.powerUps = nil
	return out
}
