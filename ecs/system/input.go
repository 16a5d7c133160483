package system

import (
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/session"
	"github.com/milk9111/trashtype/typing"
)

// InputSource reports the keyboard state for the current tick. Hosts poll
// their device inside Snapshot.
type InputSource interface {
	Snapshot() typing.Snapshot
}

// InputSystem turns the tick's key snapshot into a buffer candidate.
// Ctrl+Backspace clears the buffer and every mark right away.
type InputSystem struct {
	session *session.Session
	source  InputSource
}

func NewInputSystem(sess *session.Session, source InputSource) *InputSystem {
	return &InputSystem{session: sess, source: source}
}

func (s *InputSystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || s.source == nil || w == nil {
		return
	}

	snap := s.source.Snapshot()
	if snap.ClearAll() {
		s.session.Buffer.Clear()
		unmarkAll(w)
		return
	}
	s.session.Buffer.Stage(snap)
}
