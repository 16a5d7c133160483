package system

import (
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/session"
)

// HighlightSystem records how many leading characters of each word to draw
// as typed: min(len(buffer), len(word)) for marked trash, zero otherwise.
type HighlightSystem struct {
	session *session.Session
}

func NewHighlightSystem(sess *session.Session) *HighlightSystem {
	return &HighlightSystem{session: sess}
}

func (s *HighlightSystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || w == nil {
		return
	}

	typed := s.session.Buffer.Len()
	ecs.ForEach(w, component.TrashTextComponent.Kind(), func(e ecs.Entity, text *component.TrashText) {
		text.Highlighted = 0
		parent, ok := w.Parent(e)
		if !ok || !ecs.Has(w, parent, component.MarkedComponent.Kind()) {
			return
		}
		text.Highlighted = min(typed, len(text.Word))
	})
}
