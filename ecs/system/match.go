package system

import (
	"log"
	"strings"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/session"
)

// MatchSystem marks words that start with the typing buffer and activates
// words typed in full. A candidate that matches no live word is rejected
// and resets the combo.
type MatchSystem struct {
	session *session.Session
	// last is the committed value the marks currently reflect.
	last string
}

type liveWord struct {
	trash ecs.Entity
	text  ecs.Entity
	word  string
}

func NewMatchSystem(sess *session.Session) *MatchSystem {
	return &MatchSystem{session: sess}
}

// Reset forgets the previous buffer value, for a new round.
func (s *MatchSystem) Reset() {
	s.last = ""
}

func (s *MatchSystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || w == nil {
		return
	}

	buf := &s.session.Buffer
	committed := buf.String()
	candidate, deleted, staged := buf.Pending()
	if !staged && committed == s.last {
		return
	}

	if candidate == "" {
		buf.Set("")
		unmarkAll(w)
		s.last = ""
		return
	}

	words := liveWords(w)
	matches := 0
	for _, lw := range words {
		if strings.HasPrefix(lw.word, candidate) {
			matches++
		}
	}

	if matches == 0 {
		if s.session.Debug {
			log.Printf("match: rejected %q", candidate)
		}
		buf.Set(committed)
		s.session.Score.ResetCombo()
		s.applyMarks(w, words, committed)
		s.last = committed
		return
	}

	buf.Set(candidate)
	if !deleted {
		s.session.Score.Hit()
	}
	s.applyMarks(w, words, candidate)

	if s.activate(w, words, candidate) {
		buf.Clear()
		unmarkAll(w)
		s.last = ""
		return
	}
	s.last = candidate
}

func (s *MatchSystem) applyMarks(w *ecs.World, words []liveWord, prefix string) {
	for _, lw := range words {
		marked := ecs.Has(w, lw.trash, component.MarkedComponent.Kind())
		if prefix != "" && strings.HasPrefix(lw.word, prefix) {
			if !marked {
				_ = ecs.Add(w, lw.trash, component.MarkedComponent.Kind(), &component.Marked{})
			}
			continue
		}
		if marked {
			ecs.Remove(w, lw.trash, component.MarkedComponent.Kind())
		}
	}
}

// activate scores every unactivated word equal to typed. Words are not
// deduplicated, so two live copies both score.
func (s *MatchSystem) activate(w *ecs.World, words []liveWord, typed string) bool {
	activated := false
	for _, lw := range words {
		if lw.word != typed {
			continue
		}
		trash, ok := ecs.Get(w, lw.trash, component.TrashComponent.Kind())
		if !ok || trash.Activated {
			continue
		}
		trash.Activated = true
		points := s.session.Score.Award(len(lw.word))
		activated = true

		if s.session.Debug {
			log.Printf("match: activated %s %q power-up=%s points=%d", lw.trash, lw.word, trash.PowerUp, points)
		}

		if trash.PowerUp == component.PowerUpNone {
			w.DestroyRecursive(lw.trash)
			continue
		}
		// Power-up trash stays in play until its next impact fires it.
		ecs.Remove(w, lw.trash, component.MarkedComponent.Kind())
		w.DestroyRecursive(lw.text)
	}
	return activated
}

// liveWords lists the typeable words in entity order.
func liveWords(w *ecs.World) []liveWord {
	var out []liveWord
	for _, e := range w.Query(component.TrashComponent.Kind(), component.ActionActiveComponent.Kind()) {
		for _, child := range w.Children(e) {
			text, ok := ecs.Get(w, child, component.TrashTextComponent.Kind())
			if !ok {
				continue
			}
			out = append(out, liveWord{trash: e, text: child, word: text.Word})
			break
		}
	}
	return out
}
