package system

import (
	"log"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/ecs/entity"
	"github.com/milk9111/trashtype/prefabs"
	"github.com/milk9111/trashtype/session"
)

// CollisionSystem applies the game rules to the contacts reported by the
// previous physics step: game over, power-ups, blast damage, landing and
// duplication on first impact.
type CollisionSystem struct {
	session *session.Session

	blastRadius  float64
	blastFrames  int
	dupOffset    float64
	dupGravity   float64
	settledBelow float64
}

func NewCollisionSystem(sess *session.Session, spec prefabs.GameplaySpec) *CollisionSystem {
	return &CollisionSystem{
		session:      sess,
		blastRadius:  spec.Explosion.Radius,
		blastFrames:  spec.Explosion.Frames,
		dupOffset:    spec.Duplicate.Offset,
		dupGravity:   spec.Duplicate.GravityScale,
		settledBelow: spec.FallSpeed / 2,
	}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || s.session == nil || w == nil {
		return
	}

	for _, evt := range w.Collisions().Drain() {
		if evt.Kind != ecs.CollisionStarted {
			continue
		}
		if s.resolve(w, evt.A, evt.B) || s.resolve(w, evt.B, evt.A) {
			// the round is over; nothing else this tick counts
			w.Collisions().Clear()
			return
		}
	}
}

// resolve handles one ordered pair and reports whether the round ended.
func (s *CollisionSystem) resolve(w *ecs.World, e, other ecs.Entity) bool {
	if !w.IsAlive(e) || !w.IsAlive(other) {
		if s.session.Debug {
			log.Printf("collision: skip stale pair %s/%s", e, other)
		}
		return false
	}

	if ecs.Has(w, other, component.GameOverLineComponent.Kind()) && isDebris(w, e) {
		s.gameOver(w)
		return true
	}

	trash, ok := ecs.Get(w, e, component.TrashComponent.Kind())
	if !ok {
		return false
	}
	active := ecs.Has(w, e, component.ActionActiveComponent.Kind())

	exploded := false
	if active && trash.Activated && !trash.Triggered && trash.PowerUp != component.PowerUpNone && !isSensor(w, other) {
		switch trash.PowerUp {
		case component.PowerUpExplosion:
			exploded = s.explode(w, e, trash)
		case component.PowerUpLink:
			trash.Triggered = true
			s.pushPowerUp(w, session.PowerUpDestroyLinked, e)
			if s.session.Debug {
				log.Printf("collision: link %s fired", e)
			}
			w.DestroyRecursive(e)
			return false
		}
	}

	if ecs.Has(w, other, component.TrashExplosionComponent.Kind()) {
		wasMarked := ecs.Has(w, e, component.MarkedComponent.Kind())
		w.DestroyRecursive(e)
		if wasMarked {
			s.session.Buffer.Clear()
		}
		return false
	}

	landed := false
	if active && !ecs.Has(w, e, component.WallComponent.Kind()) && !ecs.Has(w, other, component.WallComponent.Kind()) {
		switch {
		case ecs.Has(w, other, component.FloorComponent.Kind()):
			landed = true
		case isDebris(w, other) && speedOf(w, other) < s.settledBelow:
			landed = true
		}
	}

	if ecs.Has(w, e, component.ActionDuplicateComponent.Kind()) && s.duplicatesOn(w, other) {
		ecs.Remove(w, e, component.ActionDuplicateComponent.Kind())
		if _, err := entity.NewTrashDuplicate(w, e, s.dupOffset, s.dupGravity); err != nil {
			log.Printf("collision: duplicate %s: %v", e, err)
		}
	}

	if landed && !exploded {
		s.land(w, e)
	}
	return false
}

func (s *CollisionSystem) duplicatesOn(w *ecs.World, other ecs.Entity) bool {
	return !ecs.Has(w, other, component.FloorComponent.Kind()) &&
		!ecs.Has(w, other, component.WallComponent.Kind()) &&
		!ecs.Has(w, other, component.GameOverLineComponent.Kind())
}

func (s *CollisionSystem) explode(w *ecs.World, e ecs.Entity, trash *component.Trash) bool {
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	if _, err := entity.NewExplosion(w, tr.X, tr.Y, s.blastRadius, s.blastFrames); err != nil {
		log.Printf("collision: explosion for %s: %v", e, err)
		return false
	}
	trash.Triggered = true
	s.pushPowerUp(w, session.PowerUpExploded, e)
	if s.session.Debug {
		log.Printf("collision: explosion at (%.0f, %.0f)", tr.X, tr.Y)
	}
	return true
}

// land turns e into debris: it keeps its body but loses its word.
func (s *CollisionSystem) land(w *ecs.World, e ecs.Entity) {
	wasMarked := ecs.Has(w, e, component.MarkedComponent.Kind())
	ecs.Remove(w, e, component.ActionActiveComponent.Kind())
	ecs.Remove(w, e, component.MarkedComponent.Kind())
	if text, _, ok := entity.TextOf(w, e); ok {
		w.DestroyRecursive(text)
	}
	if wasMarked {
		s.session.Buffer.Clear()
	}
}

func (s *CollisionSystem) gameOver(w *ecs.World) {
	score := s.session.Score.Score()
	if _, err := entity.NewGameOverMarker(w, score); err != nil {
		log.Printf("collision: game over marker: %v", err)
	}
	s.session.RequestState(session.StateGameOver)
	log.Printf("collision: game over, score %d", score)
}

func (s *CollisionSystem) pushPowerUp(w *ecs.World, kind session.PowerUpEventKind, e ecs.Entity) {
	evt := session.PowerUpEvent{Kind: kind, Source: e}
	if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		evt.X, evt.Y = tr.X, tr.Y
	}
	s.session.PushPowerUp(evt)
}
