package system

import (
	"log"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/session"
)

// TTLSystem counts down short-lived entities such as explosion blasts and
// despawns them, with their children, on the tick their TTL runs out.
type TTLSystem struct {
	session *session.Session
}

func NewTTLSystem(sess *session.Session) *TTLSystem {
	return &TTLSystem{session: sess}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var expired []ecs.Entity
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		w.DestroyRecursive(e)
	}
	if len(expired) > 0 && s.session != nil && s.session.Debug {
		log.Printf("ttl: expired %d", len(expired))
	}
}
