package system

import (
	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
)

func unmarkAll(w *ecs.World) {
	for _, e := range w.Query(component.MarkedComponent.Kind()) {
		ecs.Remove(w, e, component.MarkedComponent.Kind())
	}
}

// isDebris reports trash that has landed and lost its word.
func isDebris(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.TrashComponent.Kind()) && !ecs.Has(w, e, component.ActionActiveComponent.Kind())
}

// isSensor reports colliders that detect overlap without a physical
// response: the game-over line and explosion blasts.
func isSensor(w *ecs.World, e ecs.Entity) bool {
	if ecs.Has(w, e, component.GameOverLineComponent.Kind()) || ecs.Has(w, e, component.TrashExplosionComponent.Kind()) {
		return true
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	return ok && pb.Sensor
}

func speedOf(w *ecs.World, e ecs.Entity) float64 {
	v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return 0
	}
	return v.Length()
}
