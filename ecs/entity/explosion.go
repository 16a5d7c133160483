package entity

import (
	"fmt"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
)

// NewExplosion spawns a circular blast sensor that lives for frames ticks.
func NewExplosion(w *ecs.World, x, y, radius float64, frames int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TrashExplosionComponent.Kind(), &component.TrashExplosion{Radius: radius}); err != nil {
		return 0, fmt.Errorf("explosion: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("explosion: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: radius,
		Static: true,
		Sensor: true,
	}); err != nil {
		return 0, fmt.Errorf("explosion: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: "explosion", Width: radius * 2, Height: radius * 2}); err != nil {
		return 0, fmt.Errorf("explosion: add sprite: %w", err)
	}
	if frames > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames}); err != nil {
			return 0, fmt.Errorf("explosion: add ttl: %w", err)
		}
	}
	return e, nil
}

// NewGameOverMarker records a lost round and its final score.
func NewGameOverMarker(w *ecs.World, score uint64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameOverComponent.Kind(), &component.GameOver{Score: score}); err != nil {
		return 0, fmt.Errorf("game over: add marker: %w", err)
	}
	return e, nil
}
