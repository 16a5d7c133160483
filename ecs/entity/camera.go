package entity

import (
	"fmt"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
)

// NewCamera spawns the persistent view entity centred on the play area.
func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.PersistentComponent.Kind(), &component.Persistent{ID: "camera"}); err != nil {
		return 0, fmt.Errorf("camera: add persistent: %w", err)
	}
	return camera, nil
}
