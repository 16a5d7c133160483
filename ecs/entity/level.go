package entity

import (
	"fmt"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
	"github.com/milk9111/trashtype/prefabs"
)

// LoadLevelToWorld builds the static play area for a round: floor tiles,
// one wall column on each side and the game-over line. The origin is the
// centre of the play area with Y up.
func LoadLevelToWorld(w *ecs.World, spec prefabs.GameplaySpec) error {
	maxX := spec.PlayArea.Width / 2
	maxY := spec.PlayArea.Height / 2
	tile := spec.Borders.TileSize
	half := spec.Borders.ColliderHalf
	if tile <= 0 {
		return fmt.Errorf("level: invalid tile size %v", tile)
	}

	floorY := -maxY + 16
	for x := 0.0; x <= maxX; x += tile {
		if _, err := NewFloorTile(w, x, floorY, half, tile); err != nil {
			return err
		}
		if x == 0 {
			continue
		}
		if _, err := NewFloorTile(w, -x, floorY, half, tile); err != nil {
			return err
		}
	}

	for _, side := range []float64{-1, 1} {
		if _, err := NewWall(w, side*(maxX+half), 0, half, maxY+spec.Spawn.Height); err != nil {
			return err
		}
	}

	line := spec.GameOverLine
	if _, err := NewGameOverLine(w, 0, line.Y, (spec.PlayArea.Width-line.Inset)/2, line.Height/2); err != nil {
		return err
	}
	return nil
}

func NewFloorTile(w *ecs.World, x, y, half, size float64) (ecs.Entity, error) {
	e, err := newStaticBox(w, "floor", x, y, half, half, size, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.FloorComponent.Kind(), &component.Floor{}); err != nil {
		return 0, fmt.Errorf("floor: add tag: %w", err)
	}
	return e, nil
}

func NewWall(w *ecs.World, x, y, halfW, halfH float64) (ecs.Entity, error) {
	e, err := newStaticBox(w, "wall", x, y, halfW, halfH, 0, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{}); err != nil {
		return 0, fmt.Errorf("wall: add tag: %w", err)
	}
	return e, nil
}

// NewGameOverLine spawns the sensor that ends the round when settled
// debris touches it.
func NewGameOverLine(w *ecs.World, x, y, halfW, halfH float64) (ecs.Entity, error) {
	e, err := newStaticBox(w, "game_over_line", x, y, halfW, halfH, 0, true)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.GameOverLineComponent.Kind(), &component.GameOverLine{}); err != nil {
		return 0, fmt.Errorf("game over line: add tag: %w", err)
	}
	return e, nil
}

// newStaticBox adds a static collider. A positive spriteSize draws the
// sprite at that size instead of the collider size.
func newStaticBox(w *ecs.World, name string, x, y, halfW, halfH, spriteSize float64, sensor bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  halfW * 2,
		Height: halfH * 2,
		Static: true,
		Sensor: sensor,
	}); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", name, err)
	}
	sw, sh := halfW*2, halfH*2
	if spriteSize > 0 {
		sw, sh = spriteSize, spriteSize
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Name: name, Width: sw, Height: sh}); err != nil {
		return 0, fmt.Errorf("%s: add sprite: %w", name, err)
	}
	return e, nil
}
