package entity

import (
	"fmt"

	"github.com/milk9111/trashtype/ecs"
	"github.com/milk9111/trashtype/ecs/component"
)

// TrashParams describes one new piece of trash. Zero half extents select
// the kind's built-in size.
type TrashParams struct {
	Kind       component.TrashKind
	HalfWidth  float64
	HalfHeight float64
	Sprite     string
	Mass       float64
	Word       string
	PowerUp    component.PowerUp
	X          float64
	Y          float64
	VelocityX  float64
	VelocityY  float64
}

// NewTrash spawns a typeable piece of trash with its word on a child entity.
// The trash starts ActionActive and ActionDuplicate.
func NewTrash(w *ecs.World, p TrashParams) (ecs.Entity, error) {
	hw, hh := p.HalfWidth, p.HalfHeight
	if hw <= 0 || hh <= 0 {
		hw, hh = p.Kind.DefaultHalfExtents()
	}
	sprite := p.Sprite
	if sprite == "" {
		sprite = p.Kind.String()
	}

	e, err := newTrashBody(w, trashBody{
		trash: component.Trash{
			Kind:       p.Kind,
			HalfWidth:  hw,
			HalfHeight: hh,
			PowerUp:    p.PowerUp,
		},
		sprite:   sprite,
		mass:     p.Mass,
		x:        p.X,
		y:        p.Y,
		velocity: component.Velocity{X: p.VelocityX, Y: p.VelocityY},
	})
	if err != nil {
		return 0, err
	}

	if err := ecs.Add(w, e, component.ActionActiveComponent.Kind(), &component.ActionActive{}); err != nil {
		return 0, fmt.Errorf("trash: add action active: %w", err)
	}
	if err := ecs.Add(w, e, component.ActionDuplicateComponent.Kind(), &component.ActionDuplicate{}); err != nil {
		return 0, fmt.Errorf("trash: add action duplicate: %w", err)
	}

	if _, err := NewTrashText(w, e, p.Word); err != nil {
		return 0, err
	}
	return e, nil
}

// NewTrashText attaches word to owner as a child entity.
func NewTrashText(w *ecs.World, owner ecs.Entity, word string) (ecs.Entity, error) {
	text := ecs.CreateEntity(w)
	if err := ecs.Add(w, text, component.TrashTextComponent.Kind(), &component.TrashText{Word: word}); err != nil {
		return 0, fmt.Errorf("trash text: add text: %w", err)
	}
	if !w.AddChild(owner, text) {
		w.DestroyEntity(text)
		return 0, fmt.Errorf("trash text: attach to %s: %w", owner, component.ErrEntityNotAlive)
	}
	return text, nil
}

// TextOf returns the word child of a trash entity.
func TextOf(w *ecs.World, trash ecs.Entity) (ecs.Entity, *component.TrashText, bool) {
	for _, child := range w.Children(trash) {
		if text, ok := ecs.Get(w, child, component.TrashTextComponent.Kind()); ok {
			return child, text, true
		}
	}
	return 0, nil, false
}

// NewTrashDuplicate clones the physical bundle of source: same kind, size
// and sprite, offset upward, at rest, with a heavier gravity scale. The
// clone carries no word, no power-up and no lifecycle tags.
func NewTrashDuplicate(w *ecs.World, source ecs.Entity, offsetY, gravityScale float64) (ecs.Entity, error) {
	trash, ok := ecs.Get(w, source, component.TrashComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("trash duplicate: source %s: %w", source, component.ErrEntityNotAlive)
	}
	transform, ok := ecs.Get(w, source, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("trash duplicate: source %s has no transform", source)
	}

	body := trashBody{
		trash: component.Trash{
			Kind:       trash.Kind,
			HalfWidth:  trash.HalfWidth,
			HalfHeight: trash.HalfHeight,
			PowerUp:    component.PowerUpNone,
		},
		x:            transform.X,
		y:            transform.Y + offsetY,
		gravityScale: gravityScale,
	}
	if sprite, ok := ecs.Get(w, source, component.SpriteComponent.Kind()); ok {
		body.sprite = sprite.Name
	}
	if pb, ok := ecs.Get(w, source, component.PhysicsBodyComponent.Kind()); ok {
		body.mass = pb.Mass
	}
	return newTrashBody(w, body)
}

type trashBody struct {
	trash        component.Trash
	sprite       string
	mass         float64
	x, y         float64
	velocity     component.Velocity
	gravityScale float64
}

func newTrashBody(w *ecs.World, b trashBody) (ecs.Entity, error) {
	if b.mass <= 0 {
		b.mass = 1
	}
	e := ecs.CreateEntity(w)

	trash := b.trash
	if err := ecs.Add(w, e, component.TrashComponent.Kind(), &trash); err != nil {
		return 0, fmt.Errorf("trash: add trash: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: b.x, Y: b.y}); err != nil {
		return 0, fmt.Errorf("trash: add transform: %w", err)
	}
	velocity := b.velocity
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &velocity); err != nil {
		return 0, fmt.Errorf("trash: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  trash.HalfWidth * 2,
		Height: trash.HalfHeight * 2,
		Mass:   b.mass,
	}); err != nil {
		return 0, fmt.Errorf("trash: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Name:   b.sprite,
		Width:  trash.HalfWidth * 2,
		Height: trash.HalfHeight * 2,
	}); err != nil {
		return 0, fmt.Errorf("trash: add sprite: %w", err)
	}
	if b.gravityScale > 0 {
		if err := ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: b.gravityScale}); err != nil {
			return 0, fmt.Errorf("trash: add gravity scale: %w", err)
		}
	}
	return e, nil
}
