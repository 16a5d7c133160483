package ecs

import (
	"slices"

	"github.com/milk9111/trashtype/ecs/component"
)

// World owns entities, their components, the parent/child hierarchy and the
// per-tick collision queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*componentStore

	parents  map[Entity]Entity
	children map[Entity][]Entity

	collisions CollisionQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]*componentStore),
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. Children are
// detached, not destroyed; use DestroyRecursive for that.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := e.id()
	for _, store := range w.stores {
		store.remove(id)
	}
	if parent, ok := w.parents[e]; ok {
		w.detach(parent, e)
	}
	for _, child := range w.children[e] {
		delete(w.parents, child)
	}
	delete(w.children, e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count())
	for i := range w.entities.gen {
		if e, ok := w.entities.current(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Query returns the live entities holding every listed component kind, in
// slot order so iteration is reproducible.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*componentStore, 0, len(kinds))
	for _, k := range kinds {
		store := w.stores[k.ID()]
		if store.len() == 0 {
			return nil
		}
		sets = append(sets, store)
	}
	// iterate smallest set
	slices.SortFunc(sets, func(a, b *componentStore) int { return a.len() - b.len() })

	ids := make([]entityID, 0, sets[0].len())
outer:
	for _, id := range sets[0].ids() {
		for _, other := range sets[1:] {
			if !other.has(id) {
				continue outer
			}
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the lowest-slot entity holding every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Collisions returns the world collision queue.
func (w *World) Collisions() *CollisionQueue {
	if w == nil {
		return nil
	}
	return &w.collisions
}

func (w *World) store(id component.ComponentID, create bool) *componentStore {
	s := w.stores[id]
	if s == nil && create {
		s = &componentStore{}
		w.stores[id] = s
	}
	return s
}
