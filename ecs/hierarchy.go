package ecs

import "slices"

// AddChild makes child owned by parent. A child has at most one parent.
func (w *World) AddChild(parent, child Entity) bool {
	if w == nil || parent == child || !w.IsAlive(parent) || !w.IsAlive(child) {
		return false
	}
	if old, ok := w.parents[child]; ok {
		w.detach(old, child)
	}
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return true
}

// Children returns a copy of parent's child list.
func (w *World) Children(parent Entity) []Entity {
	if w == nil {
		return nil
	}
	return slices.Clone(w.children[parent])
}

// Parent returns the owner of child, if any.
func (w *World) Parent(child Entity) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	p, ok := w.parents[child]
	return p, ok
}

// DestroyRecursive destroys e and everything it owns. Stale handles are a
// no-op and report false.
func (w *World) DestroyRecursive(e Entity) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	for _, child := range w.Children(e) {
		w.DestroyRecursive(child)
	}
	return w.DestroyEntity(e)
}

func (w *World) detach(parent, child Entity) {
	kids := w.children[parent]
	if i := slices.Index(kids, child); i >= 0 {
		kids = slices.Delete(kids, i, i+1)
	}
	if len(kids) == 0 {
		delete(w.children, parent)
	} else {
		w.children[parent] = kids
	}
	delete(w.parents, child)
}

// DestroyRecursive destroys e and its children in w.
func DestroyRecursive(w *World, e Entity) bool {
	return w.DestroyRecursive(e)
}
