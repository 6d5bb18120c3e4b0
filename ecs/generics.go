package ecs

import "github.com/milk9111/swarm/ecs/component"

// Add attaches a component to a live entity, replacing any existing value of
// the same kind.
func Add[T any](w *World, e Entity, h component.Handle[T], value *T) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(h.ID()).set(e.id(), value)
	return nil
}

// Get returns the component of the given kind attached to e.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.stores[h.ID()].get(e.id())
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}

// Has reports whether e carries a component of the given kind.
func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.IsAlive(e) && w.stores[h.ID()].has(e.id())
}

// Remove detaches a component from e if present.
func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.stores[h.ID()].remove(e.id())
}

// ForEach visits every live entity carrying the component kind. The dense
// list is snapshotted first, so callbacks may destroy entities or mutate
// component membership.
func ForEach[T any](w *World, h component.Handle[T], fn func(Entity, *T)) {
	s := w.stores[h.ID()]
	for _, id := range s.entities() {
		e := w.entities.handle(id)
		if !w.IsAlive(e) {
			continue
		}
		v := s.get(id)
		if v == nil {
			continue
		}
		fn(e, v.(*T))
	}
}

// ForEach2 visits every live entity carrying both component kinds.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(Entity, *A, *B)) {
	sa := w.stores[ha.ID()]
	sb := w.stores[hb.ID()]
	for _, id := range sa.entities() {
		e := w.entities.handle(id)
		if !w.IsAlive(e) {
			continue
		}
		va := sa.get(id)
		vb := sb.get(id)
		if va == nil || vb == nil {
			continue
		}
		fn(e, va.(*A), vb.(*B))
	}
}

// ForEach3 visits every live entity carrying all three component kinds.
func ForEach3[A, B, C any](w *World, ha component.Handle[A], hb component.Handle[B], hc component.Handle[C], fn func(Entity, *A, *B, *C)) {
	sa := w.stores[ha.ID()]
	sb := w.stores[hb.ID()]
	sc := w.stores[hc.ID()]
	for _, id := range sa.entities() {
		e := w.entities.handle(id)
		if !w.IsAlive(e) {
			continue
		}
		va := sa.get(id)
		vb := sb.get(id)
		vc := sc.get(id)
		if va == nil || vb == nil || vc == nil {
			continue
		}
		fn(e, va.(*A), vb.(*B), vc.(*C))
	}
}
