package ecs

import "github.com/milk9111/swarm/ecs/component"

// World owns entities, their components, and the event queue. All access is
// single-threaded; systems run one after another inside a tick.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It reports
// whether the handle referred to a live entity.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func (w *World) Entities() []Entity {
	return w.entities.entities()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// First returns some entity carrying the given component kind.
func (w *World) First(id component.ID) (Entity, bool) {
	s, ok := w.stores[id]
	if !ok || s.len() == 0 {
		return 0, false
	}
	return w.entities.handle(s.denseEntities[0]), true
}

// Count returns the number of entities carrying the given component kind.
func (w *World) Count(id component.ID) int {
	return w.stores[id].len()
}

// Query returns the entities carrying every listed component kind.
func (w *World) Query(ids ...component.ID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	smallest := w.stores[ids[0]]
	for _, id := range ids[1:] {
		s := w.stores[id]
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	if smallest.len() == 0 {
		return nil
	}

	out := make([]Entity, 0, smallest.len())
	for _, id := range smallest.denseEntities {
		all := true
		for _, cid := range ids {
			if !w.stores[cid].has(id) {
				all = false
				break
			}
		}
		if all {
			out = append(out, w.entities.handle(id))
		}
	}
	return out
}

func (w *World) store(id component.ID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
