package ecs

import "github.com/milk9111/tilegame/ecs/component"

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]componentStore)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates its handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Clear destroys every entity in the world and drops pending events.
func Clear(w *World) {
	for _, e := range Entities(w) {
		DestroyEntity(w, e)
	}
	if w != nil {
		w.events.flush()
	}
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Query returns live entities that have every kind.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}

	// iterate smallest set
	smallest := 0
	for i, s := range stores {
		if s.len() < stores[smallest].len() {
			smallest = i
		}
	}

	var out []Entity
	for _, id := range stores[smallest].ids() {
		if !hasAll(stores, id) {
			continue
		}
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity that has kind.
func (w *World) First(kind Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, id := range store.ids() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

func hasAll(stores []componentStore, id entityID) bool {
	for _, s := range stores {
		if !s.has(id) {
			return false
		}
	}
	return true
}
