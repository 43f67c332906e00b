package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/grid"
)

var ErrUnknownArchetype = errors.New("entity: unknown archetype")

// Registry maps level entity identifiers to the prefabs they spawn.
type Registry struct {
	prefabs map[string]string
}

func NewRegistry() *Registry {
	return &Registry{prefabs: make(map[string]string)}
}

// DefaultRegistry knows the sample game's archetypes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("Player", "player.yaml")
	r.Register("Goal", "goal.yaml")
	return r
}

// Register binds identifier to prefab, replacing any earlier binding.
func (r *Registry) Register(identifier, prefab string) {
	r.prefabs[identifier] = prefab
}

func (r *Registry) Identifiers() []string {
	out := make([]string, 0, len(r.prefabs))
	for id := range r.prefabs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Spawn builds the archetype registered for identifier at cell c.
func (r *Registry) Spawn(w *ecs.World, identifier string, c grid.Coord) (ecs.Entity, error) {
	prefab, ok := r.prefabs[identifier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownArchetype, identifier)
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetGridCoords(w, e, c); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("%s: set grid coords: %w", identifier, err)
	}
	return e, nil
}
