package entity

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"github.com/milk9111/tilegame/levels"
)

// BuildWorld creates a new world holding the camera and lvl. Nothing is
// returned on error, so a caller can keep running on its previous world.
func BuildWorld(lvl *levels.Level, reg *Registry) (*ecs.World, error) {
	world := ecs.NewWorld()
	if _, err := NewCamera(world); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	if err := LoadLevelToWorld(world, lvl, reg); err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	return world, nil
}

// CarryPlayerCoords copies the cell of each player in src onto the matching
// player in dst. Players are paired in creation order; when the counts differ
// nothing is copied. It reports whether dst was changed.
func CarryPlayerCoords(dst, src *ecs.World) bool {
	from := players(src)
	to := players(dst)
	if len(from) == 0 || len(from) != len(to) {
		return false
	}
	for i := range from {
		prev, _ := ecs.Get(src, from[i], component.GridCoordsComponent.Kind())
		next, _ := ecs.Get(dst, to[i], component.GridCoordsComponent.Kind())
		next.Coord = prev.Coord
	}
	return true
}

func players(w *ecs.World) []ecs.Entity {
	out := w.Query(component.PlayerTagComponent.Kind(), component.GridCoordsComponent.Kind())
	slices.SortFunc(out, func(a, b ecs.Entity) int {
		return cmp.Compare(uint64(a), uint64(b))
	})
	return out
}
