package system

import (
	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"github.com/milk9111/tilegame/grid"
)

// GridTransformSystem places every entity with GridCoords at the centre of
// its cell in level pixel space.
type GridTransformSystem struct{}

func NewGridTransformSystem() *GridTransformSystem {
	return &GridTransformSystem{}
}

func (s *GridTransformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	levelEntity, ok := w.First(component.LevelGridComponent.Kind())
	if !ok {
		return
	}
	level, ok := ecs.Get(w, levelEntity, component.LevelGridComponent.Kind())
	if !ok || level.CellSize <= 0 {
		return
	}

	ecs.ForEach2(w, component.GridCoordsComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, coords *component.GridCoords, t *component.Transform) {
			t.X, t.Y = grid.CellCenter(coords.Coord, level.CellSize, level.Height)
		})
}
