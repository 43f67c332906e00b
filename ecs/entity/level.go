package entity

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"github.com/milk9111/tilegame/grid"
	"github.com/milk9111/tilegame/levels"
)

// Layer colour used when a level layer does not configure one.
const defaultLayerColor = "#404040"

// LoadLevelToWorld creates the level grid entity, one tile entity per
// non-empty cell of each layer, and one entity per placed archetype known to
// reg. Unknown archetypes are logged and skipped.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, reg *Registry) error {
	if world == nil || lvl == nil {
		return fmt.Errorf("load level: world and level are required")
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	levelEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, levelEntity, component.LevelGridComponent.Kind(), &component.LevelGrid{
		Identifier: lvl.Identifier,
		Width:      lvl.Width,
		Height:     lvl.Height,
		CellSize:   lvl.CellSize,
	}); err != nil {
		return fmt.Errorf("load level: add level grid: %w", err)
	}

	for layerIdx := range lvl.Layers {
		hex := lvl.LayerColor(layerIdx)
		if hex == "" {
			hex = defaultLayerColor
		}
		c, err := ParseColor(hex)
		if err != nil {
			return fmt.Errorf("load level: layer %d: %w", layerIdx, err)
		}
		for y := 0; y < lvl.Height; y++ {
			for x := 0; x < lvl.Width; x++ {
				if lvl.Tile(layerIdx, x, y) <= 0 {
					continue // skip empty tiles
				}
				if err := addTile(world, grid.FromRow(x, y, lvl.Height), c, lvl.CellSize, layerIdx); err != nil {
					return fmt.Errorf("load level: tile (%d,%d) layer %d: %w", x, y, layerIdx, err)
				}
			}
		}
	}

	for _, ent := range lvl.Entities {
		at := grid.FromRow(ent.X, ent.Y, lvl.Height)
		if _, err := reg.Spawn(world, ent.Type, at); err != nil {
			if errors.Is(err, ErrUnknownArchetype) {
				log.Printf("load level %s: skipping entity %q at %v: no archetype registered", lvl.Identifier, ent.Type, at)
				continue
			}
			return fmt.Errorf("load level: spawn %q: %w", ent.Type, err)
		}
	}

	return nil
}

func addTile(world *ecs.World, at grid.Coord, c color.RGBA, cellSize, layer int) error {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TileTagComponent.Kind(), &component.TileTag{}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.GridCoordsComponent.Kind(), &component.GridCoords{Coord: at}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return err
	}
	half := float64(cellSize) / 2
	if err := ecs.Add(world, e, component.SpriteComponent.Kind(), &component.Sprite{
		Color:   c,
		Width:   cellSize,
		Height:  cellSize,
		OriginX: half,
		OriginY: half,
	}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
}
