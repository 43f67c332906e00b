package component

import "github.com/milk9111/tilegame/grid"

// GridCoords is an entity's cell on the level grid. Level loading creates it;
// only the grid movement system changes it afterwards.
type GridCoords struct {
	grid.Coord
}

var GridCoordsComponent = NewComponent[GridCoords]()
