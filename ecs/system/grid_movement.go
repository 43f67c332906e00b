package system

import (
	"iter"

	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"github.com/milk9111/tilegame/grid"
)

// EventMoved is emitted once per player that changed cell, with a MoveEvent
// payload.
const EventMoved = "moved"

type MoveEvent struct {
	Entity    ecs.Entity
	From, To  grid.Coord
	Direction grid.Direction
}

// GridMovementSystem moves every player-controlled entity one cell per newly
// pressed direction. The input source is read once per tick and the same
// direction is applied to all players.
type GridMovementSystem struct {
	source     grid.InputSource
	controller grid.Controller
	last       grid.Direction
}

func NewGridMovementSystem(source grid.InputSource) *GridMovementSystem {
	return &GridMovementSystem{source: source}
}

type controlled struct {
	entity ecs.Entity
	from   grid.Coord
	coords *component.GridCoords
}

func (g *GridMovementSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}

	players := controlledEntities(w)
	g.last = g.controller.Tick(g.source, coordsOf(players))
	if g.last == grid.None {
		return
	}

	for _, p := range players {
		ecs.EmitEvent(w, ecs.Event{Type: EventMoved, Data: MoveEvent{
			Entity:    p.entity,
			From:      p.from,
			To:        p.coords.Coord,
			Direction: g.last,
		}})
	}
}

// LastDirection is the direction resolved on the most recent tick.
func (g *GridMovementSystem) LastDirection() grid.Direction {
	return g.last
}

func controlledEntities(w *ecs.World) []controlled {
	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.GridCoordsComponent.Kind(),
	)
	out := make([]controlled, 0, len(entities))
	for _, e := range entities {
		coords, ok := ecs.Get(w, e, component.GridCoordsComponent.Kind())
		if !ok {
			continue
		}
		out = append(out, controlled{entity: e, from: coords.Coord, coords: coords})
	}
	return out
}

func coordsOf(players []controlled) iter.Seq[*grid.Coord] {
	return func(yield func(*grid.Coord) bool) {
		for _, p := range players {
			if !yield(&p.coords.Coord) {
				return
			}
		}
	}
}
