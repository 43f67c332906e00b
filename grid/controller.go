package grid

import "iter"

// Precedence is the order in which simultaneously pressed directions are
// considered. The first one present in the pressed set wins.
var Precedence = []Direction{Up, Left, Down, Right}

// InputSource supplies the directions whose bound keys went from released to
// pressed during the current tick.
type InputSource interface {
	NewlyPressed() DirectionSet
}

// InputSourceFunc adapts a plain function to InputSource.
type InputSourceFunc func() DirectionSet

func (f InputSourceFunc) NewlyPressed() DirectionSet {
	return f()
}

// ResolveDirection picks the single direction to move this tick using the
// default precedence.
func ResolveDirection(pressed DirectionSet) Direction {
	return resolve(Precedence, pressed)
}

// ApplyMovement returns position moved one cell in direction. None leaves it
// unchanged. No bounds are enforced.
func ApplyMovement(position Coord, direction Direction) Coord {
	return position.Add(direction.Vector())
}

// Controller resolves one direction per tick and applies it to every
// controlled position. The zero value uses Precedence.
type Controller struct {
	Order []Direction
}

// Resolve is ResolveDirection with the controller's order.
func (c Controller) Resolve(pressed DirectionSet) Direction {
	if len(c.Order) == 0 {
		return resolve(Precedence, pressed)
	}
	return resolve(c.Order, pressed)
}

// Step resolves pressed once and moves every position by the result. It
// returns the resolved direction.
func (c Controller) Step(pressed DirectionSet, positions iter.Seq[*Coord]) Direction {
	d := c.Resolve(pressed)
	if d == None || positions == nil {
		return d
	}
	for p := range positions {
		if p == nil {
			continue
		}
		*p = ApplyMovement(*p, d)
	}
	return d
}

// Tick reads src once and steps positions.
func (c Controller) Tick(src InputSource, positions iter.Seq[*Coord]) Direction {
	if src == nil {
		return None
	}
	return c.Step(src.NewlyPressed(), positions)
}

func resolve(order []Direction, pressed DirectionSet) Direction {
	for _, d := range order {
		if pressed.Has(d) {
			return d
		}
	}
	return None
}
