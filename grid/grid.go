// Package grid holds the engine-independent grid movement rules: integer
// cell coordinates, the four unit directions, and the controller that turns
// a tick's newly pressed directions into one-cell steps.
package grid

import "fmt"

// Coord is a cell position on the level grid. Y grows upward.
type Coord struct {
	X int
	Y int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a logical movement direction. The zero value is None.
type Direction uint8

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

var directionNames = [...]string{
	None:  "none",
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Vector returns the unit step for d. None and unknown values map to (0,0).
func (d Direction) Vector() Coord {
	switch d {
	case Up:
		return Coord{X: 0, Y: 1}
	case Down:
		return Coord{X: 0, Y: -1}
	case Left:
		return Coord{X: -1, Y: 0}
	case Right:
		return Coord{X: 1, Y: 0}
	default:
		return Coord{}
	}
}

// ParseDirection maps a case-sensitive lower-case name to a Direction.
func ParseDirection(s string) (Direction, error) {
	for d, name := range directionNames {
		if name == s && Direction(d) != None {
			return Direction(d), nil
		}
	}
	return None, fmt.Errorf("grid: unknown direction %q", s)
}

// DirectionSet is the set of logical directions newly pressed during a tick.
type DirectionSet uint8

// NewDirectionSet builds a set from ds. None is ignored.
func NewDirectionSet(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// With returns s plus d.
func (s DirectionSet) With(d Direction) DirectionSet {
	if d == None || d > Right {
		return s
	}
	return s | 1<<(d-1)
}

// Has reports whether d is in s. None is never a member.
func (s DirectionSet) Has(d Direction) bool {
	if d == None || d > Right {
		return false
	}
	return s&(1<<(d-1)) != 0
}

// Empty reports whether no direction is set.
func (s DirectionSet) Empty() bool {
	return s&0x0f == 0
}

func (s DirectionSet) String() string {
	out := "{"
	first := true
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !s.Has(d) {
			continue
		}
		if !first {
			out += ","
		}
		out += d.String()
		first = false
	}
	return out + "}"
}
