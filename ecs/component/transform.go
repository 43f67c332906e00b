package component

// Transform is a position in level pixel space, y down. Grid entities get it
// from their GridCoords every tick; the camera's is the centre of the view.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
