package component

// Camera is a fixed 2D view. Zoom is the inverse of the projection scale; the
// owning entity's Transform holds the world point at the centre of the view.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
