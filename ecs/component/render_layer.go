package component

// RenderLayer orders drawing, lowest Index first. Tiles use their level layer
// index and prefabs pick a layer above them.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
