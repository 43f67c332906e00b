package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a solid-colour quad. Image is filled in lazily by the render
// system so entities can be built before the game loop starts.
type Sprite struct {
	Image   *ebiten.Image
	Color   color.RGBA
	Width   int
	Height  int
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
