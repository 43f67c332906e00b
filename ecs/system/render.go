package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"golang.org/x/image/colornames"
)

type spriteKey struct {
	color color.RGBA
	w, h  int
}

type RenderSystem struct {
	camEntity  ecs.Entity
	viewWidth  float64
	viewHeight float64
	images     map[spriteKey]*ebiten.Image
}

// NewRenderSystem draws into a logical screen of viewWidth x viewHeight.
func NewRenderSystem(viewWidth, viewHeight float64) *RenderSystem {
	return &RenderSystem{
		viewWidth:  viewWidth,
		viewHeight: viewHeight,
		images:     make(map[spriteKey]*ebiten.Image),
	}
}

// Camera returns the world point at the top-left of the view and the zoom.
func (r *RenderSystem) Camera(w *ecs.World) (float64, float64, float64) {
	if !r.camEntity.Valid() || !ecs.Has(w, r.camEntity, component.CameraComponent.Kind()) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	centerX, centerY := r.viewWidth/2, r.viewHeight/2
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		centerX = camTransform.X
		centerY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}
	return centerX - r.viewWidth/2/zoom, centerY - r.viewHeight/2/zoom, zoom
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Black)
	camX, camY, zoom := r.Camera(w)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		if e == r.camEntity {
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			continue
		}
		img := r.spriteImage(s)
		if img == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)

		screen.DrawImage(img, op)
	}
}

// spriteImage returns the sprite's image, creating a shared solid fill for
// colour-only sprites.
func (r *RenderSystem) spriteImage(s *component.Sprite) *ebiten.Image {
	if s.Image != nil {
		return s.Image
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil
	}
	key := spriteKey{color: s.Color, w: s.Width, h: s.Height}
	img, ok := r.images[key]
	if !ok {
		img = ebiten.NewImage(s.Width, s.Height)
		img.Fill(s.Color)
		r.images[key] = img
	}
	s.Image = img
	return img
}
