package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"github.com/milk9111/tilegame/grid"
	"github.com/milk9111/tilegame/prefabs"
	"golang.org/x/image/colornames"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"goal_tag":     addGoalTag,
	"camera_tag":   addCameraTag,
	"grid_coords":  addGridCoords,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
	"camera":       addCamera,
}

var componentBuildOrder = []string{
	"player_tag",
	"goal_tag",
	"camera_tag",
	"grid_coords",
	"transform",
	"sprite",
	"render_layer",
	"camera",
}

// BuildEntity creates an entity from the named prefab. On error nothing is
// left in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec prefabs.EntityBuildSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var unknown []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(unknown, ", "))
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}
	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

// SetGridCoords moves e to c, adding the component if needed.
func SetGridCoords(w *ecs.World, e ecs.Entity, c grid.Coord) error {
	coords, ok := ecs.Get(w, e, component.GridCoordsComponent.Kind())
	if !ok {
		return ecs.Add(w, e, component.GridCoordsComponent.Kind(), &component.GridCoords{Coord: c})
	}
	coords.Coord = c
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addGoalTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.GoalTagComponent.Kind(), &component.GoalTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type gridCoordsSpec = prefabs.GridCoordsComponentSpec

func addGridCoords(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gridCoordsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode grid_coords spec: %w", err)
	}
	return ecs.Add(w, e, component.GridCoordsComponent.Kind(), &component.GridCoords{
		Coord: grid.Coord{X: spec.X, Y: spec.Y},
	})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("sprite size %dx%d must be positive", spec.Width, spec.Height)
	}
	c, err := ParseColor(spec.Color)
	if err != nil {
		return err
	}

	sprite := component.Sprite{
		Color:   c,
		Width:   spec.Width,
		Height:  spec.Height,
		OriginX: spec.OriginX,
		OriginY: spec.OriginY,
	}
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		sprite.OriginX = float64(spec.Width) / 2
		sprite.OriginY = float64(spec.Height) / 2
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	scale := spec.ProjectionScale
	if scale <= 0 {
		scale = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: 1 / scale})
}

// ParseColor accepts a colornames name ("crimson") or #rrggbb / #rrggbbaa.
func ParseColor(v string) (color.RGBA, error) {
	s := strings.TrimSpace(v)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color name %q", v)
	}
	return parseHexColor(s)
}

func parseHexColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: b, A: a}).(color.RGBA), nil
}
