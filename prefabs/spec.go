package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EntityBuildSpec is a prefab: a name plus raw component specs keyed by
// builder name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes one raw component entry into its typed spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type GridCoordsComponentSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SpriteComponentSpec describes a solid-colour sprite. Color is a
// golang.org/x/image/colornames name or a #rrggbb hex string.
type SpriteComponentSpec struct {
	Color              string  `yaml:"color"`
	Width              int     `yaml:"width"`
	Height             int     `yaml:"height"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

// CameraComponentSpec mirrors an orthographic projection: a scale of 0.5
// shows half as much world, i.e. a zoom of 2.
type CameraComponentSpec struct {
	ProjectionScale float64 `yaml:"projection_scale"`
}

// InputBindingsSpec maps direction names ("up", "left", ...) and the quit
// action to ebiten key names (ebiten.Key text form, e.g. "W", "ArrowUp").
type InputBindingsSpec struct {
	Directions map[string][]string `yaml:"directions"`
	Quit       []string            `yaml:"quit"`
}

func LoadInputBindingsSpec(filename string) (InputBindingsSpec, error) {
	return LoadSpec[InputBindingsSpec](filename)
}
