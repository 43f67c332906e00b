package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultName is the level file loaded when none is given.
const DefaultName = "tile-based-game.json"

const defaultCellSize = 16

var ErrLevelIndex = errors.New("levels: level index out of range")

// Project is one level file. It may hold several levels; the game picks one
// by index.
type Project struct {
	Levels []Level `json:"levels"`
}

// Level is a grid of Width x Height cells. Layers hold one tile id per cell,
// row-major from the top-left; 0 means empty.
type Level struct {
	Identifier string      `json:"identifier"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	CellSize   int         `json:"cell_size"`
	Layers     [][]int     `json:"layers"`
	LayerMeta  []LayerMeta `json:"layer_meta,omitempty"`
	Entities   []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Entity is a placed archetype. X is the column and Y the row counted from
// the top of the level.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Tile returns the tile id at column x, row y of layer, or 0 when out of
// range.
func (l *Level) Tile(layer, x, y int) int {
	if layer < 0 || layer >= len(l.Layers) || x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return 0
	}
	idx := y*l.Width + x
	if idx >= len(l.Layers[layer]) {
		return 0
	}
	return l.Layers[layer][idx]
}

// LayerColor returns the configured colour of layer, or "" when unset.
func (l *Level) LayerColor(layer int) string {
	if layer < 0 || layer >= len(l.LayerMeta) {
		return ""
	}
	return l.LayerMeta[layer].Color
}

func (l *Level) validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %q: invalid size %dx%d", l.Identifier, l.Width, l.Height)
	}
	if l.CellSize <= 0 {
		l.CellSize = defaultCellSize
	}
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			return fmt.Errorf("level %q: layer %d has %d tiles, want %d", l.Identifier, i, len(layer), l.Width*l.Height)
		}
	}
	for _, ent := range l.Entities {
		if ent.X < 0 || ent.Y < 0 || ent.X >= l.Width || ent.Y >= l.Height {
			return fmt.Errorf("level %q: entity %q at (%d,%d) outside level", l.Identifier, ent.Type, ent.X, ent.Y)
		}
	}
	return nil
}

// ParseProject decodes a level file and validates every level in it.
func ParseProject(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i := range p.Levels {
		if err := p.Levels[i].validate(); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// LoadProjectFromFS reads a level file from the embedded levels. The .json
// extension is optional.
func LoadProjectFromFS(name string) (*Project, error) {
	data, err := fs.ReadFile(LevelsFS, normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseProject(data)
}

// LoadLevelFromFS loads the level at index from the named level file.
func LoadLevelFromFS(name string, index int) (*Level, error) {
	p, err := LoadProjectFromFS(name)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p.Levels) {
		return nil, fmt.Errorf("%w: %d of %d in %s", ErrLevelIndex, index, len(p.Levels), name)
	}
	return &p.Levels[index], nil
}

func normalizeName(name string) string {
	if name == "" {
		return DefaultName
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if path.Ext(name) == "" {
		name += ".json"
	}
	return name
}
