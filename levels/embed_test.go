package levels

import (
	"errors"
	"testing"
)

func TestLoadDefaultLevel(t *testing.T) {
	for _, name := range []string{"", "tile-based-game", "tile-based-game.json", "levels/tile-based-game.json"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name, 0)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if lvl.Width != 40 || lvl.Height != 22 || lvl.CellSize != 16 {
				t.Fatalf("unexpected level size %dx%d cell %d", lvl.Width, lvl.Height, lvl.CellSize)
			}
			if len(lvl.Layers) != 2 {
				t.Fatalf("expected 2 layers, got %d", len(lvl.Layers))
			}

			types := map[string]int{}
			for _, e := range lvl.Entities {
				types[e.Type]++
			}
			if types["Player"] != 1 || types["Goal"] != 1 {
				t.Fatalf("expected one Player and one Goal, got %v", types)
			}
		})
	}
}

func TestLoadLevelIndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 1} {
		_, err := LoadLevelFromFS(DefaultName, idx)
		if !errors.Is(err, ErrLevelIndex) {
			t.Fatalf("index %d: expected ErrLevelIndex, got %v", idx, err)
		}
	}
}

func TestLoadMissingLevel(t *testing.T) {
	if _, err := LoadLevelFromFS("nope", 0); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseProjectValidation(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{"ok", `{"levels":[{"identifier":"a","width":2,"height":1,"layers":[[1,0]],"entities":[{"type":"Player","x":1,"y":0}]}]}`, false},
		{"bad_json", `{"levels":`, true},
		{"zero_size", `{"levels":[{"identifier":"a","width":0,"height":1}]}`, true},
		{"short_layer", `{"levels":[{"identifier":"a","width":2,"height":2,"layers":[[1,0,1]]}]}`, true},
		{"entity_outside", `{"levels":[{"identifier":"a","width":2,"height":2,"entities":[{"type":"Goal","x":2,"y":0}]}]}`, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ParseProject([]byte(c.data))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Levels[0].CellSize != defaultCellSize {
				t.Fatalf("expected default cell size %d, got %d", defaultCellSize, p.Levels[0].CellSize)
			}
		})
	}
}

func TestTileAndLayerColor(t *testing.T) {
	lvl, err := LoadLevelFromFS(DefaultName, 0)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Tile(1, 0, 0) != 1 {
		t.Fatalf("expected wall in top-left corner")
	}
	if lvl.Tile(1, 3, 18) != 0 {
		t.Fatalf("expected no wall under the player spawn")
	}
	if lvl.Tile(5, 0, 0) != 0 || lvl.Tile(0, -1, 0) != 0 || lvl.Tile(0, 0, lvl.Height) != 0 {
		t.Fatalf("expected 0 for out of range lookups")
	}
	if lvl.LayerColor(0) == "" || lvl.LayerColor(9) != "" {
		t.Fatalf("unexpected layer colours %q %q", lvl.LayerColor(0), lvl.LayerColor(9))
	}
}
