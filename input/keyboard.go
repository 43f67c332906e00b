// Package input adapts ebiten's keyboard state to the grid controller's
// InputSource.
package input

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilegame/grid"
	"github.com/milk9111/tilegame/prefabs"
)

// BindingsFile is the prefab holding key bindings.
const BindingsFile = "input.yaml"

// Bindings maps each logical direction to the physical keys that trigger it.
type Bindings struct {
	Directions map[grid.Direction][]ebiten.Key
	Quit       []ebiten.Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Directions: map[grid.Direction][]ebiten.Key{
			grid.Up:    {ebiten.KeyW, ebiten.KeyArrowUp},
			grid.Left:  {ebiten.KeyA, ebiten.KeyArrowLeft},
			grid.Down:  {ebiten.KeyS, ebiten.KeyArrowDown},
			grid.Right: {ebiten.KeyD, ebiten.KeyArrowRight},
		},
		Quit: []ebiten.Key{ebiten.KeyEscape},
	}
}

// ParseBindings converts direction and key names to keys. A direction with
// no names keeps its default binding.
func ParseBindings(spec prefabs.InputBindingsSpec) (Bindings, error) {
	b := DefaultBindings()
	for name, keyNames := range spec.Directions {
		dir, err := grid.ParseDirection(name)
		if err != nil {
			return Bindings{}, fmt.Errorf("input: %w", err)
		}
		if len(keyNames) == 0 {
			continue
		}
		keys, err := parseKeys(keyNames)
		if err != nil {
			return Bindings{}, fmt.Errorf("input: %s: %w", dir, err)
		}
		b.Directions[dir] = keys
	}
	if len(spec.Quit) > 0 {
		keys, err := parseKeys(spec.Quit)
		if err != nil {
			return Bindings{}, fmt.Errorf("input: quit: %w", err)
		}
		b.Quit = keys
	}
	return b, nil
}

// LoadBindings reads and parses the named bindings prefab.
func LoadBindings(name string) (Bindings, error) {
	spec, err := prefabs.LoadInputBindingsSpec(name)
	if err != nil {
		return Bindings{}, err
	}
	return ParseBindings(spec)
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Keyboard reports directions whose bound keys were pressed this tick.
// Holding a key does not report it again.
type Keyboard struct {
	bindings    Bindings
	justPressed func(ebiten.Key) bool
}

func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{bindings: b, justPressed: inpututil.IsKeyJustPressed}
}

func (k *Keyboard) SetBindings(b Bindings) {
	k.bindings = b
}

func (k *Keyboard) NewlyPressed() grid.DirectionSet {
	var set grid.DirectionSet
	if k == nil {
		return set
	}
	for dir, keys := range k.bindings.Directions {
		if k.anyJustPressed(keys) {
			set = set.With(dir)
		}
	}
	return set
}

// QuitPressed reports whether a quit key was pressed this tick.
func (k *Keyboard) QuitPressed() bool {
	if k == nil {
		return false
	}
	return k.anyJustPressed(k.bindings.Quit)
}

func (k *Keyboard) anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.justPressed(key) {
			return true
		}
	}
	return false
}
