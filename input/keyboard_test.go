package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/grid"
	"github.com/milk9111/tilegame/prefabs"
)

// fakeKeys tracks held keys across ticks and reports released-to-pressed
// transitions the way inpututil does.
type fakeKeys struct {
	prev map[ebiten.Key]bool
	cur  map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{prev: map[ebiten.Key]bool{}, cur: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) tick(held ...ebiten.Key) {
	f.prev = f.cur
	f.cur = map[ebiten.Key]bool{}
	for _, k := range held {
		f.cur[k] = true
	}
}

func (f *fakeKeys) justPressed(k ebiten.Key) bool {
	return f.cur[k] && !f.prev[k]
}

func newTestKeyboard(f *fakeKeys) *Keyboard {
	k := NewKeyboard(DefaultBindings())
	k.justPressed = f.justPressed
	return k
}

func TestKeyboardMapsBoundKeys(t *testing.T) {
	cases := []struct {
		name string
		held []ebiten.Key
		want grid.DirectionSet
	}{
		{"nothing", nil, grid.NewDirectionSet()},
		{"w", []ebiten.Key{ebiten.KeyW}, grid.NewDirectionSet(grid.Up)},
		{"arrow_up", []ebiten.Key{ebiten.KeyArrowUp}, grid.NewDirectionSet(grid.Up)},
		{"a", []ebiten.Key{ebiten.KeyA}, grid.NewDirectionSet(grid.Left)},
		{"arrow_down", []ebiten.Key{ebiten.KeyArrowDown}, grid.NewDirectionSet(grid.Down)},
		{"d", []ebiten.Key{ebiten.KeyD}, grid.NewDirectionSet(grid.Right)},
		{"s_and_a", []ebiten.Key{ebiten.KeyS, ebiten.KeyA}, grid.NewDirectionSet(grid.Down, grid.Left)},
		{"w_and_arrow_up", []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, grid.NewDirectionSet(grid.Up)},
		{"unbound", []ebiten.Key{ebiten.KeyQ}, grid.NewDirectionSet()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFakeKeys()
			k := newTestKeyboard(f)
			f.tick(c.held...)
			if got := k.NewlyPressed(); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestKeyboardIsEdgeTriggered(t *testing.T) {
	f := newFakeKeys()
	k := newTestKeyboard(f)

	ticks := [][]ebiten.Key{
		{ebiten.KeyD},
		{ebiten.KeyD},
		{ebiten.KeyD},
		{},
		{ebiten.KeyD},
	}
	var moves int
	for _, held := range ticks {
		f.tick(held...)
		if k.NewlyPressed().Has(grid.Right) {
			moves++
		}
	}
	if moves != 2 {
		t.Fatalf("expected 2 presses across a hold and a re-press, got %d", moves)
	}
}

func TestKeyboardQuit(t *testing.T) {
	f := newFakeKeys()
	k := newTestKeyboard(f)

	f.tick(ebiten.KeyW)
	if k.QuitPressed() {
		t.Fatalf("did not expect quit")
	}
	f.tick(ebiten.KeyEscape)
	if !k.QuitPressed() {
		t.Fatalf("expected quit on escape")
	}

	var nilKeyboard *Keyboard
	if nilKeyboard.QuitPressed() || !nilKeyboard.NewlyPressed().Empty() {
		t.Fatalf("nil keyboard should report nothing")
	}
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings(prefabs.InputBindingsSpec{
		Directions: map[string][]string{"up": {"I"}, "down": nil},
		Quit:       []string{"Q", "Escape"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := b.Directions[grid.Up]; len(got) != 1 || got[0] != ebiten.KeyI {
		t.Fatalf("expected up bound to I, got %v", got)
	}
	if got := b.Directions[grid.Left]; len(got) != 2 || got[0] != ebiten.KeyA {
		t.Fatalf("expected default left binding, got %v", got)
	}
	if len(b.Quit) != 2 || b.Quit[0] != ebiten.KeyQ || b.Quit[1] != ebiten.KeyEscape {
		t.Fatalf("unexpected quit binding %v", b.Quit)
	}

	if got := b.Directions[grid.Down]; len(got) != 2 || got[0] != ebiten.KeyS {
		t.Fatalf("expected empty list to keep default down binding, got %v", got)
	}

	bad := []struct {
		name string
		spec prefabs.InputBindingsSpec
	}{
		{"unknown_key", prefabs.InputBindingsSpec{Directions: map[string][]string{"left": {"NotAKey"}}}},
		{"unknown_direction", prefabs.InputBindingsSpec{Directions: map[string][]string{"jump": {"Space"}}}},
		{"none_direction", prefabs.InputBindingsSpec{Directions: map[string][]string{"none": {"N"}}}},
		{"upper_case_direction", prefabs.InputBindingsSpec{Directions: map[string][]string{"Up": {"W"}}}},
		{"unknown_quit_key", prefabs.InputBindingsSpec{Quit: []string{"NotAKey"}}},
	}
	for _, c := range bad {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseBindings(c.spec); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadBindings(t *testing.T) {
	b, err := LoadBindings(BindingsFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := DefaultBindings()
	for dir, keys := range want.Directions {
		got := b.Directions[dir]
		if len(got) != len(keys) {
			t.Fatalf("%v: expected %v, got %v", dir, keys, got)
		}
		for i := range keys {
			if got[i] != keys[i] {
				t.Fatalf("%v: expected %v, got %v", dir, keys, got)
			}
		}
	}
}

func TestKeyboardSetBindings(t *testing.T) {
	f := newFakeKeys()
	k := newTestKeyboard(f)
	k.SetBindings(Bindings{Directions: map[grid.Direction][]ebiten.Key{grid.Up: {ebiten.KeyK}}})

	f.tick(ebiten.KeyW)
	if !k.NewlyPressed().Empty() {
		t.Fatalf("old binding should no longer fire")
	}
	f.tick(ebiten.KeyK)
	if got := k.NewlyPressed(); got != grid.NewDirectionSet(grid.Up) {
		t.Fatalf("expected up from new binding, got %v", got)
	}
}
