package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tilegame/ecs"
	"github.com/milk9111/tilegame/ecs/component"
	"github.com/milk9111/tilegame/ecs/entity"
	"github.com/milk9111/tilegame/ecs/system"
	"github.com/milk9111/tilegame/input"
	"github.com/milk9111/tilegame/levels"
	"github.com/milk9111/tilegame/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	LevelName  string
	LevelIndex int
	Debug      bool
	// Watch enables prefab hot reload from the prefabs/ directory on disk.
	Watch bool
}

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	movement  *system.GridMovementSystem
	render    *system.RenderSystem
	keyboard  *input.Keyboard
	watcher   *prefabs.Watcher

	level    *levels.Level
	registry *entity.Registry
}

func NewGame(opts Options) (*Game, error) {
	lvl, err := levels.LoadLevelFromFS(opts.LevelName, opts.LevelIndex)
	if err != nil {
		return nil, err
	}

	bindings, err := input.LoadBindings(input.BindingsFile)
	if err != nil {
		log.Printf("input bindings: %v; using defaults", err)
		bindings = input.DefaultBindings()
	}

	g := &Game{
		debug:    opts.Debug,
		render:   system.NewRenderSystem(baseWidth, baseHeight),
		keyboard: input.NewKeyboard(bindings),
		level:    lvl,
		registry: entity.DefaultRegistry(),
	}
	g.movement = system.NewGridMovementSystem(g.keyboard)
	g.scheduler = ecs.NewScheduler(
		g.movement,
		system.NewGridTransformSystem(),
	)

	if err := g.rebuildWorld(); err != nil {
		return nil, err
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// rebuildWorld replaces the world with a fresh build of the level. Players
// keep their cells from the previous world. On error the previous world is
// left untouched.
func (g *Game) rebuildWorld() error {
	world, err := entity.BuildWorld(g.level, g.registry)
	if err != nil {
		return err
	}
	if g.world != nil && !entity.CarryPlayerCoords(world, g.world) {
		log.Printf("level %s: player count changed, positions reset to spawn", g.level.Identifier)
	}
	// place transforms before the first draw
	system.NewGridTransformSystem().Update(world)
	g.world = world
	return nil
}

func (g *Game) Update() error {
	g.frames++

	if g.keyboard.QuitPressed() {
		g.Close()
		return ebiten.Termination
	}

	g.applyPrefabChanges()
	g.scheduler.Update(g.world)

	for _, evt := range ecs.DrainEvents(g.world) {
		if !g.debug {
			continue
		}
		if mv, ok := evt.Data.(system.MoveEvent); ok {
			log.Printf("%s: %v %v -> %v", evt.Type, mv.Entity, mv.From, mv.To)
		}
	}

	return nil
}

func (g *Game) applyPrefabChanges() {
	if g.watcher == nil {
		return
	}
	names, errs := g.watcher.Changed()
	for _, err := range errs {
		log.Printf("prefab watcher: %v", err)
	}

	rebuild := false
	for _, name := range names {
		if name == input.BindingsFile {
			b, err := input.LoadBindings(name)
			if err != nil {
				log.Printf("reload %s: %v", name, err)
				continue
			}
			g.keyboard.SetBindings(b)
			log.Printf("reloaded %s", name)
			continue
		}
		rebuild = true
	}

	if rebuild {
		if err := g.rebuildWorld(); err != nil {
			log.Printf("reload level %s: %v", g.level.Identifier, err)
			return
		}
		log.Printf("rebuilt level %s after prefab change", g.level.Identifier)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	msg := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if g.debug {
		msg += fmt.Sprintf("\nLevel: %s    Last move: %v", g.level.Identifier, g.movement.LastDirection())
		ecs.ForEach2(g.world, component.PlayerTagComponent.Kind(), component.GridCoordsComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, c *component.GridCoords) {
			msg += fmt.Sprintf("\nPlayer %v: %v", e, c.Coord)
		})
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("close prefab watcher: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
