package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tilegame/levels"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and file:line logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.DefaultName, "level project in levels/ (basename, .json optional)")
	levelIndex := flag.Int("index", 0, "index of the level inside the project")
	watch := flag.Bool("watch", false, "hot reload prefabs from ./prefabs")
	flag.Parse()

	if *debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("tile-based-game")

	game, err := NewGame(Options{
		LevelName:  *levelName,
		LevelIndex: *levelIndex,
		Debug:      *debug,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
