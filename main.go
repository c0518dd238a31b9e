package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrollcore/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "show tick, state and contact info")
	watch := flag.Bool("watch", false, "hot reload prefabs and scripts from prefabs/")
	zoom := flag.Float64("zoom", 3, "world to screen scale")
	levelName := flag.String("level", "demo", "level name in levels/ (basename, .json optional)")
	flag.Parse()

	game, err := NewGame(*levelName, *debug, *zoom)
	if err != nil {
		log.Fatal(err)
	}

	if *watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			defer watcher.Close()
			game.watcher = watcher
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("scrollcore")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
