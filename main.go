package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a settings.yaml overriding the embedded defaults")
		startMap   = flag.String("map", "", "map to start on (default from settings)")
		debug      = flag.Bool("debug", false, "enable the F3 debug overlay")
		watch      = flag.String("watch", "", "comma-separated directories to watch for map/shader changes")
	)
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	start := cfg.StartMap
	if *startMap != "" {
		start = *startMap
	}
	var watchDirs []string
	if *watch != "" {
		watchDirs = strings.Split(*watch, ",")
	}

	game, err := NewGame(cfg, start, *debug, watchDirs)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
