package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skelecursor/prefabs"
)

func main() {
	creatureName := flag.String("creature", "lizard", "creature prefab in prefabs/ (basename, .yaml optional)")
	configPath := flag.String("config", "", "tuning file (.toml or .yaml) applied on top of the prefab")
	debug := flag.Bool("debug", false, "show frame and creature diagnostics")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	watch := flag.Bool("watch", false, "reload prefabs, scripts and the tuning file when they change on disk")
	mute := flag.Bool("mute", false, "disable the chomp sound")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("skelecursor")

	opts := GameOptions{
		Creature: *creatureName,
		Config:   *configPath,
		Debug:    *debug,
		Mute:     *mute,
		Seed:     time.Now().UnixNano(),
	}

	if *watch {
		dirs := prefabs.WatchDirs()
		if *configPath != "" {
			dirs = append(dirs, filepath.Dir(*configPath))
		}
		if len(dirs) == 0 {
			log.Printf("watch: no prefab directory on disk, nothing to watch")
		} else if watcher, err := prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("watch: %v", err)
		} else {
			defer watcher.Close()
			opts.Changes = watcher
		}
	}

	game, err := NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	// The creature replaces the native pointer.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
