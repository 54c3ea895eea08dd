package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gauntlet/internal/application/game"
	"github.com/younwookim/gauntlet/internal/application/scene/menu"
	"github.com/younwookim/gauntlet/internal/infrastructure/audio"
	"github.com/younwookim/gauntlet/internal/infrastructure/config"
	"github.com/younwookim/gauntlet/internal/infrastructure/save"
	"github.com/younwookim/gauntlet/internal/sim"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Directory of YAML table overrides (default: embedded tables)")
	watch := flag.Bool("watch", false, "Reload the -config directory when its files change")
	mute := flag.Bool("mute", false, "Disable audio")
	savePath := flag.String("save", "", "Progress file path (default: under the user config dir)")
	flag.Parse()

	loader, err := tableLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	src, err := config.NewSource(loader)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *watch {
		if *configDir == "" {
			log.Printf("-watch does nothing without -config; tables are embedded")
		} else if err := watchTables(src, *configDir); err != nil {
			log.Fatalf("Failed to watch %s: %v", *configDir, err)
		}
	}

	path := *savePath
	if path == "" {
		if path, err = save.DefaultPath(); err != nil {
			log.Fatalf("Failed to resolve save path: %v", err)
		}
	}
	store, err := save.Open(path)
	if err != nil {
		log.Fatalf("Failed to open save: %v", err)
	}

	au := audio.NewPlayer()
	au.SetMuted(*mute)
	if !*mute {
		if err := au.Initialize(); err != nil {
			log.Printf("Audio disabled: %v", err)
		}
	}
	defer au.Cleanup()

	// Set up ebiten
	ebiten.SetWindowSize(sim.ViewWidth*2, sim.ViewHeight*2)
	ebiten.SetWindowTitle("Gauntlet")
	ebiten.SetTPS(sim.TicksPerSecond)

	// Run game
	g := game.New(menu.New(src, store, au), sim.ViewWidth, sim.ViewHeight)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func tableLoader(dir string) (*config.Loader, error) {
	if dir == "" {
		return config.Embedded()
	}
	return config.NewLoader(dir), nil
}

// watchTables swaps in a fresh table snapshot whenever a YAML file in
// dir changes. Reloads only affect runs started afterwards.
func watchTables(src *config.Source, dir string) error {
	watcher, err := config.NewWatcher(dir)
	if err != nil {
		return err
	}
	go func() {
		for name := range watcher.Events {
			if err := src.Reload(); err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			log.Printf("Config reloaded (%s)", name)
		}
	}()
	go func() {
		for err := range watcher.Errors {
			log.Printf("Config watcher: %v", err)
		}
	}()
	return nil
}
