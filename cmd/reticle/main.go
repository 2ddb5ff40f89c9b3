package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"reticle/internal/game"
	"reticle/internal/world"
)

func main() {
	configPath := flag.String("config", "reticle.json", "settings file")
	scenePath := flag.String("scene", "", "scene file (default: built-in scene)")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	settings, err := game.LoadSettings(*configPath)
	if err != nil {
		log.Printf("Game: using default settings: %v", err)
	}

	w := world.New()
	if *scenePath == "" {
		w.DefaultScene()
	} else if err := w.LoadScene(*scenePath); err != nil {
		log.Fatalf("World: %v", err)
	}

	g := game.New(settings, w)
	g.SettingsPath = *configPath
	g.Run()
}
