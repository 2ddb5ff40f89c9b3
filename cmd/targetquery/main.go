// Runs a single targeting query without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"reticle/internal/camera"
	"reticle/internal/game"
	"reticle/internal/physics"
	"reticle/internal/targeting"
	"reticle/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type vec3Flag struct {
	v rl.Vector3
}

func (f *vec3Flag) String() string {
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vec3Flag) Set(s string) error {
	_, err := fmt.Sscanf(s, "%g,%g,%g", &f.v.X, &f.v.Y, &f.v.Z)
	if err != nil {
		return fmt.Errorf("want x,y,z: %w", err)
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "settings file (default: built-in settings)")
	scenePath := flag.String("scene", "", "scene file (default: built-in scene)")
	radius := flag.Float64("radius", -1, "reticle radius in pixels (overrides settings)")
	ignoreGlass := flag.Bool("ignore-glass", false, "ignore the glass layer")
	fovy := flag.Float64("fovy", 45, "vertical field of view in degrees")
	width := flag.Int("width", 1280, "viewport width")
	height := flag.Int("height", 720, "viewport height")
	from := &vec3Flag{v: rl.Vector3{Y: 1, Z: -4}}
	at := &vec3Flag{v: rl.Vector3{Y: 1, Z: 8}}
	flag.Var(from, "from", "camera position x,y,z")
	flag.Var(at, "at", "camera target x,y,z")
	flag.Parse()

	settings := game.DefaultSettings()
	if *configPath != "" {
		var err error
		if settings, err = game.LoadSettings(*configPath); err != nil {
			log.Printf("Query: using default settings: %v", err)
		}
	}
	cfg := settings.Targeting
	if *radius >= 0 {
		cfg.Radius = float32(*radius)
	}
	if *ignoreGlass {
		cfg.IgnoredLayers = cfg.IgnoredLayers.With(physics.LayerGlass)
	}

	w := world.New()
	if *scenePath == "" {
		w.DefaultScene()
	} else if err := w.LoadScene(*scenePath); err != nil {
		log.Fatalf("World: %v", err)
	}

	view := camera.NewView(rl.Camera3D{
		Position:   from.v,
		Target:     at.v,
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(*fovy),
		Projection: rl.CameraPerspective,
	}, rl.Rectangle{Width: float32(*width), Height: float32(*height)})

	engine := targeting.NewEngine(view, w.PhysicsWorld, w.Registry)
	result := engine.Acquire(cfg)
	if !result.Hit {
		fmt.Println("no hit")
		os.Exit(1)
	}
	hit := result.Info
	fmt.Printf("hit %s at (%.3f, %.3f, %.3f) distance %.3f\n",
		hit.GameObject.Name, hit.Point.X, hit.Point.Y, hit.Point.Z, hit.Distance)
}
