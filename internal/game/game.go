package game

import (
	"fmt"
	"log"
	"time"

	"reticle/internal/camera"
	"reticle/internal/engine"
	"reticle/internal/physics"
	"reticle/internal/targeting"
	"reticle/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Settings     Settings
	SettingsPath string // Ctrl+S writes here when set
	World        *world.World
	Camera       *camera.OrbitCamera
	Targeting    *targeting.Engine
	Renderer     *world.Renderer
	DebugMode    bool

	result      targeting.Result
	ignoreGlass bool
	saveMsg     string
	saveMsgTime float64

	// Debug timing (ms)
	updateMs float64
	targetMs float64
	drawMs   float64
}

func New(settings Settings, w *world.World) *Game {
	cam := camera.NewOrbitCamera(rl.Vector3{Y: 1, Z: 8})
	cam.Limits = settings.Pitch
	cam.Pitch = camera.ClampPitch(cam.Pitch, cam.Limits)

	g := &Game{
		Settings:    settings,
		World:       w,
		Camera:      cam,
		Renderer:    world.NewRenderer(),
		ignoreGlass: settings.Targeting.IgnoredLayers.Contains(physics.LayerGlass),
	}
	g.Targeting = targeting.NewEngine(g.view(), w.PhysicsWorld, w.Registry)
	g.Targeting.Apply(settings.Targeting)
	return g
}

func (g *Game) Run() {
	win := g.Settings.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(win.Width, win.Height, "Reticle Targeting")
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	initRayguiStyle()

	g.World.Scene.Start()
	log.Printf("Game: %d targetables, radius %.0f px, max distance %.0f",
		g.World.Registry.Len(), g.Settings.Targeting.Radius, g.Settings.Targeting.MaxDistance)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// view describes the camera for the current frame. Before the window exists
// the configured size stands in for the screen.
func (g *Game) view() camera.View {
	w, h := float32(g.Settings.Window.Width), float32(g.Settings.Window.Height)
	if rl.IsWindowReady() {
		w, h = float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	}
	return camera.NewView(g.Camera.GetRaylibCamera(), rl.Rectangle{Width: w, Height: h})
}

func (g *Game) ignoredLayers() physics.LayerMask {
	mask := g.Settings.Targeting.IgnoredLayers
	if g.ignoreGlass {
		return mask.With(physics.LayerGlass)
	}
	return mask &^ physics.LayerBit(physics.LayerGlass)
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if !rl.CheckCollisionPointRec(rl.GetMousePosition(), g.panelBounds()) {
		g.Camera.Update()
	}

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.Renderer.ShowTargetBoxes = !g.Renderer.ShowTargetBoxes
	}
	if rl.IsKeyDown(rl.KeyLeftControl) && rl.IsKeyPressed(rl.KeyS) {
		g.saveSettings()
	}

	g.World.Update(deltaTime)
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0

	targetStart := time.Now()
	cfg := g.Settings.Targeting
	g.Targeting.Camera = g.view()
	g.result = g.Targeting.Target(cfg.Radius, cfg.MaxDistance, g.ignoredLayers())
	g.targetMs = float64(time.Since(targetStart).Microseconds()) / 1000.0
}

func (g *Game) saveSettings() {
	if g.SettingsPath == "" {
		return
	}
	g.Settings.Targeting.IgnoredLayers = g.ignoredLayers()
	g.Settings.Pitch = g.Camera.Limits
	if err := SaveSettings(g.SettingsPath, g.Settings); err != nil {
		log.Printf("Game: %v", err)
		g.saveMsg = "Save failed"
	} else {
		log.Printf("Game: settings saved to %s", g.SettingsPath)
		g.saveMsg = "Settings saved"
	}
	g.saveMsgTime = rl.GetTime()
}

// selected is the candidate the last Target call confirmed, if any.
func (g *Game) selected() *engine.GameObject {
	if !g.result.Hit {
		return nil
	}
	return targetOwner(g.result.Info.GameObject)
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()
	screenW, screenH := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	g.Renderer.Draw(g.World, cam, screenW/screenH, g.selected())
	if g.result.Hit {
		hit := g.result.Info
		rl.DrawSphere(hit.Point, 0.08, rl.Red)
		rl.DrawLine3D(hit.Point, rl.Vector3Add(hit.Point, hit.Normal), rl.Red)
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	reticleColor := rl.RayWhite
	if g.selected() != nil {
		reticleColor = rl.Lime
	}
	drawReticle(g.Targeting.Reticle(g.Settings.Targeting.Radius), reticleColor)

	rl.DrawText("Right mouse to orbit, wheel to zoom", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 debug view, F2 targeting boxes, Ctrl+S save settings", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)
	rl.DrawText(describeResult(g.result), 10, 85, 20, reticleColor)

	if g.saveMsg != "" && rl.GetTime()-g.saveMsgTime < 2 {
		rl.DrawText(g.saveMsg, 10, 110, 18, rl.Green)
	}

	g.drawPanel()

	if g.DebugMode {
		g.drawDebug()
	}
}

func (g *Game) drawDebug() {
	view := g.Targeting.Camera
	for _, t := range g.World.Registry.Candidates() {
		owner := t.GetGameObject()
		if owner == nil || !owner.ActiveInHierarchy() {
			continue
		}
		transform := owner.WorldTransform()
		for _, box := range t.Boxes {
			drawProjectedBox(targeting.Project(box, transform, view), rl.Fade(rl.Yellow, 0.6))
		}
	}

	y := int32(rl.GetScreenHeight()) - 110
	rl.DrawText(fmt.Sprintf("Pitch: %.1f  Yaw: %.1f  Dist: %.1f", g.Camera.Pitch, g.Camera.Yaw, g.Camera.Distance), 10, y, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Culled: %d", g.Renderer.Culled), 10, y+20, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, y+40, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Target: %.2f ms", g.targetMs), 10, y+60, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, y+80, 16, rl.Green)
}
