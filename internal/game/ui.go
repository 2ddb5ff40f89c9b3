package game

import (
	"fmt"

	"reticle/internal/camera"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 230)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	panelWidth  = 300
	panelHeight = 210
	rowHeight   = 28
)

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (g *Game) panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rl.GetScreenWidth()) - panelWidth - 10,
		Y:      10,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

// drawPanel edits the live targeting and pitch settings.
func (g *Game) drawPanel() {
	bounds := g.panelBounds()
	rl.DrawRectangleRec(bounds, colorBgPanel)
	rl.DrawRectangleLinesEx(bounds, 1, colorAccent)
	rl.DrawText("Targeting", int32(bounds.X)+10, int32(bounds.Y)+8, 18, colorTextPrimary)

	labelX := int32(bounds.X) + 10
	sliderX := bounds.X + 110
	sliderW := float32(120)
	row := func(i int) float32 { return bounds.Y + 36 + float32(i)*rowHeight }
	sliderRect := func(i int) rl.Rectangle {
		return rl.Rectangle{X: sliderX, Y: row(i), Width: sliderW, Height: 18}
	}

	cfg := &g.Settings.Targeting

	rl.DrawText("Radius", labelX, int32(row(0)), 15, colorTextSecondary)
	cfg.Radius = gui.Slider(sliderRect(0), "", fmt.Sprintf("%.0f px", cfg.Radius), cfg.Radius, 0, 200)

	rl.DrawText("Max dist", labelX, int32(row(1)), 15, colorTextSecondary)
	cfg.MaxDistance = gui.Slider(sliderRect(1), "", fmt.Sprintf("%.0f", cfg.MaxDistance), cfg.MaxDistance, 1, 200)

	rl.DrawText("Sides", labelX, int32(row(2)), 15, colorTextSecondary)
	sides := gui.Slider(sliderRect(2), "", fmt.Sprintf("%d", g.Targeting.Sides), float32(g.Targeting.Sides), 0, 16)
	if s := int(sides + 0.5); s != g.Targeting.Sides {
		cfg.Sides = s
		g.Targeting.Sides = s
	}

	rl.DrawText("Pitch min", labelX, int32(row(3)), 15, colorTextSecondary)
	limits := g.Camera.Limits
	limits.Min = gui.Slider(sliderRect(3), "", fmt.Sprintf("%.0f", limits.Min), limits.Min, -90, 90)

	rl.DrawText("Pitch max", labelX, int32(row(4)), 15, colorTextSecondary)
	limits.Max = gui.Slider(sliderRect(4), "", fmt.Sprintf("%.0f", limits.Max), limits.Max, -90, 90)
	if limits != g.Camera.Limits {
		g.Camera.Limits = limits
		g.Camera.Pitch = camera.ClampPitch(g.Camera.Pitch, limits)
	}

	checkBounds := rl.Rectangle{X: bounds.X + 10, Y: row(5) + 4, Width: 16, Height: 16}
	g.ignoreGlass = gui.CheckBox(checkBounds, "Ignore glass layer", g.ignoreGlass)
}
