package game

import (
	"fmt"

	"reticle/internal/engine"
	"reticle/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Projected box edges, same corner layout as targeting.ProjectedBox.
var screenEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// visibleEdges returns the screen-space edges of pb whose endpoints are both
// in front of the camera.
func visibleEdges(pb targeting.ProjectedBox) [][2]rl.Vector2 {
	edges := make([][2]rl.Vector2, 0, len(screenEdges))
	for _, e := range screenEdges {
		a, b := pb.Screen[e[0]], pb.Screen[e[1]]
		if !a.InFront() || !b.InFront() {
			continue
		}
		edges = append(edges, [2]rl.Vector2{a.Vector2(), b.Vector2()})
	}
	return edges
}

// targetOwner walks up from g to the first object carrying a Targetable.
func targetOwner(g *engine.GameObject) *engine.GameObject {
	for obj := g; obj != nil; obj = obj.Parent {
		if engine.GetComponent[*targeting.Targetable](obj) != nil {
			return obj
		}
	}
	return nil
}

func describeResult(r targeting.Result) string {
	if !r.Hit {
		return "Target: none"
	}
	hit := r.Info
	name := hit.GameObject.Name
	if owner := targetOwner(hit.GameObject); owner != nil && owner != hit.GameObject {
		name = fmt.Sprintf("%s (%s)", owner.Name, name)
	}
	return fmt.Sprintf("Target: %s at %.2f", name, hit.Distance)
}

func drawReticle(outline []rl.Vector2, color rl.Color) {
	if len(outline) < 3 {
		return
	}
	for i := range outline {
		rl.DrawLineV(outline[i], outline[(i+1)%len(outline)], color)
	}
}

func drawProjectedBox(pb targeting.ProjectedBox, color rl.Color) {
	for _, e := range visibleEdges(pb) {
		rl.DrawLineV(e[0], e[1], color)
	}
}
