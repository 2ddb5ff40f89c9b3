package world

import (
	"reticle/internal/components"
	"reticle/internal/engine"
	"reticle/internal/physics"
	"reticle/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws colliders as wireframes and, optionally, the targeting boxes.
// Draw must be called between BeginMode3D and EndMode3D.
type Renderer struct {
	ShowTargetBoxes bool
	frustum         Frustum
	Culled          int // colliders skipped by the last Draw
}

func NewRenderer() *Renderer {
	return &Renderer{ShowTargetBoxes: true}
}

type wireBox struct {
	corners [8]rl.Vector3
	color   rl.Color
}

type wireSphere struct {
	center rl.Vector3
	radius float32
	color  rl.Color
}

// frame is everything one Draw call puts on screen.
type frame struct {
	boxes   []wireBox
	spheres []wireSphere
}

func (r *Renderer) Draw(w *World, camera rl.Camera3D, aspect float32, selected *engine.GameObject) {
	f := r.collect(w, camera, aspect, selected)

	rl.DrawGrid(int32(FloorSize), 1.0)
	for _, b := range f.boxes {
		drawCorners(b.corners, b.color)
	}
	for _, s := range f.spheres {
		rl.DrawSphereWires(s.center, s.radius, 8, 8, s.color)
	}
}

// collect culls each collider on its own. Targeting boxes are never culled.
func (r *Renderer) collect(w *World, camera rl.Camera3D, aspect float32, selected *engine.GameObject) frame {
	r.frustum = ExtractFrustum(camera, aspect)
	r.Culled = 0

	var f frame
	for _, g := range w.Scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		color := w.ColorOf(g)
		if selected != nil && g.IsDescendantOf(selected) {
			color = rl.White
		}

		if box := engine.GetComponent[*components.BoxCollider](g); box != nil {
			obb := physics.NewOBB(box.GetCenter(), box.GetWorldSize(), g.WorldRotation())
			if r.frustum.ContainsSphere(obb.Center, rl.Vector3Length(obb.HalfSize)) {
				f.boxes = append(f.boxes, wireBox{corners: OBBCorners(obb), color: color})
			} else {
				r.Culled++
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](g); sphere != nil {
			center, radius := sphere.GetCenter(), sphere.GetWorldRadius()
			if r.frustum.ContainsSphere(center, radius) {
				f.spheres = append(f.spheres, wireSphere{center: center, radius: radius, color: color})
			} else {
				r.Culled++
			}
		}

		if r.ShowTargetBoxes {
			if t := engine.GetComponent[*targeting.Targetable](g); t != nil {
				f.boxes = append(f.boxes, targetBoxes(t, g)...)
			}
		}
	}
	return f
}

func targetBoxes(t *targeting.Targetable, g *engine.GameObject) []wireBox {
	color := rl.Yellow
	if !t.Controllable {
		color = rl.Gray
	}
	transform := g.WorldTransform()
	boxes := make([]wireBox, 0, len(t.Boxes))
	for _, box := range t.Boxes {
		boxes = append(boxes, wireBox{corners: targeting.BoxCorners(box, transform), color: color})
	}
	return boxes
}

// OBBCorners returns the corners in the same order as the targeting box
// corners: 0-3 on the +z face, 4-7 on the -z face.
func OBBCorners(o physics.OBB) [8]rl.Vector3 {
	var corners [8]rl.Vector3
	signs := [4][2]float32{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	for face, sz := range [2]float32{1, -1} {
		for i, s := range signs {
			local := rl.Vector3{X: s[0] * o.HalfSize.X, Y: s[1] * o.HalfSize.Y, Z: sz * o.HalfSize.Z}
			corners[face*4+i] = rl.Vector3Add(o.Center, o.WorldDirection(local))
		}
	}
	return corners
}

// boxEdges pairs corner indices laid out as 0-3 front (TR TL BR BL), 4-7 back.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func drawCorners(corners [8]rl.Vector3, color rl.Color) {
	for _, e := range boxEdges {
		rl.DrawLine3D(corners[e[0]], corners[e[1]], color)
	}
}
