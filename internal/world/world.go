package world

import (
	"fmt"
	"log"

	"reticle/internal/components"
	"reticle/internal/engine"
	"reticle/internal/physics"
	"reticle/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 40.0

// World ties a scene to the services that query it. Objects added to the
// scene are picked up by the physics world and the targeting registry.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Registry     *targeting.Registry
	Colors       map[uint64]rl.Color
}

func New() *World {
	w := &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		Registry:     targeting.NewRegistry(),
		Colors:       make(map[uint64]rl.Color),
	}
	w.Scene.OnAdded.AddListener(func(g *engine.GameObject) {
		w.PhysicsWorld.AddObject(g)
	})
	w.Scene.OnRemoved.AddListener(func(g *engine.GameObject) {
		w.PhysicsWorld.RemoveObject(g)
		delete(w.Colors, g.UID)
	})
	w.Registry.Attach(w.Scene)
	return w
}

// Add puts g and its children into the scene, parent first. Children without
// a color of their own inherit color.
func (w *World) Add(g *engine.GameObject, color rl.Color) {
	if _, ok := w.Colors[g.UID]; !ok {
		w.Colors[g.UID] = color
	}
	w.Scene.AddGameObject(g)
	for _, child := range g.Children {
		w.Add(child, color)
	}
}

// ColorOf returns the draw color for g.
func (w *World) ColorOf(g *engine.GameObject) rl.Color {
	if c, ok := w.Colors[g.UID]; ok {
		return c
	}
	return rl.LightGray
}

// DefaultScene builds the demo layout: a floor, a row of crates, a glass wall
// on the glass layer, a drone with a sphere collider and a turret whose
// collider lives on a child object.
func (w *World) DefaultScene() {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.25}
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: FloorSize, Y: 0.5, Z: FloorSize}))
	w.Add(floor, rl.DarkGray)

	colors := []rl.Color{rl.Red, rl.Orange, rl.Gold, rl.Lime, rl.SkyBlue}
	for i, c := range colors {
		crate := newCrate(fmt.Sprintf("Crate_%d", i), rl.Vector3{X: float32(i-2) * 3, Y: 0.75, Z: 8}, 1.5)
		crate.Transform.Rotation.Y = float32(i) * 15
		w.Add(crate, c)
	}

	locked := newCrate("LockedCrate", rl.Vector3{X: 6, Y: 0.75, Z: 4}, 1.5)
	engine.GetComponent[*targeting.Targetable](locked).Controllable = false
	w.Add(locked, rl.Gray)

	glass := engine.NewGameObject("GlassWall")
	glass.Tags = []string{"glass"}
	glass.Layer = physics.LayerGlass
	glass.Transform.Position = rl.Vector3{X: -3, Y: 1.5, Z: 5}
	glass.AddComponent(components.NewBoxCollider(rl.Vector3{X: 5, Y: 3, Z: 0.1}))
	w.Add(glass, rl.NewColor(102, 191, 255, 100))

	drone := engine.NewGameObject("Drone")
	drone.Transform.Position = rl.Vector3{X: 0, Y: 3.5, Z: 12}
	drone.AddComponent(components.NewSphereCollider(0.6))
	drone.AddComponent(targeting.NewTargetable(targeting.TargetingBox{
		Size: rl.Vector3{X: 1.2, Y: 1.2, Z: 1.2},
	}))
	w.Add(drone, rl.Purple)

	turret := engine.NewGameObject("Turret")
	turret.Transform.Position = rl.Vector3{X: 4, Y: 0, Z: 12}
	turret.Transform.Rotation.Y = 30
	turret.AddComponent(targeting.NewTargetable(targeting.TargetingBox{
		Center: rl.Vector3{Y: 1},
		Size:   rl.Vector3{X: 1.6, Y: 2, Z: 1.6},
	}))
	base := engine.NewGameObject("TurretBase")
	base.Transform.Position = rl.Vector3{Y: 1}
	base.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1.6, Y: 2, Z: 1.6}))
	turret.AddChild(base)
	w.Add(turret, rl.Maroon)

	log.Printf("World: default scene with %d objects, %d targetables", len(w.Scene.GameObjects), w.Registry.Len())
}

func newCrate(name string, pos rl.Vector3, size float32) *engine.GameObject {
	crate := engine.NewGameObject(name)
	crate.Tags = []string{"crate"}
	crate.Transform.Position = pos
	extents := rl.Vector3{X: size, Y: size, Z: size}
	crate.AddComponent(components.NewBoxCollider(extents))
	crate.AddComponent(targeting.NewTargetable(targeting.TargetingBox{Size: extents}))
	return crate
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Clear removes every object, keeping the services attached.
func (w *World) Clear() {
	for len(w.Scene.GameObjects) > 0 {
		w.Scene.RemoveGameObject(w.Scene.GameObjects[len(w.Scene.GameObjects)-1])
	}
}
