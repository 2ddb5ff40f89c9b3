// Stress test timing Target against growing candidate counts
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"reticle/internal/camera"
	"reticle/internal/components"
	"reticle/internal/engine"
	"reticle/internal/physics"
	"reticle/internal/targeting"
	"reticle/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	iterations := flag.Int("n", 200, "Target calls per run")
	flag.Parse()

	// Test various object counts
	testCounts := []int{10, 50, 100, 500, 1000, 2000}

	for _, count := range testCounts {
		benchTarget(count, *iterations)
	}
}

func benchTarget(count, iterations int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results
	w := world.New()

	// Spawn in a slab in front of the camera, spread grows with count
	spread := float32(20.0) + float32(count)/50.0
	for i := range count {
		g := engine.NewGameObject(fmt.Sprintf("Crate_%d", i))
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spread - spread/2,
			Y: rng.Float32()*spread/4 - spread/8,
			Z: 5 + rng.Float32()*spread,
		}
		g.Transform.Rotation.Y = rng.Float32() * 360
		size := 0.5 + rng.Float32()
		extents := rl.Vector3{X: size, Y: size, Z: size}
		g.AddComponent(components.NewBoxCollider(extents))
		g.AddComponent(targeting.NewTargetable(targeting.TargetingBox{Size: extents}))
		w.Add(g, rl.LightGray)
	}

	view := camera.NewView(rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}, rl.Rectangle{Width: 1280, Height: 720})
	e := targeting.NewEngine(view, w.PhysicsWorld, w.Registry)

	// Warm up
	e.Target(50, 1000, physics.NoLayers)

	hits := 0
	start := time.Now()
	for i := range iterations {
		yaw := float32(i) / float32(iterations) * 60
		dir := rl.Vector3Transform(rl.Vector3{Z: 1}, engine.RotationMatrix(rl.Vector3{Y: yaw - 30}))
		cam := view.Camera
		cam.Target = dir
		e.Camera = camera.NewView(cam, view.Viewport)
		if e.Target(50, 1000, physics.NoLayers).Hit {
			hits++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%5d candidates: %8.3f ms/call, %d/%d hits\n",
		count, float64(elapsed.Microseconds())/1000.0/float64(iterations), hits, iterations)
}
