package targeting

import (
	"testing"

	"reticle/internal/camera"
	"reticle/internal/components"
	"reticle/internal/engine"
	"reticle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testView is a camera at the origin looking down +Z with a 60 degree FOV on an 800x600 viewport.
func testView() camera.View {
	return camera.NewView(rl.Camera3D{
		Position:   rl.Vector3{},
		Target:     rl.Vector3{Z: 1},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}, rl.Rectangle{Width: 800, Height: 600})
}

type raycastCall struct {
	origin, direction rl.Vector3
	maxDistance       float32
	ignore            physics.LayerMask
}

// recordingQuery forwards to a physics world and remembers every call.
type recordingQuery struct {
	world *physics.PhysicsWorld
	calls []raycastCall
}

func (q *recordingQuery) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore physics.LayerMask) (physics.RaycastHit, bool) {
	q.calls = append(q.calls, raycastCall{origin, direction, maxDistance, ignore})
	return q.world.Raycast(origin, direction, maxDistance, ignore)
}

type fixture struct {
	world    *physics.PhysicsWorld
	query    *recordingQuery
	registry *Registry
	engine   *Engine
}

func newFixture() *fixture {
	world := physics.NewPhysicsWorld()
	query := &recordingQuery{world: world}
	registry := NewRegistry()
	return &fixture{
		world:    world,
		query:    query,
		registry: registry,
		engine:   NewEngine(testView(), query, registry),
	}
}

// addCandidate places a unit targeting box at pos. The collider is slightly larger
// so confirming rays aimed at box corners land inside it.
func (f *fixture) addCandidate(name string, pos rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1.2, Y: 1.2, Z: 1.2}))
	g.AddComponent(NewTargetable(TargetingBox{Size: rl.Vector3{X: 1, Y: 1, Z: 1}}))
	f.world.AddObject(g)
	f.registry.Register(engine.GetComponent[*Targetable](g))
	return g
}

func (f *fixture) addWall(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	f.world.AddObject(g)
	return g
}

func hitObject(r Result) *engine.GameObject {
	if !r.Hit {
		return nil
	}
	return r.Info.GameObject
}

func TestTargetEndToEnd(t *testing.T) {
	f := newFixture()
	crate := f.addCandidate("Crate", rl.Vector3{Z: 5})

	result := f.engine.Target(50, 10, physics.NoLayers)
	if !result.Hit {
		t.Fatal("Expected the crate to be targeted")
	}
	if result.Info.GameObject != crate {
		t.Errorf("Expected hit on crate, got %v", result.Info.GameObject.Name)
	}

	crate.Transform.Position = rl.Vector3{Z: 20}
	if result := f.engine.Target(50, 10, physics.NoLayers); result.Hit {
		t.Errorf("Expected no target beyond maxDistance, got %v", hitObject(result).Name)
	}
}

func TestTargetOffCenterNeedsReticle(t *testing.T) {
	f := newFixture()
	// Left of the center ray: only the reticle samples can reach it
	crate := f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})

	if result := f.engine.Target(50, 20, physics.NoLayers); hitObject(result) != crate {
		t.Errorf("Expected reticle to pick up the off-center crate, got %v", hitObject(result))
	}
	// Sanity check: the center ray alone misses it
	ray := testView().ScreenToWorldRay(rl.Vector2{X: 400, Y: 300})
	if _, ok := f.world.Raycast(ray.Position, ray.Direction, 20, physics.NoLayers); ok {
		t.Error("Center ray should miss the off-center crate")
	}
}

func TestTargetZeroRadiusOnlyUsesCenterRay(t *testing.T) {
	f := newFixture()
	f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})

	result := f.engine.Target(0, 20, physics.NoLayers)
	if result.Hit {
		t.Errorf("Expected zero radius to fall back to the center ray, got %v", hitObject(result).Name)
	}
	if len(f.query.calls) != 1 {
		t.Errorf("Expected only the fallback raycast, got %d calls", len(f.query.calls))
	}

	// Same outcome as an engine that knows no candidates
	empty := NewEngine(testView(), f.world, NewRegistry())
	if got := empty.Target(0, 20, physics.NoLayers); got.Hit != result.Hit {
		t.Errorf("Expected %v, got %v", result.Hit, got.Hit)
	}
}

func TestTargetZeroRadiusCenteredCandidate(t *testing.T) {
	f := newFixture()
	crate := f.addCandidate("Crate", rl.Vector3{Z: 5})

	// The fallback still reports whatever is under the center
	if result := f.engine.Target(0, 20, physics.NoLayers); hitObject(result) != crate {
		t.Errorf("Expected fallback ray to hit the crate, got %v", hitObject(result))
	}
}

func TestTargetFirstMatchWins(t *testing.T) {
	left := rl.Vector3{X: 0.9, Z: 5}
	right := rl.Vector3{X: -0.9, Z: 4}

	f := newFixture()
	a := f.addCandidate("A", left)
	f.addCandidate("B", right)
	if result := f.engine.Target(50, 20, physics.NoLayers); hitObject(result) != a {
		t.Errorf("Expected first registered candidate A, got %v", hitObject(result))
	}

	// Reverse registration order: B now wins even though nothing else changed
	f = newFixture()
	b := f.addCandidate("B", right)
	f.addCandidate("A", left)
	if result := f.engine.Target(50, 20, physics.NoLayers); hitObject(result) != b {
		t.Errorf("Expected first registered candidate B, got %v", hitObject(result))
	}
}

func TestTargetCornerWithinRadius(t *testing.T) {
	f := newFixture()
	crate := f.addCandidate("Crate", rl.Vector3{Z: 5})

	// Corner 0 sits about 67px from the center
	result := f.engine.Target(100, 20, physics.NoLayers)
	if hitObject(result) != crate {
		t.Fatalf("Expected corner match on crate, got %v", hitObject(result))
	}
	if len(f.query.calls) != 1 {
		t.Fatalf("Expected a single confirming raycast, got %d", len(f.query.calls))
	}

	// The confirming ray aims at corner 0
	pb := Project(TargetingBox{Size: rl.Vector3{X: 1, Y: 1, Z: 1}}, crate.WorldTransform(), testView())
	want := rl.Vector3Normalize(pb.World[0])
	got := rl.Vector3Normalize(f.query.calls[0].direction)
	if rl.Vector3Distance(want, got) > 1e-4 {
		t.Errorf("Expected ray toward corner 0 %v, got %v", want, got)
	}
}

func TestTargetOccluded(t *testing.T) {
	f := newFixture()
	f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})
	wall := f.addWall("Wall", rl.Vector3{Z: 3}, rl.Vector3{X: 10, Y: 10, Z: 0.2})

	result := f.engine.Target(50, 20, physics.NoLayers)
	if hitObject(result) != wall {
		t.Errorf("Expected the occluding wall from the fallback ray, got %v", hitObject(result))
	}
}

func TestTargetIgnoredLayers(t *testing.T) {
	f := newFixture()
	crate := f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})
	glass := f.addWall("Glass", rl.Vector3{Z: 3}, rl.Vector3{X: 10, Y: 10, Z: 0.2})
	glass.Layer = physics.LayerGlass

	result := f.engine.Target(50, 20, physics.LayerBit(physics.LayerGlass))
	if hitObject(result) != crate {
		t.Errorf("Expected to target through ignored glass, got %v", hitObject(result))
	}
	for _, call := range f.query.calls {
		if call.ignore != physics.LayerBit(physics.LayerGlass) {
			t.Errorf("Expected every raycast to carry the ignore mask, got %v", call.ignore)
		}
		if call.maxDistance != 20 {
			t.Errorf("Expected every raycast capped at 20, got %v", call.maxDistance)
		}
	}
}

// occludingQuery reports every ray as hitting the same unrelated object.
type occludingQuery struct {
	blocker *engine.GameObject
	calls   int
}

func (q *occludingQuery) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore physics.LayerMask) (physics.RaycastHit, bool) {
	q.calls++
	return physics.RaycastHit{GameObject: q.blocker, Distance: 1}, true
}

func TestTargetOneConfirmationPerBox(t *testing.T) {
	registry := NewRegistry()
	crate := engine.NewGameObject("Crate")
	crate.Transform.Position = rl.Vector3{Z: 5}
	crate.AddComponent(NewTargetable(TargetingBox{Size: rl.Vector3{X: 1, Y: 1, Z: 1}}))
	registry.Register(engine.GetComponent[*Targetable](crate))

	query := &occludingQuery{blocker: engine.NewGameObject("Blocker")}
	e := NewEngine(testView(), query, registry)

	// Every reticle sample lies inside the box, yet only the first gets a raycast
	result := e.Target(50, 20, physics.NoLayers)
	if query.calls != 2 {
		t.Errorf("Expected one confirmation plus the fallback, got %d raycasts", query.calls)
	}
	if hitObject(result) != query.blocker {
		t.Errorf("Expected the fallback result, got %v", hitObject(result))
	}
}

func TestTargetChildColliderCountsAsOwner(t *testing.T) {
	f := newFixture()
	root := engine.NewGameObject("Turret")
	root.Transform.Position = rl.Vector3{X: 0.9, Z: 5}
	root.AddComponent(NewTargetable(TargetingBox{Size: rl.Vector3{X: 1, Y: 1, Z: 1}}))

	body := engine.NewGameObject("Body")
	body.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1.2, Y: 1.2, Z: 1.2}))
	root.AddChild(body)

	f.world.AddObject(body)
	f.registry.Register(engine.GetComponent[*Targetable](root))

	result := f.engine.Target(50, 20, physics.NoLayers)
	if hitObject(result) != body {
		t.Errorf("Expected hit reported on the child collider, got %v", hitObject(result))
	}
}

func TestTargetSkipsIneligible(t *testing.T) {
	f := newFixture()
	crate := f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})
	targetable := engine.GetComponent[*Targetable](crate)

	targetable.Controllable = false
	if result := f.engine.Target(50, 20, physics.NoLayers); result.Hit {
		t.Error("Uncontrollable candidates should be skipped")
	}

	targetable.Controllable = true
	targetable.Boxes = []TargetingBox{{Size: rl.Vector3{X: 1, Y: 0, Z: 1}}}
	if result := f.engine.Target(50, 20, physics.NoLayers); result.Hit {
		t.Error("Boxes with non-positive extents should be skipped")
	}
}

func TestTargetBehindCamera(t *testing.T) {
	f := newFixture()
	f.addCandidate("Crate", rl.Vector3{Z: -5})

	if result := f.engine.Target(400, 20, physics.NoLayers); result.Hit {
		t.Errorf("Expected nothing behind the camera, got %v", hitObject(result).Name)
	}
}

func TestTargetDegenerateReticle(t *testing.T) {
	f := newFixture()
	f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})
	f.engine.Sides = 2

	// No reticle area and no corner within 50px: only the center ray remains
	if result := f.engine.Target(50, 20, physics.NoLayers); result.Hit {
		t.Error("Expected degenerate reticle to find nothing off-center")
	}
}

func TestAcquireUsesConfig(t *testing.T) {
	f := newFixture()
	crate := f.addCandidate("Crate", rl.Vector3{X: 0.9, Z: 5})

	cfg := DefaultConfig()
	if result := f.engine.Acquire(cfg); hitObject(result) != crate {
		t.Errorf("Expected default config to target the crate, got %v", hitObject(result))
	}

	cfg.MaxDistance = 3
	if result := f.engine.Acquire(cfg); result.Hit {
		t.Error("Expected short max distance to find nothing")
	}
}

func TestReticleOutline(t *testing.T) {
	e := NewEngine(testView(), nil, NewRegistry())
	outline := e.Reticle(50)
	if len(outline) != DefaultReticleSides {
		t.Fatalf("Expected %d points, got %d", DefaultReticleSides, len(outline))
	}
	center := rl.Vector2{X: 400, Y: 300}
	for i, p := range outline {
		if d := rl.Vector2Distance(p, center); d < 49.99 || d > 50.01 {
			t.Errorf("Point %d: expected distance 50, got %v", i, d)
		}
	}
	if outline[0].X != 450 {
		t.Errorf("Expected first point at angle 0, got %v", outline[0])
	}
}
