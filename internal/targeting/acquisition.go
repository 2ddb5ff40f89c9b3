package targeting

import (
	"reticle/internal/camera"
	"reticle/internal/engine"
	"reticle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultReticleSides is the polygon used to sample the reticle outline.
const DefaultReticleSides = 8

// Camera is what acquisition needs from the active camera.
type Camera interface {
	WorldToScreen
	Position() rl.Vector3
	ScreenToWorldRay(p rl.Vector2) rl.Ray
	ViewportRect() rl.Rectangle
}

// CollisionQuery confirms line of sight. *physics.PhysicsWorld satisfies it.
type CollisionQuery interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, ignore physics.LayerMask) (physics.RaycastHit, bool)
}

// Result of a Target call. Info is set whenever Hit is true.
type Result struct {
	Hit  bool
	Info *physics.RaycastHit
}

// Engine resolves what the reticle is pointing at. The only state it keeps
// between calls is the polygon cache and a reusable sample buffer, so an Engine
// must not be shared between goroutines.
type Engine struct {
	Camera   Camera
	Physics  CollisionQuery
	Registry *Registry
	Sides    int

	polygons *PolygonCache
	samples  []rl.Vector2
}

func NewEngine(cam Camera, query CollisionQuery, registry *Registry) *Engine {
	return &Engine{
		Camera:   cam,
		Physics:  query,
		Registry: registry,
		Sides:    DefaultReticleSides,
		polygons: NewPolygonCache(),
	}
}

// Acquire applies cfg and runs Target with its values.
func (e *Engine) Acquire(cfg Config) Result {
	e.Apply(cfg)
	return e.Target(cfg.Radius, cfg.MaxDistance, cfg.IgnoredLayers)
}

// Target returns the first registered candidate, in registration then box order,
// whose targeting box overlaps the reticle and is confirmed by a raycast that
// strikes the candidate itself. With no confirmed candidate the result is
// whatever a ray through the screen center hits.
func (e *Engine) Target(radius, maxDistance float32, ignoredLayers physics.LayerMask) Result {
	center := viewportCenter(e.Camera.ViewportRect())

	if radius > 0 && e.Registry != nil {
		samples := e.reticleSamples(center, radius)
		camPos := e.Camera.Position()

		for _, candidate := range e.Registry.Candidates() {
			if !candidate.eligible() {
				continue
			}
			owner := candidate.GetGameObject()
			transform := owner.WorldTransform()
			if rl.Vector3Distance(camPos, transform.Position) > maxDistance {
				continue
			}

			for _, box := range candidate.Boxes {
				if !box.Valid() {
					continue
				}
				if result, ok := e.testBox(box, transform, owner, center, radius, samples, maxDistance, ignoredLayers); ok {
					return result
				}
			}
		}
	}

	ray := e.Camera.ScreenToWorldRay(center)
	return e.raycast(ray.Position, ray.Direction, maxDistance, ignoredLayers)
}

// testBox runs the corner and reticle checks for one box. At most one raycast is issued.
func (e *Engine) testBox(box TargetingBox, transform engine.Transform, owner *engine.GameObject,
	center rl.Vector2, radius float32, samples []rl.Vector2, maxDistance float32, ignore physics.LayerMask) (Result, bool) {

	projected := Project(box, transform, e.Camera)

	if i, ok := PointsWithinRadius(center, radius, projected.Screen[:]); ok {
		origin := e.Camera.Position()
		direction := rl.Vector3Subtract(projected.World[i], origin)
		return e.confirm(origin, direction, owner, maxDistance, ignore)
	}

	for _, sample := range samples {
		if PointInBox(sample, projected.Screen) {
			ray := e.Camera.ScreenToWorldRay(sample)
			return e.confirm(ray.Position, ray.Direction, owner, maxDistance, ignore)
		}
	}
	return Result{}, false
}

// confirm reports success only when the ray strikes owner or one of its children.
func (e *Engine) confirm(origin, direction rl.Vector3, owner *engine.GameObject, maxDistance float32, ignore physics.LayerMask) (Result, bool) {
	result := e.raycast(origin, direction, maxDistance, ignore)
	if !result.Hit || !result.Info.GameObject.IsDescendantOf(owner) {
		return Result{}, false
	}
	return result, true
}

func (e *Engine) raycast(origin, direction rl.Vector3, maxDistance float32, ignore physics.LayerMask) Result {
	if e.Physics == nil {
		return Result{}
	}
	hit, ok := e.Physics.Raycast(origin, direction, maxDistance, ignore)
	if !ok {
		return Result{}
	}
	return Result{Hit: true, Info: &hit}
}

// reticleSamples scales the cached unit polygon by radius around center.
// A polygon without area contributes no samples.
func (e *Engine) reticleSamples(center rl.Vector2, radius float32) []rl.Vector2 {
	if e.polygons == nil {
		e.polygons = NewPolygonCache()
	}
	unit := e.polygons.Get(e.Sides)
	e.samples = e.samples[:0]
	if len(unit) < 3 {
		return e.samples
	}
	for _, p := range unit {
		e.samples = append(e.samples, rl.Vector2Add(center, rl.Vector2Scale(p, radius)))
	}
	return e.samples
}

// Reticle returns the sampled reticle outline around the viewport center. The
// slice is reused by the next Reticle or Target call.
func (e *Engine) Reticle(radius float32) []rl.Vector2 {
	return e.reticleSamples(viewportCenter(e.Camera.ViewportRect()), radius)
}

func viewportCenter(r rl.Rectangle) rl.Vector2 {
	return rl.Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

var _ Camera = camera.View{}
var _ CollisionQuery = (*physics.PhysicsWorld)(nil)
