package physics

import (
	"math"

	"reticle/internal/components"
	"reticle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast returns the closest hit within maxDistance.
// Inactive objects and objects on a layer contained in ignore are skipped.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32, ignore LayerMask) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance <= 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range p.Objects {
		if !obj.ActiveInHierarchy() || ignore.Contains(obj.Layer) {
			continue
		}
		if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
			if hitInfo, ok := raycastBox(origin, direction, box, maxDistance); ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			if hitInfo, ok := raycastSphere(origin, direction, sphere, maxDistance); ok && hitInfo.Distance <= closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

// RaycastRay is Raycast for an rl.Ray.
func (p *PhysicsWorld) RaycastRay(ray rl.Ray, maxDistance float32, ignore LayerMask) (RaycastHit, bool) {
	return p.Raycast(ray.Position, ray.Direction, maxDistance, ignore)
}

// raycastBox intersects an oriented box collider. direction must be normalized.
func raycastBox(origin, direction rl.Vector3, box *components.BoxCollider, maxDistance float32) (RaycastHit, bool) {
	g := box.GetGameObject()
	obb := NewOBB(box.GetCenter(), box.GetWorldSize(), g.WorldRotation())

	// Local axes are orthonormal so t is preserved across the change of frame
	localOrigin := obb.LocalPoint(origin)
	localDir := obb.LocalDirection(direction)
	bounds := obb.LocalBounds()

	tmin, tmax, ok := bounds.IntersectRay(localOrigin, localDir)
	if !ok || tmax < 0 {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax // origin inside the box
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	localPoint := rl.Vector3Add(localOrigin, rl.Vector3Scale(localDir, t))
	normal := obb.WorldDirection(bounds.FaceNormal(localPoint))
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
