package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOBBContainsPoint(t *testing.T) {
	o := NewOBB(rl.Vector3{X: 1}, rl.Vector3{X: 4, Y: 1, Z: 1}, rl.Vector3{Y: 90})

	if !o.ContainsPoint(rl.Vector3{X: 1, Z: 1.5}) {
		t.Error("Point along the rotated long axis should be inside")
	}
	if o.ContainsPoint(rl.Vector3{X: 2.5}) {
		t.Error("Point along world X should be outside the rotated box")
	}
}

func TestOBBScale(t *testing.T) {
	o := NewOBBFromBox(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{}, rl.Vector3{X: 2, Y: -4, Z: 1})
	if o.HalfSize.X != 1 || o.HalfSize.Y != 2 || o.HalfSize.Z != 0.5 {
		t.Errorf("Expected half size (1, 2, 0.5), got %v", o.HalfSize)
	}
}

func TestAABBIntersectRayParallel(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})

	if _, _, ok := box.IntersectRay(rl.Vector3{X: 5, Y: 0, Z: -5}, rl.Vector3{Z: 1}); ok {
		t.Error("Parallel ray outside the slab should miss")
	}
	tmin, tmax, ok := box.IntersectRay(rl.Vector3{Z: -5}, rl.Vector3{Z: 1})
	if !ok || tmin != 4 || tmax != 6 {
		t.Errorf("Expected t in [4, 6], got [%v, %v] ok=%v", tmin, tmax, ok)
	}
}
