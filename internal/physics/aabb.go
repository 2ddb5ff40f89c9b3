package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// IntersectRay runs the slab test. tmin may be negative when the origin is inside the box.
// direction does not need to be normalized; t is in units of direction.
func (a AABB) IntersectRay(origin, direction rl.Vector3) (tmin, tmax float32, ok bool) {
	tmin = -1e30
	tmax = 1e30

	slabs := [3][4]float32{
		{origin.X, direction.X, a.Min.X, a.Max.X},
		{origin.Y, direction.Y, a.Min.Y, a.Max.Y},
		{origin.Z, direction.Z, a.Min.Z, a.Max.Z},
	}
	for _, s := range slabs {
		o, d, lo, hi := s[0], s[1], s[2], s[3]
		if d == 0 {
			// Parallel to this slab: must already be between the planes
			if o < lo || o > hi {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, 0, false
		}
	}
	return tmin, tmax, true
}

// FaceNormal returns the outward normal of the face nearest to p (p on or near the surface).
func (a AABB) FaceNormal(p rl.Vector3) rl.Vector3 {
	best := absf(p.X - a.Min.X)
	normal := rl.Vector3{X: -1}

	candidates := []struct {
		dist   float32
		normal rl.Vector3
	}{
		{absf(p.X - a.Max.X), rl.Vector3{X: 1}},
		{absf(p.Y - a.Min.Y), rl.Vector3{Y: -1}},
		{absf(p.Y - a.Max.Y), rl.Vector3{Y: 1}},
		{absf(p.Z - a.Min.Z), rl.Vector3{Z: -1}},
		{absf(p.Z - a.Max.Z), rl.Vector3{Z: 1}},
	}
	for _, c := range candidates {
		if c.dist < best {
			best = c.dist
			normal = c.normal
		}
	}
	return normal
}
