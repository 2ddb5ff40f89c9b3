package targeting

import (
	"reticle/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// boxTriangles splits the six faces of a ProjectedBox into two triangles each:
// front, right, back, left, top, bottom.
var boxTriangles = [12][3]int{
	{0, 1, 2}, {2, 3, 1},
	{0, 4, 6}, {6, 2, 0},
	{4, 5, 6}, {6, 7, 5},
	{1, 5, 7}, {7, 3, 1},
	{0, 1, 4}, {4, 5, 1},
	{6, 7, 3}, {3, 2, 6},
}

// PointInTriangle tests p against the screen-space triangle abc. Triangles with
// a vertex behind the camera and zero-area triangles never contain anything.
func PointInTriangle(p rl.Vector2, a, b, c camera.ScreenPoint) bool {
	if a.Depth < 0 || b.Depth < 0 || c.Depth < 0 {
		return false
	}

	s := a.Y*c.X - a.X*c.Y + (c.Y-a.Y)*p.X + (a.X-c.X)*p.Y
	t := a.X*b.Y - a.Y*b.X + (a.Y-b.Y)*p.X + (b.X-a.X)*p.Y
	area := -b.Y*c.X + a.Y*(c.X-b.X) + a.X*(b.Y-c.Y) + b.X*c.Y

	if area == 0 {
		return false
	}
	if area < 0 {
		s, t, area = -s, -t, -area
	}
	return s > 0 && t > 0 && s+t <= area
}

// PointInBox reports whether p falls inside any face of the projected box.
func PointInBox(p rl.Vector2, corners [8]camera.ScreenPoint) bool {
	for _, tri := range boxTriangles {
		if PointInTriangle(p, corners[tri[0]], corners[tri[1]], corners[tri[2]]) {
			return true
		}
	}
	return false
}

// PointsWithinRadius returns the index of the first point in front of the camera
// within radius pixels of center. A zero radius never matches.
func PointsWithinRadius(center rl.Vector2, radius float32, points []camera.ScreenPoint) (int, bool) {
	if radius <= 0 {
		return -1, false
	}
	for i, p := range points {
		if p.Depth < 0 {
			continue
		}
		if rl.Vector2Distance(center, p.Vector2()) <= radius {
			return i, true
		}
	}
	return -1, false
}
