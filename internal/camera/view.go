package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ScreenPoint is a projected world point. X and Y are pixels in the same space as
// the viewport rectangle, Depth is the distance along the view axis. Depth < 0 means
// the point is behind the camera and X, Y are meaningless.
type ScreenPoint struct {
	X, Y  float32
	Depth float32
}

func (p ScreenPoint) Vector2() rl.Vector2 {
	return rl.Vector2{X: p.X, Y: p.Y}
}

func (p ScreenPoint) InFront() bool {
	return p.Depth >= 0
}

// minDepth keeps points on the camera plane from dividing by zero.
const minDepth = 1e-6

// View pairs a raylib camera with the viewport it renders into and provides the
// projections the targeting code needs. It does not touch the window, so it works headless.
type View struct {
	Camera   rl.Camera3D
	Viewport rl.Rectangle
}

func NewView(cam rl.Camera3D, viewport rl.Rectangle) View {
	return View{Camera: cam, Viewport: viewport}
}

func (v View) Position() rl.Vector3 {
	return v.Camera.Position
}

func (v View) ViewportRect() rl.Rectangle {
	return v.Viewport
}

func (v View) ScreenCenter() rl.Vector2 {
	return rl.Vector2{
		X: v.Viewport.X + v.Viewport.Width/2,
		Y: v.Viewport.Y + v.Viewport.Height/2,
	}
}

// basis returns the camera's forward, right and up vectors, right-handed like raylib.
func (v View) basis() (forward, right, up rl.Vector3) {
	forward = rl.Vector3Normalize(rl.Vector3Subtract(v.Camera.Target, v.Camera.Position))
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, v.Camera.Up))
	up = rl.Vector3CrossProduct(right, forward)
	return
}

func (v View) aspect() float32 {
	if v.Viewport.Height == 0 {
		return 1
	}
	return v.Viewport.Width / v.Viewport.Height
}

// halfExtents is the half width and height of the view volume at unit depth
// (perspective) or at any depth (orthographic).
func (v View) halfExtents() (halfW, halfH float32) {
	if v.Camera.Projection == rl.CameraOrthographic {
		halfH = v.Camera.Fovy / 2
	} else {
		halfH = float32(math.Tan(float64(v.Camera.Fovy) * math.Pi / 360))
	}
	return halfH * v.aspect(), halfH
}

func (v View) WorldToScreen(p rl.Vector3) ScreenPoint {
	forward, right, up := v.basis()
	d := rl.Vector3Subtract(p, v.Camera.Position)
	depth := rl.Vector3DotProduct(d, forward)
	x := rl.Vector3DotProduct(d, right)
	y := rl.Vector3DotProduct(d, up)

	halfW, halfH := v.halfExtents()
	if v.Camera.Projection != rl.CameraOrthographic {
		div := depth
		if absf(div) < minDepth {
			div = minDepth
		}
		halfW *= div
		halfH *= div
	}

	ndcX := x / halfW
	ndcY := y / halfH
	return ScreenPoint{
		X:     v.Viewport.X + (ndcX+1)/2*v.Viewport.Width,
		Y:     v.Viewport.Y + (1-ndcY)/2*v.Viewport.Height,
		Depth: depth,
	}
}

// ScreenToWorldRay returns the ray through a screen point with a normalized direction.
func (v View) ScreenToWorldRay(s rl.Vector2) rl.Ray {
	forward, right, up := v.basis()
	halfW, halfH := v.halfExtents()

	var ndcX, ndcY float32
	if v.Viewport.Width != 0 && v.Viewport.Height != 0 {
		ndcX = (s.X-v.Viewport.X)/v.Viewport.Width*2 - 1
		ndcY = 1 - (s.Y-v.Viewport.Y)/v.Viewport.Height*2
	}
	offset := rl.Vector3Add(
		rl.Vector3Scale(right, ndcX*halfW),
		rl.Vector3Scale(up, ndcY*halfH),
	)

	if v.Camera.Projection == rl.CameraOrthographic {
		return rl.Ray{
			Position:  rl.Vector3Add(v.Camera.Position, offset),
			Direction: forward,
		}
	}
	return rl.Ray{
		Position:  v.Camera.Position,
		Direction: rl.Vector3Normalize(rl.Vector3Add(forward, offset)),
	}
}
