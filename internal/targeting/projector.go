package targeting

import (
	"reticle/internal/camera"
	"reticle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WorldToScreen projects world points for the current frame.
type WorldToScreen interface {
	WorldToScreen(p rl.Vector3) camera.ScreenPoint
}

// ProjectedBox holds one TargetingBox for one frame. Corners 0-3 are the front
// face (+x+y, -x+y, +x-y, -x-y), corners 4-7 the matching back face corners.
// Screen points behind the camera keep their negative depth.
type ProjectedBox struct {
	World  [8]rl.Vector3
	Screen [8]camera.ScreenPoint
}

// Project maps box through the owner transform and the camera. Local points are
// rotated by the owner rotation applied after the box rotation, then scaled by
// the owner scale, then offset by the owner position.
func Project(box TargetingBox, t engine.Transform, view WorldToScreen) ProjectedBox {
	pb := ProjectedBox{World: BoxCorners(box, t)}
	for i, p := range pb.World {
		pb.Screen[i] = view.WorldToScreen(p)
	}
	return pb
}

// BoxCorners returns the world corners of box in ProjectedBox order.
func BoxCorners(box TargetingBox, t engine.Transform) [8]rl.Vector3 {
	size := rl.Vector3{X: nonNegative(box.Size.X), Y: nonNegative(box.Size.Y), Z: nonNegative(box.Size.Z)}
	half := rl.Vector3Scale(size, 0.5)

	boxRot := engine.RotationMatrix(box.Rotation)
	ownerRot := engine.RotationMatrix(t.Rotation)
	toWorld := func(local rl.Vector3) rl.Vector3 {
		rotated := rl.Vector3Transform(rl.Vector3Transform(local, boxRot), ownerRot)
		return rl.Vector3Add(t.Position, rl.Vector3Multiply(rotated, t.Scale))
	}

	var corners [8]rl.Vector3
	front := [4]rl.Vector3{
		{X: half.X, Y: half.Y, Z: half.Z},
		{X: -half.X, Y: half.Y, Z: half.Z},
		{X: half.X, Y: -half.Y, Z: half.Z},
		{X: -half.X, Y: -half.Y, Z: half.Z},
	}
	for i, offset := range front {
		corners[i] = toWorld(rl.Vector3Add(box.Center, offset))
	}

	// Back face is the front face pushed one box depth along the box's world forward
	forward := rl.Vector3Multiply(
		rl.Vector3Transform(rl.Vector3Transform(rl.Vector3{Z: 1}, boxRot), ownerRot),
		t.Scale,
	)
	depth := rl.Vector3Scale(forward, size.Z)
	for i := 0; i < 4; i++ {
		corners[i+4] = rl.Vector3Subtract(corners[i], depth)
	}
	return corners
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
