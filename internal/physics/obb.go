package physics

import (
	"reticle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rotMatrix := engine.RotationMatrix(rotation)

	// Rotated basis vectors, same convention as Vector3Transform
	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{X: 1}, rotMatrix)),
		rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Y: 1}, rotMatrix)),
		rl.Vector3Normalize(rl.Vector3Transform(rl.Vector3{Z: 1}, rotMatrix)),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:     axes,
	}
}

// NewOBBFromBox creates an OBB from center, size, rotation, and scale
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	return NewOBB(center, rl.Vector3Multiply(size, scale), rotation)
}

// LocalPoint expresses a world point in the box's local frame (origin at Center).
func (o OBB) LocalPoint(p rl.Vector3) rl.Vector3 {
	return o.LocalDirection(rl.Vector3Subtract(p, o.Center))
}

// LocalDirection projects a world direction onto the box axes.
func (o OBB) LocalDirection(d rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// WorldDirection maps a local direction back to world space.
func (o OBB) WorldDirection(d rl.Vector3) rl.Vector3 {
	result := rl.Vector3Scale(o.Axes[0], d.X)
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], d.Y))
	return rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], d.Z))
}

// LocalBounds is the box as an AABB in its own frame.
func (o OBB) LocalBounds() AABB {
	return AABB{Min: rl.Vector3Negate(o.HalfSize), Max: o.HalfSize}
}

// ContainsPoint tests a world-space point against the box.
func (o OBB) ContainsPoint(p rl.Vector3) bool {
	return o.LocalBounds().Contains(o.LocalPoint(p))
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
