package components

import (
	"reticle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3 // local-space offset, rotated and scaled with the object
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	scale := g.WorldScale()
	scaled := rl.Vector3Multiply(b.Offset, scale)
	rotated := rl.Vector3Transform(scaled, engine.RotationMatrix(g.WorldRotation()))
	return rl.Vector3Add(g.WorldPosition(), rotated)
}

// GetWorldSize returns Size multiplied by the object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	return rl.Vector3Multiply(b.Size, b.GetGameObject().WorldScale())
}
