package components

import (
	"reticle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis
func (s *SphereCollider) GetWorldRadius() float32 {
	scale := s.GetGameObject().WorldScale()
	m := absf(scale.X)
	if y := absf(scale.Y); y > m {
		m = y
	}
	if z := absf(scale.Z); z > m {
		m = z
	}
	return s.Radius * m
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
