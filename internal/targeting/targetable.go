package targeting

import (
	"reticle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TargetingBox is a selection volume in the owner's local space, independent of
// its colliders. Rotation is euler degrees.
type TargetingBox struct {
	Center   rl.Vector3 `json:"center"`
	Size     rl.Vector3 `json:"size"`
	Rotation rl.Vector3 `json:"rotation"`
}

// Valid reports whether every extent is positive.
func (b TargetingBox) Valid() bool {
	return b.Size.X > 0 && b.Size.Y > 0 && b.Size.Z > 0
}

// Targetable marks a GameObject as selectable by the reticle.
type Targetable struct {
	engine.BaseComponent
	Boxes        []TargetingBox
	Controllable bool
}

func NewTargetable(boxes ...TargetingBox) *Targetable {
	return &Targetable{
		Boxes:        boxes,
		Controllable: true,
	}
}

// eligible filters out candidates that cannot be selected this frame.
func (t *Targetable) eligible() bool {
	g := t.GetGameObject()
	return g != nil && t.Controllable && len(t.Boxes) > 0 && g.ActiveInHierarchy()
}
