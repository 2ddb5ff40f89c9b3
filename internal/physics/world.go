package physics

import (
	"reticle/internal/components"
	"reticle/internal/engine"
)

// PhysicsWorld is the set of objects visible to collision queries.
// Objects are kept in insertion order; queries return the closest hit so order only breaks exact ties.
type PhysicsWorld struct {
	Objects []*engine.GameObject
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Objects: make([]*engine.GameObject, 0),
	}
}

// AddObject registers g if it carries a box or sphere collider. Returns false otherwise.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) bool {
	if !hasCollider(g) {
		return false
	}
	for _, obj := range p.Objects {
		if obj == g {
			return true
		}
	}
	p.Objects = append(p.Objects, g)
	return true
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
}

func (p *PhysicsWorld) Clear() {
	p.Objects = p.Objects[:0]
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[*components.BoxCollider](g) != nil ||
		engine.GetComponent[*components.SphereCollider](g) != nil
}
