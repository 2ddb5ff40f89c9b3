package targeting

import (
	"reticle/internal/engine"
)

// Registry is the ordered set of Targetables. Order is registration order and
// decides which candidate wins when several match in the same frame.
type Registry struct {
	candidates []*Targetable
}

func NewRegistry() *Registry {
	return &Registry{candidates: make([]*Targetable, 0)}
}

// Register appends t. Registering twice keeps the original position.
func (r *Registry) Register(t *Targetable) {
	if t == nil || r.indexOf(t) >= 0 {
		return
	}
	r.candidates = append(r.candidates, t)
}

// Unregister removes t, keeping the relative order of the rest.
func (r *Registry) Unregister(t *Targetable) {
	i := r.indexOf(t)
	if i < 0 {
		return
	}
	r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
}

// Candidates returns the registered Targetables in order. The slice is shared; do not modify it.
func (r *Registry) Candidates() []*Targetable {
	return r.candidates
}

func (r *Registry) Len() int {
	return len(r.candidates)
}

func (r *Registry) indexOf(t *Targetable) int {
	for i, c := range r.candidates {
		if c == t {
			return i
		}
	}
	return -1
}

// Attach keeps the registry in sync with scene membership. Objects already in
// the scene are registered immediately, in scene order.
func (r *Registry) Attach(scene *engine.Scene) {
	for _, g := range scene.GameObjects {
		r.registerObject(g)
	}
	scene.OnAdded.AddListener(r.registerObject)
	scene.OnRemoved.AddListener(r.unregisterObject)
}

func (r *Registry) registerObject(g *engine.GameObject) {
	if t := engine.GetComponent[*Targetable](g); t != nil {
		r.Register(t)
	}
}

func (r *Registry) unregisterObject(g *engine.GameObject) {
	if t := engine.GetComponent[*Targetable](g); t != nil {
		r.Unregister(t)
	}
}
