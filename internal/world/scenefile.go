package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"reticle/internal/components"
	"reticle/internal/engine"
	"reticle/internal/targeting"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      int               `json:"layer,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Color      string            `json:"color,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset"`
}

type targetingBoxDef struct {
	Center   [3]float32 `json:"center"`
	Size     [3]float32 `json:"size"`
	Rotation [3]float32 `json:"rotation"`
}

type targetableDef struct {
	Type         string            `json:"type"`
	Boxes        []targetingBoxDef `json:"boxes"`
	Controllable *bool             `json:"controllable,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.LightGray
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return ""
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

// LoadScene adds the objects described in path to the world. Unknown
// component types are skipped.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return fmt.Errorf("object %q: %w", objDef.Name, err)
		}
		w.addTree(g, objDef)
	}

	log.Printf("World: loaded %s (%d objects, %d targetables)", path, len(w.Scene.GameObjects), w.Registry.Len())
	return nil
}

func (w *World) addTree(g *engine.GameObject, def ObjectDef) {
	w.Colors[g.UID] = lookupColor(def.Color)
	w.Scene.AddGameObject(g)
	for i, child := range g.Children {
		w.addTree(child, def.Children[i])
	}
}

func buildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Layer = def.Layer
	if def.Active != nil {
		g.Active = *def.Active
	}
	g.Transform.Position = vec3(def.Position)
	g.Transform.Rotation = vec3(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec3(def.Scale)
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("component header: %w", err)
		}

		var err error
		switch header.Type {
		case "BoxCollider":
			err = loadBoxCollider(g, raw)
		case "SphereCollider":
			err = loadSphereCollider(g, raw)
		case "Targetable":
			err = loadTargetable(g, raw)
		default:
			log.Printf("World: skipping unknown component %q on %q", header.Type, def.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", header.Type, err)
		}
	}

	for _, childDef := range def.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, fmt.Errorf("child %q: %w", childDef.Name, err)
		}
		g.AddChild(child)
	}
	return g, nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadTargetable(g *engine.GameObject, raw json.RawMessage) error {
	var def targetableDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	t := targeting.NewTargetable()
	for _, b := range def.Boxes {
		t.Boxes = append(t.Boxes, targeting.TargetingBox{
			Center:   vec3(b.Center),
			Size:     vec3(b.Size),
			Rotation: vec3(b.Rotation),
		})
	}
	if def.Controllable != nil {
		t.Controllable = *def.Controllable
	}
	g.AddComponent(t)
	return nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile

	for _, g := range w.Scene.GameObjects {
		// Children are written inline under their parent
		if g.Parent != nil {
			continue
		}
		sf.Objects = append(sf.Objects, w.objectDef(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func (w *World) objectDef(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Layer:    g.Layer,
		Color:    lookupColorName(w.ColorOf(g)),
		Position: arr3(g.Transform.Position),
		Rotation: arr3(g.Transform.Rotation),
		Scale:    arr3(g.Transform.Scale),
	}
	if !g.Active {
		inactive := false
		def.Active = &inactive
	}

	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, w.objectDef(child))
	}
	return def
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr3(comp.Size),
			Offset: arr3(comp.Offset),
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: arr3(comp.Offset),
		}

	case *targeting.Targetable:
		controllable := comp.Controllable
		d := targetableDef{Type: "Targetable", Controllable: &controllable}
		for _, b := range comp.Boxes {
			d.Boxes = append(d.Boxes, targetingBoxDef{
				Center:   arr3(b.Center),
				Size:     arr3(b.Size),
				Rotation: arr3(b.Rotation),
			})
		}
		def = d

	default:
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}
