package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}

	// Adding twice is a no-op
	scene.AddGameObject(obj)
	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected duplicate add to be ignored, got %d objects", len(scene.GameObjects))
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")
	scene.AddGameObject(obj)

	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}
	if scene.FindByUID(99999999) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}
	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.FindByUID(child.UID) != nil {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Crate1")
	obj2 := NewGameObject("Crate2")
	obj3 := NewGameObject("Wall")
	obj1.Tags = []string{"crate"}
	obj2.Tags = []string{"crate"}
	obj3.Tags = []string{"static"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if crates := scene.FindByTag("crate"); len(crates) != 2 {
		t.Errorf("Expected 2 crates, got %d", len(crates))
	}
	if found := scene.FindByName("Wall"); found != obj3 {
		t.Error("FindByName failed")
	}
}

func TestSceneEvents(t *testing.T) {
	scene := NewScene("Test")
	var added, removed []string
	scene.OnAdded.AddListener(func(g *GameObject) { added = append(added, g.Name) })
	scene.OnRemoved.AddListener(func(g *GameObject) { removed = append(removed, g.Name) })

	a := NewGameObject("A")
	b := NewGameObject("B")
	scene.AddGameObject(a)
	scene.AddGameObject(b)
	scene.RemoveGameObject(a)

	if len(added) != 2 || added[0] != "A" || added[1] != "B" {
		t.Errorf("Expected added [A B], got %v", added)
	}
	if len(removed) != 1 || removed[0] != "A" {
		t.Errorf("Expected removed [A], got %v", removed)
	}
}
