package ecs

import (
	"testing"

	"github.com/milk9111/overworld/ecs/component"
)

var (
	testPosComponent = component.NewComponent[testPos]()
	testTagComponent = component.NewComponent[testTag]()
)

type testPos struct {
	X, Y float64
}

type testTag struct{}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			for _, e := range ents {
				if !w.IsAlive(e) {
					t.Fatalf("entity %s should be alive after create", e)
				}
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false the second time")
				}
			}
		})
	}
}

func TestEntityIDReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	w.DestroyEntity(first)
	second := w.CreateEntity()

	if first == second {
		t.Fatalf("recycled id should carry a new generation")
	}
	if w.IsAlive(first) {
		t.Fatalf("stale handle should be dead after reuse")
	}
	if !w.IsAlive(second) {
		t.Fatalf("new handle should be alive")
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	if err := Add(w, e, testPosComponent, testPos{X: 3, Y: 4}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	p, ok := Get(w, e, testPosComponent)
	if !ok {
		t.Fatalf("Get should find the component")
	}
	if p.X != 3 || p.Y != 4 {
		t.Fatalf("got %+v, want {3 4}", *p)
	}

	// Get hands back a pointer for in-place mutation.
	p.X = 9
	p2, _ := Get(w, e, testPosComponent)
	if p2.X != 9 {
		t.Fatalf("mutation through Get pointer not visible, got %g", p2.X)
	}

	if !Remove(w, e, testPosComponent) {
		t.Fatalf("Remove should report true")
	}
	if Has(w, e, testPosComponent) {
		t.Fatalf("component should be gone after Remove")
	}
}

func TestAddToDeadEntityFails(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	if err := Add(w, e, testPosComponent, testPos{}); err != ErrEntityNotAlive {
		t.Fatalf("got %v, want ErrEntityNotAlive", err)
	}
	if _, ok := Get(w, e, testPosComponent); ok {
		t.Fatalf("Get on dead entity should report false")
	}
}

func TestDestroyDropsComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, e, testPosComponent, testPos{X: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.DestroyEntity(e)

	// The recycled id must not see the old entity's data.
	e2 := w.CreateEntity()
	if _, ok := Get(w, e2, testPosComponent); ok {
		t.Fatalf("recycled entity should start without components")
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	both := w.CreateEntity()
	posOnly := w.CreateEntity()
	tagOnly := w.CreateEntity()

	if err := Add(w, both, testPosComponent, testPos{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, both, testTagComponent, testTag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, posOnly, testPosComponent, testPos{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, tagOnly, testTagComponent, testTag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := w.Query(testPosComponent.ID(), testTagComponent.ID())
	if len(got) != 1 || got[0] != both {
		t.Fatalf("query should return exactly the entity with both components, got %v", got)
	}

	if len(w.Query(testPosComponent.ID())) != 2 {
		t.Fatalf("single-component query should return both carriers")
	}
}

func TestQuerySkipsDeadEntities(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if err := Add(w, a, testTagComponent, testTag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Add(w, b, testTagComponent, testTag{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	w.DestroyEntity(a)

	got := w.Query(testTagComponent.ID())
	if len(got) != 1 || got[0] != b {
		t.Fatalf("dead entity leaked into query: %v", got)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	if _, ok := w.First(testPosComponent.ID()); ok {
		t.Fatalf("First on empty store should report false")
	}
	e := w.CreateEntity()
	if err := Add(w, e, testPosComponent, testPos{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, ok := w.First(testPosComponent.ID())
	if !ok || got != e {
		t.Fatalf("First should return the carrier, got %v ok=%v", got, ok)
	}
}
