package system

import (
	"testing"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/maps"
	"github.com/milk9111/overworld/obj"
)

func testMap(name string) *obj.Map {
	return obj.NewMap(&maps.Def{
		Name:     name,
		TileSize: 16,
		Palette:  []string{"#222"},
		Layers:   [][][]int{{{1, 1}, {1, 1}}},
	})
}

func newTestRender(t *testing.T) (*ecs.World, *RenderSystem) {
	t.Helper()
	w := ecs.NewWorld()
	cam := obj.NewCamera(320, 240)
	r := NewRenderSystem(w, cam, 2, 0.8)
	return w, r
}

func addSprite(t *testing.T, w *ecs.World, layer int, dissolve *component.Dissolve) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{W: 10, H: 10}); err != nil {
		t.Fatalf("Add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{Dissolve: dissolve}); err != nil {
		t.Fatalf("Add sprite: %v", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: layer}); err != nil {
		t.Fatalf("Add layer: %v", err)
	}
	return e
}

func TestPlanOrdersByLayerThenEntity(t *testing.T) {
	w, r := newTestRender(t)
	back := addSprite(t, w, 2, nil)
	front := addSprite(t, w, 0, nil)
	mid := addSprite(t, w, 1, nil)
	midLater := addSprite(t, w, 1, nil)

	got := r.plan(w)
	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %d", len(got))
	}
	want := []ecs.Entity{front, mid, midLater, back}
	for i, it := range got {
		if it.entity != want[i] {
			t.Fatalf("position %d: got entity %s, want %s", i, it.entity, want[i])
		}
	}
}

func TestPlanDefersDissolvingSprites(t *testing.T) {
	w, r := newTestRender(t)
	plain := addSprite(t, w, 0, nil)
	dissolving := addSprite(t, w, 0, &component.Dissolve{Progress: 0.5, Density: 8})

	ordered := r.plan(w)
	if len(ordered) != 1 || ordered[0].entity != plain {
		t.Fatalf("ordered pass should hold only the plain sprite, got %v", ordered)
	}
	if len(r.deferred) != 1 || r.deferred[0].entity != dissolving {
		t.Fatalf("dissolving sprite should be deferred, got %v", r.deferred)
	}

	// The bucket is rebuilt from scratch every pass.
	if _, ok := ecs.Get(w, dissolving, component.SpriteComponent); !ok {
		t.Fatalf("sprite should still exist")
	}
	s, _ := ecs.Get(w, dissolving, component.SpriteComponent)
	s.Dissolve = nil
	r.plan(w)
	if len(r.deferred) != 0 {
		t.Fatalf("deferred bucket should be cleared when nothing dissolves, got %d items", len(r.deferred))
	}
}

func TestPlanMissingLayerDefaultsToZero(t *testing.T) {
	w, r := newTestRender(t)
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	layered := addSprite(t, w, 1, nil)

	got := r.plan(w)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].entity != e || got[1].entity != layered {
		t.Fatalf("bare sprite should sort as layer 0, got %v", got)
	}
}

func TestMapLoadedSwapsActiveMap(t *testing.T) {
	w, r := newTestRender(t)
	if r.ActiveMap() != nil {
		t.Fatalf("no map should be active initially")
	}

	first := testMap("first")
	w.Events().MapLoaded.Publish(ecs.MapLoaded{Map: first})
	if r.ActiveMap() != first {
		t.Fatalf("first map should be active")
	}

	second := testMap("second")
	w.Events().MapLoaded.Publish(ecs.MapLoaded{Map: second})
	if r.ActiveMap() != second {
		t.Fatalf("second map should replace the first")
	}
}

func startTransition(w *ecs.World, to *obj.Map) {
	w.Events().TransitionStart.Publish(ecs.TransitionStart{
		ToMap:          to,
		FromConnection: common.Vec2{X: 32, Y: 16},
		ToConnection:   common.Vec2{X: 0, Y: 16},
		Direction:      maps.SideRight,
	})
}

func TestTransitionStartWhileActiveIsIgnored(t *testing.T) {
	w, r := newTestRender(t)
	w.Events().MapLoaded.Publish(ecs.MapLoaded{Map: testMap("home")})

	first := testMap("first")
	startTransition(w, first)
	if !r.Transitioning() {
		t.Fatalf("transition should be active")
	}

	startTransition(w, testMap("second"))
	if r.incoming.Map() != first {
		t.Fatalf("second start should be dropped, incoming is %q", r.incoming.Map().Name())
	}
}

func TestTransitionCompletionOrdering(t *testing.T) {
	w, r := newTestRender(t)
	home := testMap("home")
	w.Events().MapLoaded.Publish(ecs.MapLoaded{Map: home})

	next := testMap("next")
	startTransition(w, next)

	fired := 0
	w.Events().TransitionComplete.Subscribe(func(ecs.TransitionComplete) { fired++ })

	// Half way: nothing promoted, nothing published.
	r.Update(w, 0.625) // alpha 0.5 at speed 0.8
	if !r.Transitioning() || r.ActiveMap() != home {
		t.Fatalf("mid-transition state wrong: transitioning=%v active=%v", r.Transitioning(), r.ActiveMap())
	}
	if a := r.TransitionAlpha(); a < 0.49 || a > 0.51 {
		t.Fatalf("alpha = %g, want 0.5", a)
	}

	// Finish: the map promotes during Update, but the complete event waits
	// for the frame's render.
	r.Update(w, 10)
	if r.Transitioning() {
		t.Fatalf("transition should be over")
	}
	if r.ActiveMap() != next {
		t.Fatalf("incoming map should be promoted")
	}
	if fired != 0 {
		t.Fatalf("complete must not publish before the frame renders")
	}

	r.publishCompletion(w)
	if fired != 1 {
		t.Fatalf("complete should publish exactly once after render, got %d", fired)
	}

	r.publishCompletion(w)
	if fired != 1 {
		t.Fatalf("complete republished, got %d", fired)
	}
}

func TestTransitionAlphaIdleIsZero(t *testing.T) {
	_, r := newTestRender(t)
	if r.TransitionAlpha() != 0 {
		t.Fatalf("idle alpha should be 0")
	}
	if r.Transitioning() {
		t.Fatalf("fresh system should not be transitioning")
	}
}
