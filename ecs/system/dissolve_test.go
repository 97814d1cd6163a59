package system

import (
	"math"
	"testing"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

func addWisp(t *testing.T, w *ecs.World, progress float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.WispComponent, component.Wisp{}); err != nil {
		t.Fatalf("Add wisp: %v", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
		Dissolve: &component.Dissolve{Progress: progress, Density: 8},
	}); err != nil {
		t.Fatalf("Add sprite: %v", err)
	}
	return e
}

func TestDissolveScriptAdvancesProgress(t *testing.T) {
	w := ecs.NewWorld()
	d := NewDissolveSystem()
	if d.failed {
		t.Fatalf("embedded script should compile")
	}
	e := addWisp(t, w, 0)

	d.Update(w, 0.1)

	s, _ := ecs.Get(w, e, component.SpriteComponent)
	// rate 0.45, dt 0.1
	if math.Abs(s.Dissolve.Progress-0.045) > 1e-9 {
		t.Fatalf("progress = %g, want 0.045", s.Dissolve.Progress)
	}
}

func TestDissolveScriptPingPongsWithinBounds(t *testing.T) {
	w := ecs.NewWorld()
	d := NewDissolveSystem()
	e := addWisp(t, w, 0)
	s, _ := ecs.Get(w, e, component.SpriteComponent)

	sawFalling := false
	prev := 0.0
	for i := 0; i < 600; i++ { // 10 simulated seconds
		d.Update(w, 1.0/60)
		p := s.Dissolve.Progress
		if p < 0 || p > 1 {
			t.Fatalf("tick %d: progress %g escaped [0, 1]", i, p)
		}
		if p < prev {
			sawFalling = true
		}
		prev = p
	}
	if !sawFalling {
		t.Fatalf("progress never turned around; shimmer should ping-pong")
	}
}

func TestDissolveSkipsWispsWithoutDissolve(t *testing.T) {
	w := ecs.NewWorld()
	d := NewDissolveSystem()
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.WispComponent, component.Wisp{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	d.Update(w, 0.1) // must not panic

	s, _ := ecs.Get(w, e, component.SpriteComponent)
	if s.Dissolve != nil {
		t.Fatalf("system must not invent a dissolve")
	}
}

func TestDissolveStaggeredWispsKeepDistinctPhases(t *testing.T) {
	w := ecs.NewWorld()
	d := NewDissolveSystem()
	a := addWisp(t, w, 0.1)
	b := addWisp(t, w, 0.6)

	for i := 0; i < 30; i++ {
		d.Update(w, 1.0/60)
	}

	sa, _ := ecs.Get(w, a, component.SpriteComponent)
	sb, _ := ecs.Get(w, b, component.SpriteComponent)
	if math.Abs(sa.Dissolve.Progress-sb.Dissolve.Progress) < 1e-9 {
		t.Fatalf("wisps with different seeds converged to %g", sa.Dissolve.Progress)
	}
}
