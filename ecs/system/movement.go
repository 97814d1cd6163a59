package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// MovementSystem feeds entity velocities into their physics bodies, steps the
// space, and copies the resolved positions back to the transforms. Movement
// is frozen while a map transition plays out.
type MovementSystem struct {
	render *RenderSystem
}

func NewMovementSystem(render *RenderSystem) *MovementSystem {
	return &MovementSystem{render: render}
}

func (ms *MovementSystem) Update(w *ecs.World, dt float64) {
	pw := w.Physics()
	if pw == nil {
		return
	}
	if ms.render != nil && ms.render.Transitioning() {
		return
	}

	for _, e := range w.Query(component.PhysicsBodyComponent.ID(), component.VelocityComponent.ID()) {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		v, _ := ecs.Get(w, e, component.VelocityComponent)
		if body == nil || v == nil || body.Body == nil {
			continue
		}
		body.Body.SetVelocity(v.X, v.Y)
	}

	pw.Step(dt)

	for _, e := range w.Query(component.PhysicsBodyComponent.ID(), component.TransformComponent.ID()) {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		if body == nil || t == nil || body.Body == nil {
			continue
		}
		pos := body.Body.Position()
		t.X = pos.X - t.W/2
		t.Y = pos.Y - t.H/2
	}
}
