// Package entity assembles the game's entities from their components.
package entity

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

const playerFrameSize = 32

var (
	playerSheetOnce sync.Once
	playerSheet     *ebiten.Image
)

// NewPlayer spawns the player with their center at world position (cx, cy).
func NewPlayer(w *ecs.World, cx, cy, scale, moveSpeed float64) ecs.Entity {
	e := w.CreateEntity()

	size := float64(playerFrameSize) * scale * 0.75
	t := component.Transform{
		X: cx - size/2,
		Y: cy - size/2,
		W: size,
		H: size,
	}

	playerSheetOnce.Do(func() {
		playerSheet = assets.PlayerSheet(playerFrameSize)
	})

	mustAdd(w, e, component.TransformComponent, t)
	mustAdd(w, e, component.SpriteComponent, component.Sprite{Image: playerSheet})
	mustAdd(w, e, component.AnimationComponent, component.Animation{
		Defs: map[string]component.AnimationDef{
			"idle": {Name: "idle", Row: 0, FrameCount: 4, FrameW: playerFrameSize, FrameH: playerFrameSize, FPS: 4, Loop: true},
			"walk": {Name: "walk", Row: 1, FrameCount: 4, FrameW: playerFrameSize, FrameH: playerFrameSize, FPS: 8, Loop: true},
		},
		Current: "idle",
		Playing: true,
	})
	mustAdd(w, e, component.VelocityComponent, component.Velocity{})
	mustAdd(w, e, component.PlayerComponent, component.Player{MoveSpeed: moveSpeed})
	mustAdd(w, e, component.RenderLayerComponent, component.RenderLayer{Index: 1})

	if pw := w.Physics(); pw != nil {
		// The collision box is a bit slimmer than the sprite so doorways
		// don't snag.
		body, shape := pw.AddBody(cx, cy, size*0.8, size*0.8)
		mustAdd(w, e, component.PhysicsBodyComponent, component.PhysicsBody{Body: body, Shape: shape})
	}

	return e
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, h component.Handle[T], v T) {
	if err := ecs.Add(w, e, h, v); err != nil {
		log.Printf("entity: add %T to %s: %v", v, e, err)
	}
}
