package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// InputSystem turns held movement keys into the player's velocity and picks
// the matching animation.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (is *InputSystem) Update(w *ecs.World, dt float64) {
	player, ok := w.First(component.PlayerComponent.ID())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent)
	if !ok {
		return
	}
	v, ok := ecs.Get(w, player, component.VelocityComponent)
	if !ok {
		return
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += 1
	}
	if dx != 0 && dy != 0 {
		inv := 1 / math.Sqrt2
		dx *= inv
		dy *= inv
	}
	v.X = dx * p.MoveSpeed
	v.Y = dy * p.MoveSpeed

	if anim, ok := ecs.Get(w, player, component.AnimationComponent); ok {
		want := "idle"
		if dx != 0 || dy != 0 {
			want = "walk"
		}
		if anim.Current != want {
			anim.Current = want
			anim.Frame = 0
			anim.FrameTimer = 0
		}
	}
}
