package system

import (
	"image"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
)

// AnimationSystem advances sprite sheet frames at 60 TPS and points each
// sprite's source rect at the current frame.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, dt float64) {
	for _, e := range w.Query(component.AnimationComponent.ID(), component.SpriteComponent.ID()) {
		anim, _ := ecs.Get(w, e, component.AnimationComponent)
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		if anim == nil || sprite == nil || !anim.Playing {
			continue
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			continue
		}

		ticksPerFrame := int(60.0 / def.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}
		anim.FrameTimer++
		if anim.FrameTimer >= ticksPerFrame {
			anim.FrameTimer = 0
			anim.Frame++
			if anim.Frame >= def.FrameCount {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = def.FrameCount - 1
					anim.Playing = false
				}
			}
		}

		x := anim.Frame * def.FrameW
		y := def.Row * def.FrameH
		sprite.Source = image.Rect(x, y, x+def.FrameW, y+def.FrameH)
		sprite.UseSource = true
	}
}
