package system

import (
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/obj"
)

// CameraSystem follows the player and keeps the view inside the active map.
// It goes inert while a transition is in flight; the transition trajectory
// drives the camera for that stretch.
type CameraSystem struct {
	cam    *obj.Camera
	render *RenderSystem
	scale  float64
	smooth float64
	snap   bool
}

func NewCameraSystem(w *ecs.World, cam *obj.Camera, render *RenderSystem, scale float64) *CameraSystem {
	c := &CameraSystem{
		cam:    cam,
		render: render,
		scale:  scale,
		smooth: 0.12,
		snap:   true,
	}
	w.Events().MapLoaded.Subscribe(func(ecs.MapLoaded) { c.snap = true })
	return c
}

func (c *CameraSystem) Update(w *ecs.World, dt float64) {
	if c.render != nil && c.render.Transitioning() {
		return
	}
	player, ok := w.First(component.PlayerComponent.ID())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}

	cx := t.X + t.W/2
	cy := t.Y + t.H/2
	if c.snap {
		c.snap = false
		c.cam.CenterOn(cx, cy)
	} else {
		viewW, viewH := c.cam.ViewSize()
		c.cam.X += (cx - viewW/2 - c.cam.X) * c.smooth
		c.cam.Y += (cy - viewH/2 - c.cam.Y) * c.smooth
	}

	if m := c.render.ActiveMap(); m != nil {
		c.cam.ClampTo(float64(m.PixelW)*c.scale, float64(m.PixelH)*c.scale)
	}
}
