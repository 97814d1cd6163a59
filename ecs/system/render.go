package system

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/obj"
	"github.com/milk9111/overworld/shaders"
)

// RenderSystem composes each frame: the active map (or both maps of an
// in-flight transition), then every sprite in ascending layer order.
// Dissolving sprites are deferred into a single shader pass at the end of the
// frame, so the dissolve shader is engaged at most once per frame no matter
// how many entities use it.
//
// The system owns both map renderer instances and their GPU caches; they are
// released on map swap and on Close.
type RenderSystem struct {
	cam   *obj.Camera
	scale float64
	speed float64 // transition alpha per second

	current  *obj.MapRenderer
	incoming *obj.MapRenderer
	trans    *mapTransition

	deferred  []drawItem
	completed bool

	shaderFailed bool
}

type drawItem struct {
	entity ecs.Entity
	layer  int
	t      component.Transform
	s      *component.Sprite
}

func NewRenderSystem(w *ecs.World, cam *obj.Camera, scale, transitionSpeed float64) *RenderSystem {
	r := &RenderSystem{
		cam:   cam,
		scale: scale,
		speed: transitionSpeed,
	}
	w.Events().MapLoaded.Subscribe(r.onMapLoaded)
	w.Events().TransitionStart.Subscribe(r.onTransitionStart)
	return r
}

func (r *RenderSystem) onMapLoaded(ev ecs.MapLoaded) {
	if r.current != nil {
		r.current.Dispose()
		r.current = nil
	}
	if ev.Map != nil {
		r.current = obj.NewMapRenderer(ev.Map)
	}
}

// onTransitionStart arms the state machine. Only one transition may run at a
// time; a start signal while one is active is dropped.
func (r *RenderSystem) onTransitionStart(ev ecs.TransitionStart) {
	if ev.ToMap == nil {
		return
	}
	if r.trans != nil {
		log.Printf("render: transition already active, ignoring start into %s", ev.ToMap.Name())
		return
	}
	viewW, viewH := r.cam.ViewSize()
	r.incoming = obj.NewMapRenderer(ev.ToMap)
	r.trans = newMapTransition(
		ev.Direction,
		r.cam.Position(),
		ev.FromConnection,
		ev.ToConnection,
		float64(ev.ToMap.PixelW), float64(ev.ToMap.PixelH),
		viewW, viewH,
		r.scale,
	)
}

// Update advances an active transition and steers the camera along its
// trajectory. The camera belongs to this system while transitioning.
func (r *RenderSystem) Update(w *ecs.World, dt float64) {
	if r.trans == nil {
		return
	}
	done := r.trans.update(dt, r.speed)
	r.cam.SetPosition(r.trans.cameraAt())
	if done {
		r.finishTransition()
	}
}

// finishTransition promotes the incoming map and drops the outgoing one. The
// complete event is NOT published here: the frame must render once with the
// promoted map first, so that subscribers relocating entities can't cause a
// one-frame snap.
func (r *RenderSystem) finishTransition() {
	if r.current != nil {
		r.current.Dispose()
	}
	r.current = r.incoming
	r.incoming = nil
	r.trans = nil
	r.completed = true
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	switch {
	case r.trans != nil:
		// The incoming map is sampled with the camera displaced by the
		// transition offset; the outgoing map fades on top of it.
		r.incoming.Draw(screen, r.cam.X+r.trans.offset.X, r.cam.Y+r.trans.offset.Y, r.scale, 1)
		r.current.Draw(screen, r.cam.X, r.cam.Y, r.scale, r.trans.fadeOut())
	case r.current != nil:
		r.current.Draw(screen, r.cam.X, r.cam.Y, r.scale, 1)
	default:
		// No active map: entities still draw, with no backdrop.
	}

	r.drawEntities(w, screen)
	r.publishCompletion(w)
}

func (r *RenderSystem) publishCompletion(w *ecs.World) {
	if !r.completed {
		return
	}
	r.completed = false
	w.Events().TransitionComplete.Publish(ecs.TransitionComplete{})
}

// plan gathers this frame's sprite draws in ascending layer order (ties break
// on entity id) and splits off dissolving entities into the side buffer,
// which is cleared here at the start of the pass.
func (r *RenderSystem) plan(w *ecs.World) []drawItem {
	r.deferred = r.deferred[:0]

	ents := w.Query(component.TransformComponent.ID(), component.SpriteComponent.ID())
	items := make([]drawItem, 0, len(ents))
	for _, e := range ents {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent)
		if !ok {
			continue
		}
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent); ok {
			layer = l.Index
		}
		items = append(items, drawItem{entity: e, layer: layer, t: *t, s: s})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].entity < items[j].entity
	})

	ordered := items[:0]
	for _, it := range items {
		if it.s.Dissolve != nil {
			r.deferred = append(r.deferred, it)
			continue
		}
		ordered = append(ordered, it)
	}
	return ordered
}

func (r *RenderSystem) drawEntities(w *ecs.World, screen *ebiten.Image) {
	for _, it := range r.plan(w) {
		r.drawSprite(screen, it)
	}
	if len(r.deferred) == 0 {
		return
	}

	shader, err := shaders.Dissolve()
	if err != nil {
		if !r.shaderFailed {
			r.shaderFailed = true
			log.Printf("render: dissolve shader unavailable, drawing plain: %v", err)
		}
		for _, it := range r.deferred {
			r.drawSprite(screen, it)
		}
		return
	}

	// One shader engagement for the whole bucket. Uniforms are stateful
	// within the bound program, so each entity sets its own right before its
	// draw call.
	for _, it := range r.deferred {
		r.drawDissolved(screen, shader, it)
	}
}

func (r *RenderSystem) spriteImage(s *component.Sprite) *ebiten.Image {
	img := s.Image
	if img == nil {
		return nil
	}
	if s.UseSource {
		if sub, ok := img.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}
	return img
}

// geoFor maps the source image onto the entity's world box: scaled to WxH,
// rotated about the box center, then offset by the camera.
func (r *RenderSystem) geoFor(it drawItem, srcW, srcH int) ebiten.GeoM {
	var g ebiten.GeoM
	if srcW > 0 && srcH > 0 {
		g.Scale(it.t.W/float64(srcW), it.t.H/float64(srcH))
	}
	g.Translate(-it.t.W/2, -it.t.H/2)
	g.Rotate(it.t.Rotation)
	g.Translate(it.t.W/2, it.t.H/2)
	g.Translate(it.t.X-r.cam.X, it.t.Y-r.cam.Y)
	return g
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, it drawItem) {
	img := r.spriteImage(it.s)
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = r.geoFor(it, b.Dx(), b.Dy())
	screen.DrawImage(img, op)
}

func (r *RenderSystem) drawDissolved(screen *ebiten.Image, shader *ebiten.Shader, it drawItem) {
	img := r.spriteImage(it.s)
	if img == nil {
		return
	}
	b := img.Bounds()
	d := it.s.Dissolve

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = img
	op.GeoM = r.geoFor(it, b.Dx(), b.Dy())
	op.Uniforms = map[string]any{
		shaders.UniformProgress: float32(d.Progress),
		shaders.UniformUVOffset: []float32{float32(b.Min.X), float32(b.Min.Y)},
		shaders.UniformUVExtent: []float32{float32(b.Dx()), float32(b.Dy())},
		shaders.UniformDensity:  float32(d.Density),
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), shader, op)
}

// ActiveMap is the map entities live on right now. Nil while none is loaded.
func (r *RenderSystem) ActiveMap() *obj.Map {
	if r.current == nil {
		return nil
	}
	return r.current.Map()
}

func (r *RenderSystem) Transitioning() bool {
	return r.trans != nil
}

// TransitionAlpha reports progress of the in-flight transition, 0 when idle.
func (r *RenderSystem) TransitionAlpha() float64 {
	if r.trans == nil {
		return 0
	}
	return r.trans.alpha
}

// Close releases both map renderers' GPU caches.
func (r *RenderSystem) Close() {
	if r.current != nil {
		r.current.Dispose()
		r.current = nil
	}
	if r.incoming != nil {
		r.incoming.Dispose()
		r.incoming = nil
	}
}
