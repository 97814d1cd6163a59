package entity

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/maps"
)

const wispFrameSize = 24

var (
	wispSheetOnce sync.Once
	wispSheet     *ebiten.Image
)

// NewWisp spawns a dissolving wisp with its center at world position (cx, cy).
func NewWisp(w *ecs.World, cx, cy, scale float64) ecs.Entity {
	e := w.CreateEntity()

	size := float64(wispFrameSize) * scale * 0.75
	wispSheetOnce.Do(func() {
		wispSheet = assets.WispSheet(wispFrameSize)
	})

	// Stagger the shimmer so a cluster of wisps doesn't pulse in lockstep.
	phase := math.Mod(cx*0.37+cy*0.13, 0.85)
	if phase < 0 {
		phase += 0.85
	}

	mustAdd(w, e, component.TransformComponent, component.Transform{
		X: cx - size/2,
		Y: cy - size/2,
		W: size,
		H: size,
	})
	mustAdd(w, e, component.SpriteComponent, component.Sprite{
		Image: wispSheet,
		Dissolve: &component.Dissolve{
			Progress: phase,
			Density:  8,
		},
	})
	mustAdd(w, e, component.AnimationComponent, component.Animation{
		Defs: map[string]component.AnimationDef{
			"pulse": {Name: "pulse", Row: 0, FrameCount: 4, FrameW: wispFrameSize, FrameH: wispFrameSize, FPS: 6, Loop: true},
		},
		Current: "pulse",
		Playing: true,
	})
	mustAdd(w, e, component.WispComponent, component.Wisp{})
	mustAdd(w, e, component.RenderLayerComponent, component.RenderLayer{Index: 2})

	return e
}

// SpawnWisps creates a wisp for every wisp spawn point in the map definition.
// Spawn coordinates are map pixels; scale converts them to world units.
func SpawnWisps(w *ecs.World, def *maps.Def, scale float64) {
	for _, s := range def.Spawns {
		if s.Type != "wisp" {
			continue
		}
		NewWisp(w, s.X*scale, s.Y*scale, scale)
	}
}

// ClearWisps destroys every wisp, typically right before a new map's spawns
// come in.
func ClearWisps(w *ecs.World) {
	for _, e := range w.Query(component.WispComponent.ID()) {
		w.DestroyEntity(e)
	}
}
