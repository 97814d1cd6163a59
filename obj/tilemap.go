package obj

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/maps"
)

// Map is a handle to a loaded tile map: its definition plus pixel dimensions.
type Map struct {
	Def    *maps.Def
	PixelW int
	PixelH int
}

func NewMap(def *maps.Def) *Map {
	w, h := def.PixelSize()
	return &Map{Def: def, PixelW: w, PixelH: h}
}

func (m *Map) Name() string {
	return m.Def.Name
}

// MapRenderer draws one map. The composited layer image is built on first
// draw and lives on the GPU until Dispose.
type MapRenderer struct {
	m      *Map
	cache  *ebiten.Image
	failed bool
}

func NewMapRenderer(m *Map) *MapRenderer {
	return &MapRenderer{m: m}
}

func (r *MapRenderer) Map() *Map {
	return r.m
}

// Draw renders the map with the view's top-left at (camX, camY) world units,
// at the given world scale and opacity.
func (r *MapRenderer) Draw(screen *ebiten.Image, camX, camY, scale, alpha float64) {
	if r == nil || r.m == nil {
		return
	}
	if err := r.ensureCache(); err != nil {
		if !r.failed {
			r.failed = true
			log.Printf("tilemap: render %s: %v", r.m.Name(), err)
		}
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(-camX, -camY)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(r.cache, op)
}

func (r *MapRenderer) ensureCache() error {
	if r.cache != nil {
		return nil
	}
	def := r.m.Def
	tileset, err := assets.Tileset(def.Palette, def.TileSize)
	if err != nil {
		return err
	}
	// Composite every layer once; per-frame drawing then costs a single
	// image draw. The tileset itself is only needed here.
	defer tileset.Deallocate()

	cache := ebiten.NewImage(r.m.PixelW, r.m.PixelH)
	ts := def.TileSize
	for _, layer := range def.Layers {
		for ty, row := range layer {
			for tx, id := range row {
				if id == 0 {
					continue
				}
				src := image.Rect((id-1)*ts, 0, id*ts, ts)
				tile := tileset.SubImage(src).(*ebiten.Image)
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(float64(tx*ts), float64(ty*ts))
				cache.DrawImage(tile, op)
			}
		}
	}
	r.cache = cache
	return nil
}

// Dispose releases the GPU-side cache. Safe to call twice; the renderer must
// not draw afterwards.
func (r *MapRenderer) Dispose() {
	if r == nil || r.cache == nil {
		return
	}
	r.cache.Deallocate()
	r.cache = nil
}
