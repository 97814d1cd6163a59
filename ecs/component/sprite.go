package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is an entity's visual attributes: an image (optionally a sub-region
// of a sheet) drawn at the entity's transform.
//
// Dissolve is deliberately a field of Sprite rather than its own component so
// that a dissolving entity without visuals cannot be represented.
type Sprite struct {
	Image     *ebiten.Image
	Source    image.Rectangle
	UseSource bool

	// Dissolve, when non-nil, routes this entity through the dissolve shader
	// pass instead of the plain sprite pass.
	Dissolve *Dissolve
}

// Dissolve holds the shader inputs for the dissolve effect. Progress is in
// [0,1]; the producer that advances it owns clamping. Density controls how
// many fragments the sprite breaks into. The shader's UV offset/extent come
// from the sprite's Source region.
type Dissolve struct {
	Progress float64
	Density  float64
}

var SpriteComponent = NewComponent[Sprite]()
