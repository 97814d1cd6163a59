package obj

import "github.com/milk9111/overworld/common"

// Camera is the view into the world. X/Y is the top-left of the visible area
// in world units; the logical screen size is the viewport.
type Camera struct {
	X float64
	Y float64

	screenW int
	screenH int
}

func NewCamera(screenW, screenH int) *Camera {
	return &Camera{screenW: screenW, screenH: screenH}
}

// ViewSize returns the viewport dimensions in world units.
func (c *Camera) ViewSize() (float64, float64) {
	return float64(c.screenW), float64(c.screenH)
}

func (c *Camera) Position() common.Vec2 {
	return common.Vec2{X: c.X, Y: c.Y}
}

func (c *Camera) SetPosition(p common.Vec2) {
	c.X = p.X
	c.Y = p.Y
}

// CenterOn points the view at a world position.
func (c *Camera) CenterOn(x, y float64) {
	c.X = x - float64(c.screenW)/2
	c.Y = y - float64(c.screenH)/2
}

// ClampTo keeps the visible area inside a world of the given size. A world
// smaller than the viewport is centered instead.
func (c *Camera) ClampTo(worldW, worldH float64) {
	viewW := float64(c.screenW)
	viewH := float64(c.screenH)
	if worldW <= viewW {
		c.X = (worldW - viewW) / 2
	} else {
		c.X = common.Clamp(c.X, 0, worldW-viewW)
	}
	if worldH <= viewH {
		c.Y = (worldH - viewH) / 2
	} else {
		c.Y = common.Clamp(c.Y, 0, worldH-viewH)
	}
}
