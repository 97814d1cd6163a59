package system

import (
	"github.com/tanema/gween/ease"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/maps"
)

// mapTransition is the live state of one map-to-map cross-fade: the camera
// trajectory, the sampling offset for the incoming map, and the fade alpha.
type mapTransition struct {
	alpha  float64
	start  common.Vec2
	end    common.Vec2
	offset common.Vec2
	curve  ease.TweenFunc
}

// newMapTransition computes the trajectory for a transition entered through a
// connection on the given side. camStart and the viewport are in world units;
// connection points and the incoming map size are in map pixels and get
// scaled here.
//
// The camera never pans farther than one viewport extent: the pan distance is
// the componentwise minimum of the scaled incoming map size and the viewport.
// The incoming map is sampled as if displaced by one full scaled map
// dimension in the direction of travel, with the connection points aligned on
// the cross axis.
func newMapTransition(dir maps.Side, camStart, fromConn, toConn common.Vec2, toPixelW, toPixelH, viewW, viewH, scale float64) *mapTransition {
	mapW := toPixelW * scale
	mapH := toPixelH * scale
	mapDiff := fromConn.Sub(toConn).Scale(scale)
	distToPan := common.Vec2{
		X: common.Min(mapW, viewW),
		Y: common.Min(mapH, viewH),
	}

	end := camStart
	var offset common.Vec2
	switch dir {
	case maps.SideLeft:
		end.X -= distToPan.X
		end.Y += mapDiff.Y
		offset = common.Vec2{X: -mapW, Y: -mapDiff.Y}
	case maps.SideRight:
		end.X += distToPan.X
		end.Y += mapDiff.Y
		offset = common.Vec2{X: mapW, Y: -mapDiff.Y}
	case maps.SideDown:
		end.X += mapDiff.X
		end.Y -= distToPan.Y
		offset = common.Vec2{X: mapDiff.X, Y: mapH}
	case maps.SideUp:
		end.X += mapDiff.X
		end.Y += distToPan.Y
		offset = common.Vec2{X: mapDiff.X, Y: -mapH}
	}

	return &mapTransition{
		start:  camStart,
		end:    end,
		offset: offset,
		curve:  ease.InOutQuad,
	}
}

// update advances alpha by dt*speed, clamped to 1. Reports completion.
// dt of zero changes nothing.
func (t *mapTransition) update(dt, speed float64) bool {
	t.alpha = common.Clamp(t.alpha+dt*speed, 0, 1)
	return t.alpha >= 1
}

// cameraAt is the camera position for the current alpha: a linear
// interpolation of the trajectory at the curve-transformed alpha.
func (t *mapTransition) cameraAt() common.Vec2 {
	k := float64(t.curve(float32(t.alpha), 0, 1, 1))
	return common.Vec2{
		X: common.Lerp(t.start.X, t.end.X, k),
		Y: common.Lerp(t.start.Y, t.end.Y, k),
	}
}

// fadeOut is the outgoing map's opacity, linear in raw alpha.
func (t *mapTransition) fadeOut() float64 {
	return 1 - t.alpha
}
