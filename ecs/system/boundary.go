package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/ecs/entity"
	"github.com/milk9111/overworld/maps"
	"github.com/milk9111/overworld/obj"
)

// BoundarySystem watches the player against the active map's connection edges
// and starts a transition when the player walks off through one. When the
// transition completes it re-seats the player just inside the arrival
// connection and rebuilds the physics solids for the new map.
type BoundarySystem struct {
	render  *RenderSystem
	scale   float64
	pending *pendingArrival
}

type pendingArrival struct {
	toMap *obj.Map
	conn  maps.Connection
}

func NewBoundarySystem(w *ecs.World, render *RenderSystem, scale float64) *BoundarySystem {
	b := &BoundarySystem{render: render, scale: scale}
	w.Events().TransitionComplete.Subscribe(func(ecs.TransitionComplete) { b.arrive(w) })
	return b
}

func (b *BoundarySystem) Update(w *ecs.World, dt float64) {
	if b.render.Transitioning() || b.pending != nil {
		return
	}
	m := b.render.ActiveMap()
	if m == nil {
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
	worldW := float64(m.PixelW) * b.scale
	worldH := float64(m.PixelH) * b.scale
	// A connection triggers when the player's center reaches the map edge
	// within a tile and a half of the connection point.
	reach := float64(m.Def.TileSize) * b.scale * 1.5

	for _, c := range m.Def.Connections {
		connX := c.X * b.scale
		connY := c.Y * b.scale
		trigger := false
		switch c.Side {
		case maps.SideLeft:
			trigger = cx <= 0 && math.Abs(cy-connY) <= reach
		case maps.SideRight:
			trigger = cx >= worldW && math.Abs(cy-connY) <= reach
		case maps.SideUp:
			trigger = cy <= 0 && math.Abs(cx-connX) <= reach
		case maps.SideDown:
			trigger = cy >= worldH && math.Abs(cx-connX) <= reach
		}
		if !trigger {
			continue
		}
		b.begin(w, c)
		return
	}
}

func (b *BoundarySystem) begin(w *ecs.World, c maps.Connection) {
	def, err := maps.Load(c.To)
	if err != nil {
		log.Printf("boundary: connection %q: %v", c.ID, err)
		return
	}
	toConn, ok := def.Connection(c.ToConnection)
	if !ok {
		log.Printf("boundary: connection %q: target %q has no connection %q", c.ID, c.To, c.ToConnection)
		return
	}
	to := obj.NewMap(def)
	b.pending = &pendingArrival{toMap: to, conn: toConn}
	w.Events().TransitionStart.Publish(ecs.TransitionStart{
		ToMap:          to,
		FromConnection: common.Vec2{X: c.X, Y: c.Y},
		ToConnection:   common.Vec2{X: toConn.X, Y: toConn.Y},
		Direction:      c.Side,
	})
}

// arrive runs inside the complete publish, after the frame's final render.
func (b *BoundarySystem) arrive(w *ecs.World) {
	p := b.pending
	if p == nil {
		return
	}
	b.pending = nil

	entity.ClearWisps(w)
	entity.SpawnWisps(w, p.toMap.Def, b.scale)

	player, ok := w.First(component.PlayerComponent.ID())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}

	// Place the player's center one tile inward from the arrival connection.
	ts := float64(p.toMap.Def.TileSize) * b.scale
	cx := p.conn.X * b.scale
	cy := p.conn.Y * b.scale
	switch p.conn.Side {
	case maps.SideLeft:
		cx += ts
	case maps.SideRight:
		cx -= ts
	case maps.SideUp:
		cy += ts
	case maps.SideDown:
		cy -= ts
	}
	t.X = cx - t.W/2
	t.Y = cy - t.H/2

	if pw := w.Physics(); pw != nil {
		pw.Rebuild(p.toMap)
		if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent); ok && body.Body != nil {
			body.Body.SetPosition(cp.Vector{X: cx, Y: cy})
			body.Body.SetVelocity(0, 0)
		}
	}
}
