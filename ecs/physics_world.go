package ecs

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/overworld/obj"
)

// PhysicsWorld owns the Chipmunk space and the static shapes built from the
// active map's solid tiles. Top-down world: no gravity, bodies are steered by
// velocity only.
type PhysicsWorld struct {
	space  *cp.Space
	static []*cp.Shape
	scale  float64
}

func NewPhysicsWorld(scale float64) *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	return &PhysicsWorld{space: space, scale: scale}
}

func (pw *PhysicsWorld) Space() *cp.Space {
	return pw.space
}

// Rebuild replaces the static solids with the given map's. Called on initial
// load and after every map swap.
func (pw *PhysicsWorld) Rebuild(m *obj.Map) {
	for _, s := range pw.static {
		pw.space.RemoveShape(s)
	}
	pw.static = pw.static[:0]
	if m == nil {
		return
	}

	def := m.Def
	cols, rows := def.Size()
	ts := float64(def.TileSize) * pw.scale
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			if !def.IsSolid(tx, ty) {
				continue
			}
			bb := cp.BB{
				L: float64(tx) * ts,
				B: float64(ty) * ts,
				R: float64(tx+1) * ts,
				T: float64(ty+1) * ts,
			}
			shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
			shape.SetElasticity(0)
			shape.SetFriction(0)
			pw.space.AddShape(shape)
			pw.static = append(pw.static, shape)
		}
	}
}

// AddBody creates a dynamic body centered at (x, y) with a w by h box shape.
func (pw *PhysicsWorld) AddBody(x, y, w, h float64) (*cp.Body, *cp.Shape) {
	body := pw.space.AddBody(cp.NewBody(1, cp.INFINITY))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := pw.space.AddShape(cp.NewBox(body, w, h, 0))
	shape.SetElasticity(0)
	shape.SetFriction(0)
	return body, shape
}

func (pw *PhysicsWorld) Step(dt float64) {
	pw.space.Step(dt)
}
