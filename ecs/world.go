package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/ecs/component"
)

// System updates a world each tick. dt is the tick duration in seconds.
type System interface {
	Update(w *World, dt float64)
}

// Drawer is implemented by systems that render. World.Draw calls them in
// system order after all updates for the frame are done.
type Drawer interface {
	Draw(w *World, screen *ebiten.Image)
}

// World owns entities, component storage, system order, and the event bus.
type World struct {
	entities entityStore
	stores   map[component.ID]*sparseSet
	systems  []System
	events   Events

	physics *PhysicsWorld
}

func NewWorld() *World {
	return &World{stores: map[component.ID]*sparseSet{}}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills the entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(int(e.id()))
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once in registration order.
func (w *World) Update(dt float64) {
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// Draw runs all render-capable systems once in registration order.
func (w *World) Draw(screen *ebiten.Image) {
	for _, s := range w.systems {
		if d, ok := s.(Drawer); ok {
			d.Draw(w, screen)
		}
	}
}

// Events returns the world's event bus.
func (w *World) Events() *Events {
	return &w.events
}

// SetPhysics attaches the physics world.
func (w *World) SetPhysics(pw *PhysicsWorld) {
	w.physics = pw
}

func (w *World) Physics() *PhysicsWorld {
	return w.physics
}

func (w *World) storeFor(id component.ID, create bool) *sparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns all live entities carrying every listed component. Iteration
// order follows the smallest store's dense order and is not otherwise
// guaranteed.
func (w *World) Query(ids ...component.ID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	var smallest *sparseSet
	for _, id := range ids {
		s := w.storeFor(id, false)
		if s == nil {
			return nil
		}
		if smallest == nil || s.len() < smallest.len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.len())
next:
	for _, rawID := range smallest.ids() {
		for _, id := range ids {
			if s := w.storeFor(id, false); !s.has(rawID) {
				continue next
			}
		}
		e := makeEntity(entityID(rawID), w.entities.gens[rawID-1])
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns any one live entity carrying the component.
func (w *World) First(id component.ID) (Entity, bool) {
	for _, rawID := range w.storeFor(id, false).ids() {
		e := makeEntity(entityID(rawID), w.entities.gens[rawID-1])
		if w.entities.isAlive(e) {
			return e, true
		}
	}
	return 0, false
}
