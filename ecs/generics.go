package ecs

import (
	"errors"

	"github.com/milk9111/overworld/ecs/component"
)

var (
	ErrEntityNotAlive   = errors.New("ecs: entity not alive")
	ErrInvalidComponent = errors.New("ecs: invalid component handle")
)

// Add attaches (or replaces) a component on an entity.
func Add[T any](w *World, e Entity, h component.Handle[T], value T) error {
	if !h.Valid() {
		return ErrInvalidComponent
	}
	if !w.IsAlive(e) {
		return ErrEntityNotAlive
	}
	w.storeFor(h.ID(), true).set(int(e.id()), &value)
	return nil
}

// Get returns a pointer to the entity's component for in-place mutation.
func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.storeFor(h.ID(), false).get(int(e.id()))
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.storeFor(h.ID(), false).has(int(e.id()))
}

func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.storeFor(h.ID(), false).remove(int(e.id()))
}
