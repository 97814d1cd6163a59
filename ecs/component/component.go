package component

import "sync/atomic"

// ID identifies a component type at runtime. IDs are handed out once per
// process in registration order.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed token for a registered component type. Package-level
// handles (TransformComponent, SpriteComponent, ...) are the only way systems
// refer to component storage.
type Handle[T any] struct {
	id ID
}

// NewComponent registers a component type and returns its handle.
func NewComponent[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
