package ecs

import (
	"github.com/milk9111/overworld/common"
	"github.com/milk9111/overworld/maps"
	"github.com/milk9111/overworld/obj"
)

// Topic is a synchronous publish/subscribe channel for one event type.
// Publish calls every handler to completion before returning, on the calling
// goroutine. Handler order across distinct subscribers is unspecified.
type Topic[T any] struct {
	handlers []func(T)
}

func (t *Topic[T]) Subscribe(fn func(T)) {
	if fn == nil {
		return
	}
	t.handlers = append(t.handlers, fn)
}

func (t *Topic[T]) Publish(ev T) {
	for _, h := range t.handlers {
		h(ev)
	}
}

// MapLoaded sets the active map.
type MapLoaded struct {
	Map *obj.Map
}

// TransitionStart begins a cross-fade into an adjacent map. Connection points
// are in map pixels of their respective maps.
type TransitionStart struct {
	ToMap          *obj.Map
	FromConnection common.Vec2
	ToConnection   common.Vec2
	Direction      maps.Side
}

// TransitionComplete fires exactly once per transition, after the final
// pre-swap frame has rendered.
type TransitionComplete struct{}

// Events is the world's bus.
type Events struct {
	MapLoaded          Topic[MapLoaded]
	TransitionStart    Topic[TransitionStart]
	TransitionComplete Topic[TransitionComplete]
}
