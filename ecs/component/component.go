package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID identifies a component store inside a world. Zero is never
// issued.
type ComponentID uint32

var lastComponentID atomic.Uint32

// ComponentKind is the typed key of a component store. Kinds are process-wide,
// so every world uses the same id for the same component.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(lastComponentID.Add(1)),
		name: reflect.TypeFor[T]().String(),
	}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Valid is false for the zero kind, which owns no store.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String names the component type, for errors and logs.
func (k ComponentKind[T]) String() string {
	if !k.Valid() {
		return "<invalid component>"
	}
	return k.name
}

// ComponentHandle is what component files export as XComponent.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
