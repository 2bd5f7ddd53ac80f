package ecs

import (
	"iter"
	"reflect"
)

// ComponentRegistry records which component types a Storage may hold.
// Each Storage owns its registry, so independent worlds (for example one per test)
// never share column factories.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers T as a component type.
// Spawning an entity with an unregistered type panics.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// Registered reports whether the type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const genericBlockSize = 64

// genericComponentStorage keeps components of type T in fixed-size blocks so that
// pointers handed out by Get stay valid while the column grows.
type genericComponentStorage[T any] struct {
	blocks    []*[genericBlockSize]T
	filled    []*[genericBlockSize]bool
	freeSlots []int
	nextIndex int
	count     int
}

func (cs *genericComponentStorage[T]) slot(index int) (int, int, bool) {
	if index < 0 || index >= cs.nextIndex {
		return 0, 0, false
	}
	return index / genericBlockSize, index % genericBlockSize, true
}

// Append stores a T (or *T) and returns its slot index, or -1 for a foreign type.
func (cs *genericComponentStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		return -1
	}

	var index int
	if n := len(cs.freeSlots); n > 0 {
		index = cs.freeSlots[n-1]
		cs.freeSlots = cs.freeSlots[:n-1]
	} else {
		index = cs.nextIndex
		cs.nextIndex++
		if index/genericBlockSize >= len(cs.blocks) {
			cs.blocks = append(cs.blocks, new([genericBlockSize]T))
			cs.filled = append(cs.filled, new([genericBlockSize]bool))
		}
	}

	block, slot := index/genericBlockSize, index%genericBlockSize
	cs.blocks[block][slot] = value
	cs.filled[block][slot] = true
	cs.count++
	return index
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (cs *genericComponentStorage[T]) Get(index int) any {
	block, slot, ok := cs.slot(index)
	if !ok || !cs.filled[block][slot] {
		return nil
	}
	return &cs.blocks[block][slot]
}

// Delete clears the slot and queues it for reuse.
func (cs *genericComponentStorage[T]) Delete(index int) {
	block, slot, ok := cs.slot(index)
	if !ok || !cs.filled[block][slot] {
		return
	}

	var zero T
	cs.blocks[block][slot] = zero
	cs.filled[block][slot] = false
	cs.freeSlots = append(cs.freeSlots, index)
	cs.count--
}

func (cs *genericComponentStorage[T]) Has(index int) bool {
	block, slot, ok := cs.slot(index)
	return ok && cs.filled[block][slot]
}

func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < cs.nextIndex; i++ {
			if !cs.filled[i/genericBlockSize][i%genericBlockSize] {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}
