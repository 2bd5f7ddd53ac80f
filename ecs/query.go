package ecs

import (
	"fmt"
	"iter"
)

// Query wraps a View and caches the archetypes that match it.
// The cache is rebuilt only when the storage creates a new archetype, so
// iterating a query every frame does not rescan the archetype table.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	cachedArchetypes []*Archetype
	cachedLayout     int
}

// NewQuery creates a new Query with archetype-level caching.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cachedArchetypes = nil
	q.cachedLayout = -1
}

func (q *Query[T]) archetypes() []*Archetype {
	if q.storage == nil {
		panic("ecs: Query used before Init")
	}
	if q.cachedLayout == q.storage.layout {
		return q.cachedArchetypes
	}

	q.cachedArchetypes = q.cachedArchetypes[:0]
	q.storage.Archetypes(func(archetype *Archetype) bool {
		if q.view.matchesArchetype(archetype) {
			q.cachedArchetypes = append(q.cachedArchetypes, archetype)
		}
		return true
	})
	q.cachedLayout = q.storage.layout
	return q.cachedArchetypes
}

// Iter returns an iterator over matching entity IDs and component data.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range q.archetypes() {
			if !q.view.iterArchetype(archetype, yield) {
				return
			}
		}
	}
}

// Values returns an iterator over component data only.
func (q *Query[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range q.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (q *Query[T]) Count() int {
	n := 0
	for range q.Iter() {
		n++
	}
	return n
}

// Get returns the component set of one known entity, or nil if the entity is
// dead or lacks a required component.
func (q *Query[T]) Get(id EntityId) *T {
	if q.storage == nil {
		panic("ecs: Query used before Init")
	}
	return q.view.Get(id)
}

// MustGet is like Get but panics with an *EntityError when the entity does not match.
func (q *Query[T]) MustGet(id EntityId) *T {
	item := q.Get(id)
	if item == nil {
		panic(&EntityError{Id: id, View: fmt.Sprintf("%T", *new(T))})
	}
	return item
}

// EntityError reports an entity that does not carry the components a query requires.
type EntityError struct {
	Id   EntityId
	View string
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("ecs: entity %d does not match %s", e.Id, e.View)
}
