package ecs

import (
	"iter"
	"reflect"
	"slices"
	"sort"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype stores every entity that carries exactly the same set of component types.
// Each type gets one column; an entity's components share the same slot index in every column.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage

	// generations[i] is the generation of whoever occupies (or next occupies) slot i.
	generations []uint32
}

// NewArchetype creates an archetype for the given sorted component types.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// Spawn appends one component per column and returns the shared slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		idx := a.column(componentType(comp))
		if idx < 0 {
			panic("component type " + componentType(comp).String() + " not part of archetype")
		}

		pos := a.storages[idx].Append(comp)
		if slot >= 0 && pos != slot {
			panic("archetype columns out of sync")
		}
		slot = pos
	}

	if slot >= MaxArchetypeEntities {
		panic("archetype is full")
	}
	for len(a.generations) <= slot {
		a.generations = append(a.generations, 0)
	}
	return uint32(slot)
}

// entityId returns the id of the current occupant of a slot.
func (a *Archetype) entityId(index uint32) EntityId {
	return NewEntityId(a.id, a.generations[index], index)
}

// Contains reports whether id names an entity that currently lives in this archetype.
// Ids of deleted entities stay invalid after their slot is reused.
func (a *Archetype) Contains(id EntityId) bool {
	index := id.Index()
	return id.ArchetypeId() == a.id &&
		int(index) < len(a.generations) &&
		a.generations[index] == id.Generation() &&
		a.Alive(index)
}

func (a *Archetype) column(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// GetComponent returns a pointer to the component of the given type, or nil.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.column(compType)
	if idx < 0 {
		return nil
	}
	return a.storages[idx].Get(int(entityIndex))
}

// Delete clears the entity's slot in every column and retires the slot's generation.
func (a *Archetype) Delete(entityIndex uint32) {
	if !a.Alive(entityIndex) {
		return
	}
	for _, storage := range a.storages {
		storage.Delete(int(entityIndex))
	}
	a.generations[entityIndex] = (a.generations[entityIndex] + 1) & generationMask
}

// Alive reports whether the slot currently holds an entity.
func (a *Archetype) Alive(entityIndex uint32) bool {
	return len(a.storages) > 0 && a.storages[0].Has(int(entityIndex))
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.storages) == 0 {
		return 0
	}
	return a.storages[0].Len()
}

// Iter returns an iterator over all live EntityIds in this archetype
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.storages) == 0 {
			return
		}

		for index := range a.storages[0].Iter() {
			if !yield(a.entityId(uint32(index))) {
				return
			}
		}
	}
}

func sortTypes(types []reflect.Type) {
	sort.Sort(byTypeName(types))
}
