package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components.
// The type T must be a struct whose fields are pointers to component types.
// Embedded pointer fields are always required; named pointer fields can be marked
// optional with the `ecs:"optional"` struct tag. A field of type EntityId (embedded
// or named) receives the id of the matched entity.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	hasId    bool
	idOffset uintptr
}

// NewView creates a new view for the given struct type
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)

		if field.Type == entityIdType {
			v.hasId = true
			v.idOffset = field.Offset
			continue
		}

		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types or EntityId")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}

	return v
}

// Fill populates ptr with the entity's components.
// Returns false if the entity is dead or missing any required component.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok || !archetype.Contains(id) || !v.matchesArchetype(archetype) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), archetype, int(id.Index()), v.buildStorageIndices(archetype))
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

// matchesArchetype checks if an archetype contains all the required component types for this view
func (v *View[T]) matchesArchetype(archetype *Archetype) bool {
	for i, requiredType := range v.types {
		if !v.optional[i] && !archetype.HasComponent(requiredType) {
			return false
		}
	}
	return true
}

// buildStorageIndices maps each view field to the archetype column holding it, or -1.
func (v *View[T]) buildStorageIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, componentType := range v.types {
		indices[i] = archetype.column(componentType)
	}
	return indices
}

func (v *View[T]) populate(resultPtr unsafe.Pointer, archetype *Archetype, entityIndex int, storageIndices []int) bool {
	for i, storageIdx := range storageIndices {
		fieldPtr := unsafe.Add(resultPtr, v.fieldOffset[i])

		var component any
		if storageIdx >= 0 {
			component = archetype.storages[storageIdx].Get(entityIndex)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		*(*unsafe.Pointer)(fieldPtr) = dataPointer(component)
	}

	if v.hasId {
		*(*EntityId)(unsafe.Add(resultPtr, v.idOffset)) = archetype.entityId(uint32(entityIndex))
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype, yield func(EntityId, T) bool) bool {
	if len(archetype.storages) == 0 {
		return true
	}

	storageIndices := v.buildStorageIndices(archetype)

	var result T
	resultPtr := unsafe.Pointer(&result)

	for entityIndex := range archetype.storages[0].Iter() {
		if !v.populate(resultPtr, archetype, entityIndex, storageIndices) {
			continue
		}
		if !yield(archetype.entityId(uint32(entityIndex)), result) {
			return false
		}
	}
	return true
}

// Iter returns an iterator over all entities that have all the required components for this view
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		v.storage.Archetypes(func(archetype *Archetype) bool {
			if !v.matchesArchetype(archetype) {
				return true
			}
			return v.iterArchetype(archetype, yield)
		})
	}
}

// Values returns an iterator over just the view structs (without entity IDs)
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Iter() {
			if !yield(value) {
				return
			}
		}
	}
}
