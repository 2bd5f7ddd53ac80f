package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns every archetype and singleton of one world.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	singletons map[reflect.Type]*singletonEntry
	registry   *ComponentRegistry

	// layout changes whenever an archetype is created so cached queries can rebuild.
	layout int
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]*singletonEntry),
		registry:   registry,
	}
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// GetArchetype returns the archetype holding exactly the given component values, if one exists.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	archetype, _ := s.archetypes.Get(hashTypesToUint32(types))
	return archetype
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	archetype, _ := s.archetypes.Get(id)
	return archetype
}

// Archetypes calls fn for every archetype until fn returns false.
func (s *Storage) Archetypes(fn func(*Archetype) bool) {
	s.archetypes.ForEach(func(_ uint32, archetype *Archetype) bool {
		return fn(archetype)
	})
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	archetype, ok := s.archetypes.Get(id)
	if !ok {
		archetype = NewArchetype(id, types, s.registry)
		s.archetypes.Put(id, archetype)
		s.layout++
	}
	return archetype
}

// Spawn creates a new entity with the provided components.
// Components may be passed by value or by pointer; the storage keeps a copy.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	for i := 1; i < len(types); i++ {
		if types[i] == types[i-1] {
			panic("duplicate component type " + types[i].String())
		}
	}

	archetype := s.archetypeFor(types)
	return archetype.entityId(archetype.Spawn(components))
}

// Delete removes all components of the entity. Unknown and stale ids are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok && archetype.Contains(id) {
		archetype.Delete(id.Index())
	}
}

// Alive reports whether the id refers to a live entity.
func (s *Storage) Alive(id EntityId) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.Contains(id)
}

// GetComponent returns a pointer to the live entity's component of the given type, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || !archetype.Contains(id) {
		return nil
	}
	return archetype.GetComponent(id.Index(), compType)
}

// HasComponent checks if a live entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	return ok && archetype.Contains(id) && archetype.HasComponent(compType)
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)

		switch compType.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sortTypes(types)
	return types
}

// hashTypesToUint32 folds the runtime type pointers of a sorted type list with FNV-1a.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		ptr := uintptr((*iface)(unsafe.Pointer(&t)).data)
		val := uint32(ptr)
		if unsafe.Sizeof(ptr) == 8 {
			val ^= uint32(uint64(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	// Zero is reserved so that EntityId(0) never names a live entity.
	if h == 0 {
		h = prime
	}
	return h
}

// ComponentReader is implemented by anything that can look up an entity's component.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the entity's component, or nil when absent.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}
