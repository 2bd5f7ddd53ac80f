package ecs

import (
	"reflect"
	"unsafe"
)

// singletonEntry owns the heap copy of one singleton value.
type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// AddSingleton inserts a singleton (a process-lifetime resource not bound to any entity).
// Values may be passed directly or by pointer. When a singleton of the same type
// already exists its contents are overwritten in place, so pointers previously
// returned by Singleton.Get keep observing the current value.
func (s *Storage) AddSingleton(value any) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			panic("cannot add nil singleton")
		}
		rv = rv.Elem()
	}
	t := rv.Type()

	if entry, ok := s.singletons[t]; ok {
		reflect.NewAt(t, entry.dataPtr).Elem().Set(rv)
		return
	}

	holder := reflect.New(t)
	holder.Elem().Set(rv)
	s.singletons[t] = &singletonEntry{
		typ:     t,
		dataPtr: holder.UnsafePointer(),
	}
}

// ReadSingleton fills target (a **T) with the singleton of type T.
// Returns false and leaves target untouched when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	t := rv.Elem().Type().Elem()
	entry := s.getSingletonEntry(t)
	if entry == nil {
		return false
	}
	rv.Elem().Set(reflect.NewAt(t, entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// Singleton provides efficient access to a single component instance
// that is not associated with any entity. Use this for global game state,
// configuration, or other singleton data.
type Singleton[T any] struct {
	storage      *Storage
	componentPtr unsafe.Pointer
}

// NewSingleton creates a new Singleton accessor for the given storage.
// If the singleton doesn't exist yet it is created from the initializer, or from the
// zero value when none is given. The singleton is guaranteed to exist after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.getSingletonEntry(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to a storage.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentPtr = nil
	s.updateCache()
}

// Get returns a pointer to the singleton component.
// Returns nil if the singleton has not been added to storage.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	return (*T)(s.componentPtr)
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

// updateCache refreshes the cached pointer from storage
func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(reflect.TypeFor[T]()); entry != nil {
		s.componentPtr = entry.dataPtr
	}
}
