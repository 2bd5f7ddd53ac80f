package ecs

import "unsafe"

// iface mirrors the runtime layout of an interface value: a type word and a data word.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// dataPointer returns the pointer stored in an interface holding a pointer type.
func dataPointer(v any) unsafe.Pointer {
	return (*iface)(unsafe.Pointer(&v)).data
}
