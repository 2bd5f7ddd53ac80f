package ecs

// EntityId encodes the archetype ID (upper 32 bits), a slot generation (12 bits)
// and the slot index (lower 20 bits). Deleting an entity bumps its slot's
// generation, so an id held past Delete never resolves to the slot's next occupant.
type EntityId uint64

const (
	indexBits      = 20
	generationBits = 12

	indexMask      = 1<<indexBits - 1
	generationMask = 1<<generationBits - 1
)

// MaxArchetypeEntities is the number of slots a single archetype can address.
const MaxArchetypeEntities = 1 << indexBits

// NewEntityId creates an EntityId from an archetype ID, slot generation and slot index.
// Generation and index are truncated to their field widths.
func NewEntityId(archetypeId, generation, index uint32) EntityId {
	low := (generation&generationMask)<<indexBits | index&indexMask
	return EntityId(uint64(archetypeId)<<32 | uint64(low))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e>>indexBits) & generationMask
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e) & indexMask
}
