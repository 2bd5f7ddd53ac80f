package ecs

// Commands buffers structural changes and deferred callbacks issued while systems run.
// The scheduler flushes the buffer once every stage of the frame has executed, so
// queries never observe an archetype table that changes under them.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Defer queues fn to run after all structural changes of the frame are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then spawns, then deferred callbacks, and resets the buffer.
// Commands queued by a deferred callback are applied by a further pass of the same
// Flush, so the buffer is always empty when Flush returns.
func (c *Commands) Flush(storage *Storage) {
	for c.Pending() > 0 {
		deletes, spawns, defers := c.deletes, c.spawns, c.defers
		c.deletes, c.spawns, c.defers = nil, nil, nil

		for _, id := range deletes {
			storage.Delete(id)
		}

		for _, components := range spawns {
			storage.Spawn(components...)
		}

		for _, fn := range defers {
			fn()
		}

		clear(spawns)
		clear(defers)
		c.deletes = reuse(c.deletes, deletes)
		c.spawns = reuse(c.spawns, spawns)
		c.defers = reuse(c.defers, defers)
	}
}

// reuse keeps the spent backing array when nothing new was queued into its place.
func reuse[T any](queued, spent []T) []T {
	if len(queued) > 0 {
		return queued
	}
	return spent[:0]
}
