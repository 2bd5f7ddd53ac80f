package ecs_test

import (
	"testing"

	"github.com/plus3/skyship/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewIteratesMatchingEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2}, Velocity{DX: 2}, Health{Max: 5})
	storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	sum := float32(0)
	count := 0
	for _, item := range view.Iter() {
		sum += item.Position.X
		count++
	}
	assert.Equal(t, 2, count)
	assert.Equal(t, float32(3), sum)
}

func TestViewWritesThrough(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1, Y: 1}, Velocity{DX: 2, DY: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	for item := range view.Values() {
		item.Position.X += item.Velocity.DX
		item.Position.Y += item.Velocity.DY
	}

	assert.Equal(t, Position{X: 3, Y: 4}, *ecs.ReadComponent[Position](storage, id))
}

func TestViewOptionalFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	withHealth := storage.Spawn(Position{X: 1}, Health{Current: 3})
	without := storage.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		*Position
		Health *Health `ecs:"optional"`
	}](storage)

	seen := map[ecs.EntityId]bool{}
	for id, item := range view.Iter() {
		seen[id] = item.Health != nil
	}
	assert.Equal(t, map[ecs.EntityId]bool{withHealth: true, without: false}, seen)
}

func TestViewEntityIdField(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{}, Name{Value: "probe"})

	embedded := ecs.NewView[struct {
		ecs.EntityId
		*Name
	}](storage)
	named := ecs.NewView[struct {
		Id   ecs.EntityId
		Name *Name
	}](storage)

	for item := range embedded.Values() {
		assert.Equal(t, id, item.EntityId)
	}
	item := named.Get(id)
	require.NotNil(t, item)
	assert.Equal(t, id, item.Id)
	assert.Equal(t, "probe", item.Name.Value)
}

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	full := storage.Spawn(Position{X: 5}, Velocity{DX: 1})
	partial := storage.Spawn(Position{X: 6})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	item := view.Get(full)
	require.NotNil(t, item)
	assert.Equal(t, float32(5), item.Position.X)

	assert.Nil(t, view.Get(partial))

	storage.Delete(full)
	assert.Nil(t, view.Get(full))

	var target struct {
		*Position
		*Velocity
	}
	assert.False(t, view.Fill(full, &target))
}

func TestViewEarlyBreak(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for range 10 {
		storage.Spawn(Position{})
	}
	storage.Spawn(Position{}, Velocity{})

	view := ecs.NewView[struct{ *Position }](storage)
	n := 0
	for range view.Values() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestViewRejectsBadShapes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ P Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			P *Position `ecs:"maybe"`
		}](storage)
	})
}
