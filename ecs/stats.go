package ecs

import "sort"

// StorageStats summarizes the contents of a Storage.
type StorageStats struct {
	ArchetypeCount     int
	TotalEntityCount   int
	SingletonCount     int
	ArchetypeBreakdown []ArchetypeStats
	SingletonTypes     []string
}

// ArchetypeStats describes a single archetype.
type ArchetypeStats struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// CollectStats walks the archetype table and singleton set.
// Archetypes with no live entities are still reported.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		SingletonCount: len(s.singletons),
	}

	s.Archetypes(func(archetype *Archetype) bool {
		names := make([]string, len(archetype.types))
		for i, t := range archetype.types {
			names[i] = t.String()
		}

		count := archetype.Len()
		stats.ArchetypeBreakdown = append(stats.ArchetypeBreakdown, ArchetypeStats{
			ID:             archetype.id,
			ComponentTypes: names,
			EntityCount:    count,
		})
		stats.TotalEntityCount += count
		return true
	})
	stats.ArchetypeCount = len(stats.ArchetypeBreakdown)

	sort.Slice(stats.ArchetypeBreakdown, func(i, j int) bool {
		return stats.ArchetypeBreakdown[i].ID < stats.ArchetypeBreakdown[j].ID
	})

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
