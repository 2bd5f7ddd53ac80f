package debugui

import (
	"github.com/plus3/skyship/ecs"
)

// EntityBrowser lists live entities and dumps the components of the selected one.
type EntityBrowser struct {
	cache              *entityBrowserCache
	selectedEntityId   ecs.EntityId
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// PerformanceStats shows the frame time graph and archetype table.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

// SystemTimings shows per-system timings grouped by stage.
type SystemTimings struct {
	scheduler *ecs.Scheduler
}
