package debugui

import "github.com/plus3/skyship/ecs"

// RegisterDebugUIComponents registers the component and singleton types used by this package.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiItem](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}

// SpawnDebugUI spawns the stock diagnostics windows and registers ImguiSystem in the UI stage.
func SpawnDebugUI(storage *ecs.Storage, scheduler *ecs.Scheduler) {
	ecs.NewSingleton[ImguiInputState](storage)

	browser := NewEntityBrowser(100)
	perf := NewPerformanceStats(120)
	timings := NewSystemTimings(scheduler)

	storage.Spawn(ImguiItem{Render: func() { browser.Render(storage) }})
	storage.Spawn(ImguiItem{Render: func() { perf.Render(storage) }})
	storage.Spawn(ImguiItem{Render: timings.Render})

	scheduler.Register(ecs.StageUI, &ImguiSystem{})
}
