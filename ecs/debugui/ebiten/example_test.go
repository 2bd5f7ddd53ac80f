package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/skyship/ecs"
	"github.com/plus3/skyship/ecs/debugui"
	debugui_ebiten "github.com/plus3/skyship/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and wraps each scheduler tick in an ImGui frame.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	g.imguiBackend.Get().BeginFrame()
	g.scheduler.Once(1.0 / 60.0)
	g.imguiBackend.Get().EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
	debugui.RegisterDebugUIComponents(registry)

	storage := ecs.NewStorage(registry)
	scheduler := ecs.NewScheduler(storage)

	backend := ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720))

	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.Begin("Debug Window")
			imgui.Text("Hello from ECS!")
			imgui.End()
		},
	})
	debugui.SpawnDebugUI(storage, scheduler)

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: backend,
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
