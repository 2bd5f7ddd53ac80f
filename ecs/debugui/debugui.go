// Package debugui renders Dear ImGui diagnostics windows from inside the ECS.
// Windows are entities carrying an ImguiItem; ImguiSystem defers their render
// functions so they run after the frame's commands are flushed.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/skyship/ecs"
)

// ImguiItem is a component that holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState mirrors whether Dear ImGui wants the mouse or keyboard this frame.
// Hosts check it before forwarding input to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem refreshes ImguiInputState and queues every ImguiItem render function.
// The host must call BeginFrame before the scheduler tick and EndFrame after it.
type ImguiSystem struct {
	Items      ecs.Query[struct{ *ImguiItem }]
	InputState ecs.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for item := range i.Items.Values() {
		if item.Render != nil {
			frame.Commands.Defer(item.Render)
		}
	}
}
