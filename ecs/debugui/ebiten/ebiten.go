// Package ebiten binds the Dear ImGui Ebiten backend to the ECS.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as a singleton so the host's Update, Draw and Layout can reach it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}
