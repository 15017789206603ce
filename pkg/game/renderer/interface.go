package renderer

import (
	"deepdelve/pkg/engine/input"
	"deepdelve/pkg/game/state"
)

// Renderer defines the interface for rendering backends.
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete frame: the map, the status bar and
	// the message pane
	RenderFrame(g *state.Game)

	// GetInput gets a user intent (blocking for TUI, event-based for GUI)
	GetInput() input.Intent

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets a user intent from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}
}

// ShowMessage displays a message via the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
