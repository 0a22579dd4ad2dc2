// Package debugui renders Dear ImGui inspector windows for a running game.
// Windows are queued by ImguiSystem and drawn after the frame's systems have
// updated the session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/searchtris/frame"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
// Hosts should not forward keys to the game while WantCaptureKeyboard is set.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input capture state and defers every item's render
// function to the end of the frame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

func (i *ImguiSystem) Execute(f *frame.UpdateFrame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		f.Commands.Defer(item.Render)
	}
}
