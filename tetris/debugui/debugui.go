// Package debugui provides Dear ImGui inspector windows for a running tetris session.
// Hosts own the ImGui frame; the Overlay renders its windows inside it and reports whether ImGui
// wants the keyboard so the host can hold back game input.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiItem holds a Dear ImGui render function drawn once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is an ordered set of ImGui windows that can be shown or hidden as a group.
type Overlay struct {
	Visible bool
	Input   ImguiInputState

	items []ImguiItem
}

func NewOverlay(items ...ImguiItem) *Overlay {
	return &Overlay{Visible: true, items: items}
}

// Add appends an item drawn after the existing ones.
func (o *Overlay) Add(item ImguiItem) {
	o.items = append(o.items, item)
}

// Len returns the number of registered items.
func (o *Overlay) Len() int {
	return len(o.items)
}

// Render updates the input state and draws every item when visible. It must run between the
// backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	if !o.Visible {
		o.Input = ImguiInputState{}
		return
	}

	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
