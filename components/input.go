package components

import (
	cfg "github.com/automoto/animtester/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the pointer events seen this frame.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Pointer     []PointerEvent
	CursorX     int
	CursorY     int
	CursorKnown bool
}

var Input = donburi.NewComponentType[InputData]()
