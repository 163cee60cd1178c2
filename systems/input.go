package systems

import (
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls the keyboard and pointer into the session's InputData.
// Must run BEFORE UpdateControls in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getInput(e)
	if input == nil {
		return
	}

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	pollPointer(input)
}

// pollPointer turns this tick's pointer state into events: a move when the
// cursor changed position, then press and release edges.
func pollPointer(input *components.InputData) {
	input.Pointer = input.Pointer[:0]

	x, y := ebiten.CursorPosition()

	// A new touch counts as a primary press at the touch point.
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
	}

	if !input.CursorKnown || x != input.CursorX || y != input.CursorY {
		input.Pointer = append(input.Pointer, components.PointerEvent{
			Kind: components.PointerMove,
			X:    x,
			Y:    y,
		})
		input.CursorX, input.CursorY, input.CursorKnown = x, y, true
	}

	if len(touchIDs) > 0 {
		input.Pointer = append(input.Pointer, components.PointerEvent{
			Kind:   components.PointerPress,
			X:      x,
			Y:      y,
			Button: ebiten.MouseButtonLeft,
		})
	}

	for _, btn := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			input.Pointer = append(input.Pointer, components.PointerEvent{
				Kind:   components.PointerPress,
				X:      x,
				Y:      y,
				Button: btn,
			})
		}
		if inpututil.IsMouseButtonJustReleased(btn) {
			input.Pointer = append(input.Pointer, components.PointerEvent{
				Kind:   components.PointerRelease,
				X:      x,
				Y:      y,
				Button: btn,
			})
		}
	}
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
