package components

import (
	"image"
	"image/color"

	cfg "github.com/automoto/animtester/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// PointerKind is the kind of a pointer event
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerPress
	PointerRelease
)

// PointerEvent is one pointer change seen during a tick.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	Button ebiten.MouseButton
}

// ButtonActionKind says what a button does when clicked
type ButtonActionKind int

const (
	ButtonPrevCharacter ButtonActionKind = iota
	ButtonNextCharacter
	ButtonSelectAnimation
	ButtonSelectDirection
	ButtonSlower
	ButtonFaster
)

// ButtonAction is the action bound to a button. Animation and Direction
// are only read by the matching kinds.
type ButtonAction struct {
	Kind      ButtonActionKind
	Animation cfg.AnimationID
	Direction cfg.Direction
}

// ButtonData is an on-screen button.
// Active is a display flag recomputed from the playback state every tick;
// the button never sets it itself.
type ButtonData struct {
	Bounds    image.Rectangle
	Label     string
	BaseColor color.RGBA
	Hover     bool
	Active    bool
	Action    ButtonAction
}

// Handle updates hover state and reports whether ev clicks the button.
// Only a primary-button press inside the bounds is a click.
func (b *ButtonData) Handle(ev PointerEvent) bool {
	p := image.Pt(ev.X, ev.Y)
	switch ev.Kind {
	case PointerMove:
		b.Hover = p.In(b.Bounds)
	case PointerPress:
		return ev.Button == ebiten.MouseButtonLeft && p.In(b.Bounds)
	}
	return false
}

// FillColor is the color the button is drawn with.
func (b *ButtonData) FillColor() color.RGBA {
	switch {
	case b.Active:
		return cfg.Button.ActiveColor
	case b.Hover:
		return cfg.Button.HoverColor
	default:
		return b.BaseColor
	}
}

var Button = donburi.NewComponentType[ButtonData]()
