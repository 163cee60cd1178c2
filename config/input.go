package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFaceRight
	ActionFaceUp
	ActionFaceLeft
	ActionFaceDown
	ActionSelectIdle
	ActionSelectIdleAnim
	ActionSelectPhone
	ActionSelectRun
	ActionPrevCharacter
	ActionNextCharacter
	ActionSlower
	ActionFaster
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Actions that set a facing or an animation directly
	Directions map[ActionID]Direction
	Animations map[ActionID]AnimationID
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFaceRight:      {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionFaceUp:         {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionFaceLeft:       {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionFaceDown:       {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionSelectIdle:     {Keys: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}},
			ActionSelectIdleAnim: {Keys: []ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}},
			ActionSelectPhone:    {Keys: []ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}},
			ActionSelectRun:      {Keys: []ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}},
			ActionPrevCharacter:  {Keys: []ebiten.Key{ebiten.KeyPageUp}},
			ActionNextCharacter:  {Keys: []ebiten.Key{ebiten.KeyPageDown}},
			ActionSlower:         {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
			ActionFaster:         {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
			ActionQuit:           {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
		Directions: map[ActionID]Direction{
			ActionFaceRight: Right,
			ActionFaceUp:    Up,
			ActionFaceLeft:  Left,
			ActionFaceDown:  Down,
		},
		Animations: map[ActionID]AnimationID{
			ActionSelectIdle:     Idle,
			ActionSelectIdleAnim: IdleAnim,
			ActionSelectPhone:    Phone,
			ActionSelectRun:      Run,
		},
	}
}
