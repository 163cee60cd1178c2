package systems

import (
	"github.com/automoto/animtester/assets/animations"
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls applies this tick's keyboard actions and button clicks.
// Pointer events are handled in the order they arrived; world changes such
// as a character switch happen after all buttons have seen the event.
func UpdateControls(e *ecs.ECS) {
	entry, ok := sessionEntry(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		if GetAction(input, id).JustPressed {
			applyAction(e, id)
		}
	}

	var clicked []components.ButtonAction
	for _, ev := range input.Pointer {
		clicked = clicked[:0]
		components.Button.Each(e.World, func(b *donburi.Entry) {
			button := components.Button.Get(b)
			if button.Handle(ev) {
				clicked = append(clicked, button.Action)
			}
		})
		for _, action := range clicked {
			ApplyButtonAction(e, action)
		}
	}
}

func applyAction(e *ecs.ECS, id cfg.ActionID) {
	session := GetSession(e)
	playback := GetPlayback(e)

	if dir, ok := cfg.Input.Directions[id]; ok {
		playback.SetDirection(dir)
		return
	}
	if anim, ok := cfg.Input.Animations[id]; ok {
		playback.SetAnimation(anim)
		return
	}

	switch id {
	case cfg.ActionPrevCharacter:
		SwitchCharacter(e, -1)
	case cfg.ActionNextCharacter:
		SwitchCharacter(e, 1)
	case cfg.ActionSlower:
		playback.Slower()
	case cfg.ActionFaster:
		playback.Faster()
	case cfg.ActionQuit:
		session.Quit = true
	}
}

// ApplyButtonAction performs what a clicked button is bound to.
func ApplyButtonAction(e *ecs.ECS, action components.ButtonAction) {
	playback := GetPlayback(e)
	if playback == nil {
		return
	}

	switch action.Kind {
	case components.ButtonPrevCharacter:
		SwitchCharacter(e, -1)
	case components.ButtonNextCharacter:
		SwitchCharacter(e, 1)
	case components.ButtonSelectAnimation:
		playback.SetAnimation(action.Animation)
	case components.ButtonSelectDirection:
		playback.SetDirection(action.Direction)
	case components.ButtonSlower:
		playback.Slower()
	case components.ButtonFaster:
		playback.Faster()
	}
}

// ButtonActive reports whether a button matches the playback state and
// should be highlighted.
func ButtonActive(action components.ButtonAction, p *animations.Playback) bool {
	switch action.Kind {
	case components.ButtonSelectAnimation:
		return action.Animation == p.Animation
	case components.ButtonSelectDirection:
		return action.Direction == p.Direction
	}
	return false
}
