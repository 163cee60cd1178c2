package factory

import (
	"image"

	"github.com/automoto/animtester/archetypes"
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateButtons spawns the on-screen controls at the configured layout.
func CreateButtons(ecs *ecs.ECS) []*donburi.Entry {
	var buttons []*donburi.Entry
	add := func(at image.Point, label string, action components.ButtonAction) {
		buttons = append(buttons, CreateButton(ecs, at, label, action))
	}

	add(cfg.Layout.PrevCharacter, "< Prev", components.ButtonAction{Kind: components.ButtonPrevCharacter})
	add(cfg.Layout.NextCharacter, "Next >", components.ButtonAction{Kind: components.ButtonNextCharacter})

	for _, id := range cfg.AllAnimations() {
		add(cfg.Layout.Animations[id], id.Def().Label, components.ButtonAction{
			Kind:      components.ButtonSelectAnimation,
			Animation: id,
		})
	}
	for dir := cfg.Right; dir < cfg.DirectionCount; dir++ {
		add(cfg.Layout.Directions[dir], dir.Label(), components.ButtonAction{
			Kind:      components.ButtonSelectDirection,
			Direction: dir,
		})
	}

	add(cfg.Layout.Slower, "Slower", components.ButtonAction{Kind: components.ButtonSlower})
	add(cfg.Layout.Faster, "Faster", components.ButtonAction{Kind: components.ButtonFaster})

	return buttons
}

// CreateButton spawns a single button of the configured size.
func CreateButton(ecs *ecs.ECS, at image.Point, label string, action components.ButtonAction) *donburi.Entry {
	button := archetypes.Button.Spawn(ecs)
	components.Button.SetValue(button, components.ButtonData{
		Bounds:    image.Rect(at.X, at.Y, at.X+cfg.Button.Width, at.Y+cfg.Button.Height),
		Label:     label,
		BaseColor: cfg.Button.BaseColor,
		Action:    action,
	})
	return button
}
