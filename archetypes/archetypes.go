package archetypes

import (
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/automoto/animtester/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
		components.Playback,
		components.Input,
	)
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Fade,
	)
	Button = newArchetype(
		tags.Button,
		components.Button,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
