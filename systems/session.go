package systems

import (
	"github.com/automoto/animtester/assets/animations"
	"github.com/automoto/animtester/components"
	"github.com/automoto/animtester/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func sessionEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Session.First(e.World)
}

// GetSession returns the viewer session, or nil before it is created.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// GetPlayback returns the session's playback state, or nil.
func GetPlayback(e *ecs.ECS) *animations.Playback {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Playback.Get(entry)
}

func getInput(e *ecs.ECS) *components.InputData {
	entry, ok := sessionEntry(e)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

// GetCharacter returns the character being viewed, or nil.
func GetCharacter(e *ecs.ECS) *components.CharacterData {
	entry, ok := tags.Character.First(e.World)
	if !ok {
		return nil
	}
	return components.Character.Get(entry)
}
