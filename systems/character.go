package systems

import (
	"log"

	"github.com/automoto/animtester/components"
	"github.com/automoto/animtester/systems/factory"
	"github.com/automoto/animtester/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SwitchCharacter moves delta steps through the roster and loads the
// character found there. Animation, facing and speed carry over; the frame
// loop restarts.
func SwitchCharacter(e *ecs.ECS, delta int) {
	session := GetSession(e)
	if session == nil || len(session.Roster) == 0 {
		return
	}
	session.Step(delta)
	LoadCurrentCharacter(e)
	log.Printf("Switched to %s", session.CurrentName())
}

// LoadCurrentCharacter replaces the viewed character with the session's
// current roster entry and restarts the frame loop.
func LoadCurrentCharacter(e *ecs.ECS) {
	replaceCharacter(e)
	if playback := GetPlayback(e); playback != nil {
		playback.ResetFrame()
	}
}

// ReloadCurrentCharacter loads the current character's sheets again
// without touching the playback state.
func ReloadCurrentCharacter(e *ecs.ECS) {
	replaceCharacter(e)
}

func replaceCharacter(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}
	removeCharacters(e)
	factory.CreateCharacter(e, session.CurrentName(), session.Loader)
}

func removeCharacters(e *ecs.ECS) {
	var old []*donburi.Entry
	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		old = append(old, entry)
	})
	for _, entry := range old {
		components.Character.Get(entry).Release()
		e.World.Remove(entry.Entity())
	}
}
