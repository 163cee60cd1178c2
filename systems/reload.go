package systems

import (
	"log"

	"github.com/automoto/animtester/assets"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReload drains the asset watcher and reloads the viewed character
// when one of its sheets changed. It never blocks the game loop.
func UpdateReload(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil || session.Watcher == nil {
		return
	}

	reload := false
drain:
	for {
		select {
		case name := <-session.Watcher.Events:
			character, id, ok := assets.SheetOwner(name)
			if ok && character == session.CurrentName() {
				log.Printf("Sheet %s changed, reloading %s for %s", name, id, character)
				reload = true
			}
		case err := <-session.Watcher.Errors:
			log.Printf("Warning: asset watcher: %v", err)
		default:
			break drain
		}
	}

	if reload {
		ReloadCurrentCharacter(e)
	}
}
