package factory

import (
	"github.com/automoto/animtester/archetypes"
	"github.com/automoto/animtester/assets"
	"github.com/automoto/animtester/assets/animations"
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the viewer session with the configured starting
// animation, facing and speed. watcher may be nil.
func CreateSession(ecs *ecs.ECS, roster []string, loader *assets.SheetLoader, watcher *assets.Watcher) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	components.Session.SetValue(session, components.SessionData{
		Roster:  roster,
		Loader:  loader,
		Watcher: watcher,
	})
	components.Playback.Set(session, animations.NewPlayback(
		cfg.Viewer.StartAnimation,
		cfg.Viewer.StartDirection,
		cfg.Viewer.DefaultTicksPerFrame,
	))
	components.Input.SetValue(session, components.InputData{})

	return session
}
