package components

import (
	"github.com/automoto/animtester/assets"
	"github.com/automoto/animtester/assets/animations"
	"github.com/yohamta/donburi"
)

// SessionData is the viewer state that outlives any single character.
type SessionData struct {
	Roster  []string
	Index   int
	Loader  *assets.SheetLoader
	Watcher *assets.Watcher // nil when hot reload is unavailable
	Quit    bool
}

// CurrentName returns the roster entry being viewed.
func (s *SessionData) CurrentName() string {
	if len(s.Roster) == 0 {
		return ""
	}
	return s.Roster[s.Index]
}

// Step moves the roster index by delta with wrap-around.
func (s *SessionData) Step(delta int) {
	n := len(s.Roster)
	if n == 0 {
		return
	}
	s.Index = ((s.Index+delta)%n + n) % n
}

var Session = donburi.NewComponentType[SessionData]()

// Playback lives on the session entity so it survives character switches.
var Playback = donburi.NewComponentType[animations.Playback]()
