package scenes

import (
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/animtester/assets"
	cfg "github.com/automoto/animtester/config"
	"github.com/automoto/animtester/systems"
	"github.com/automoto/animtester/systems/factory"
	"github.com/automoto/animtester/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene is the animation tester screen.
type ViewerScene struct {
	ecs  *ecs.ECS
	once sync.Once

	assets   fs.FS
	watchDir string // empty disables hot reload
	roster   []string
	help     *ui.HelpUI
}

// NewViewerScene creates the viewer. Sheets are read from fsys; when
// watchDir is set, changes to sheets in that directory reload the character
// on screen.
func NewViewerScene(fsys fs.FS, watchDir string, roster []string) *ViewerScene {
	return &ViewerScene{
		assets:   fsys,
		watchDir: watchDir,
		roster:   roster,
	}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

// QuitRequested reports whether the user asked to close the viewer.
func (vs *ViewerScene) QuitRequested() bool {
	if vs.ecs == nil {
		return false
	}
	session := systems.GetSession(vs.ecs)
	return session != nil && session.Quit
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	if vs.ecs == nil {
		screen.Fill(cfg.UI.BackgroundColor)
		return
	}
	vs.ecs.Draw(screen)
}

// Close stops the asset watcher and frees the loaded sheets.
func (vs *ViewerScene) Close() {
	if vs.ecs == nil {
		return
	}
	if session := systems.GetSession(vs.ecs); session != nil && session.Watcher != nil {
		if err := session.Watcher.Close(); err != nil {
			log.Printf("Warning: closing asset watcher: %v", err)
		}
		session.Watcher = nil
	}
	if character := systems.GetCharacter(vs.ecs); character != nil {
		character.Release()
	}
}

func (vs *ViewerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	help, err := ui.NewHelpUI()
	if err != nil {
		log.Printf("Warning: help panel unavailable: %v", err)
	}
	vs.help = help

	// Input must be polled before anything reads it
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateReload)
	e.AddSystem(systems.UpdateControls)
	e.AddSystem(systems.UpdatePlayback)
	e.AddSystem(systems.UpdateButtonStates)
	e.AddSystem(systems.UpdateFade)
	if help != nil {
		e.AddSystem(func(*ecs.ECS) { help.Update() })
	}

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawCharacter)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	if help != nil {
		e.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) { help.Draw(screen) })
	}
	e.AddRenderer(cfg.Default, systems.DrawButtons)

	vs.ecs = e

	var watcher *assets.Watcher
	if vs.watchDir != "" {
		watcher, err = assets.NewWatcher(vs.watchDir)
		if err != nil {
			log.Printf("Warning: hot reload disabled: %v", err)
		}
	}

	factory.CreateSession(vs.ecs, vs.roster, assets.NewSheetLoader(vs.assets), watcher)
	factory.CreateButtons(vs.ecs)
	systems.LoadCurrentCharacter(vs.ecs)
}
