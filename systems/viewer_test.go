package systems

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/automoto/animtester/assets"
	"github.com/automoto/animtester/assets/animations"
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/automoto/animtester/systems/factory"
	"github.com/automoto/animtester/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func sheetPNG(t *testing.T, def cfg.AnimationDef) []byte {
	t.Helper()
	cols := def.Frames
	if def.Directional {
		cols *= int(cfg.DirectionCount)
	}
	size := cfg.C.TileSize
	img := image.NewRGBA(image.Rect(0, 0, cols*size, 2*size))

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// rosterFS holds every sheet of the roster minus the skipped file names.
func rosterFS(t *testing.T, roster []string, skip ...string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range roster {
		for _, id := range cfg.AllAnimations() {
			fsys[cfg.SheetFileName(name, id)] = &fstest.MapFile{Data: sheetPNG(t, id.Def())}
		}
	}
	for _, name := range skip {
		delete(fsys, name)
	}
	return fsys
}

func newTestViewer(t *testing.T, roster []string, fsys fstest.MapFS) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(e, roster, assets.NewSheetLoader(fsys), nil)
	factory.CreateButtons(e)
	LoadCurrentCharacter(e)
	return e
}

// step runs one tick of the update systems, minus device polling.
func step(e *ecs.ECS) {
	UpdateControls(e)
	UpdatePlayback(e)
	UpdateButtonStates(e)
	UpdateFade(e)
}

func press(e *ecs.ECS, id cfg.ActionID) {
	input := getInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
	input.Pointer = nil
}

func release(e *ecs.ECS) {
	input := getInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Pointer = nil
}

func click(e *ecs.ECS, at image.Point) {
	release(e)
	input := getInput(e)
	input.Pointer = []components.PointerEvent{
		{Kind: components.PointerMove, X: at.X, Y: at.Y},
		{Kind: components.PointerPress, X: at.X, Y: at.Y},
		{Kind: components.PointerRelease, X: at.X, Y: at.Y},
	}
}

func centre(at image.Point) image.Point {
	return at.Add(image.Pt(cfg.Button.Width/2, cfg.Button.Height/2))
}

// hold keeps this tick's keys down into the next tick.
func hold(e *ecs.ECS) {
	input := getInput(e)
	input.Previous = input.Current
	input.Pointer = nil
}

func countCharacters(e *ecs.ECS) int {
	n := 0
	tags.Character.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestMissingRunSheetIsTolerated(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster, cfg.SheetFileName("Adam", cfg.Run)))

	character := GetCharacter(e)
	if character.Sheet(cfg.Run) != nil {
		t.Fatal("run sheet should not be loaded")
	}
	if character.Sheet(cfg.IdleAnim) == nil {
		t.Fatal("idle_anim sheet should be loaded")
	}

	click(e, centre(cfg.Layout.Animations[cfg.Run]))
	step(e)

	playback := GetPlayback(e)
	if playback.Animation != cfg.Run {
		t.Fatalf("animation = %s, want run", playback.Animation)
	}

	release(e)
	for i := 0; i < 100; i++ {
		step(e)
		hat, body := CurrentSprites(e)
		if hat != nil || body != nil {
			t.Fatal("expected no sprites for a missing sheet")
		}
	}
	if playback.Frame != 0 {
		t.Fatalf("frame advanced to %d without a sheet", playback.Frame)
	}

	lines := HUDLines(e)
	if got := lines[len(lines)-1]; got != "Frame: -" {
		t.Fatalf("frame line = %q", got)
	}
}

func TestKeyboardSelectsAnimationAndDirection(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	playback := GetPlayback(e)

	press(e, cfg.ActionFaceLeft)
	step(e)
	if playback.Direction != cfg.Left {
		t.Fatalf("direction = %s, want left", playback.Direction)
	}

	press(e, cfg.ActionSelectPhone)
	step(e)
	if playback.Animation != cfg.Phone {
		t.Fatalf("animation = %s, want phone", playback.Animation)
	}

	// Holding a key does not repeat the action.
	playback.SetAnimation(cfg.Run)
	hold(e)
	step(e)
	if playback.Animation != cfg.Run {
		t.Fatalf("held key re-applied: %s", playback.Animation)
	}
}

func TestQuitAction(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster))

	step(e)
	if GetSession(e).Quit {
		t.Fatal("quit before escape")
	}
	press(e, cfg.ActionQuit)
	step(e)
	if !GetSession(e).Quit {
		t.Fatal("escape did not request quit")
	}
}

func TestSwitchCharacterKeepsPlayback(t *testing.T) {
	roster := []string{"Adam", "Bob", "Amelia"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	playback := GetPlayback(e)

	playback.SetAnimation(cfg.Run)
	playback.SetDirection(cfg.Up)
	playback.Slower()
	speed := playback.TicksPerFrame
	playback.Frame = 3

	click(e, centre(cfg.Layout.NextCharacter))
	step(e)

	if name := GetCharacter(e).Name; name != "Bob" {
		t.Fatalf("character = %s, want Bob", name)
	}
	if n := countCharacters(e); n != 1 {
		t.Fatalf("%d character entities, want 1", n)
	}
	if playback.Animation != cfg.Run || playback.Direction != cfg.Up || playback.TicksPerFrame != speed {
		t.Fatalf("playback not kept: %+v", *playback)
	}
	if playback.Frame != 0 {
		t.Fatalf("frame = %d, want 0", playback.Frame)
	}

	click(e, centre(cfg.Layout.PrevCharacter))
	step(e)
	click(e, centre(cfg.Layout.PrevCharacter))
	step(e)
	if name := GetCharacter(e).Name; name != "Amelia" {
		t.Fatalf("character = %s, want Amelia after wrapping", name)
	}
}

func TestSpeedButtons(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	playback := GetPlayback(e)
	start := playback.TicksPerFrame

	click(e, centre(cfg.Layout.Slower))
	step(e)
	if playback.TicksPerFrame != start+cfg.Viewer.SpeedStep {
		t.Fatalf("slower: %d", playback.TicksPerFrame)
	}
	click(e, centre(cfg.Layout.Faster))
	step(e)
	if playback.TicksPerFrame != start {
		t.Fatalf("faster: %d", playback.TicksPerFrame)
	}
	if got, want := SpeedText(e), "Speed: 8 frames/step"; got != want {
		t.Fatalf("speed text = %q, want %q", got, want)
	}
}

func TestClickOutsideButtonsDoesNothing(t *testing.T) {
	roster := []string{"Adam", "Bob"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	before := *GetPlayback(e)

	click(e, image.Pt(cfg.C.Width/2, 5))
	UpdateControls(e)

	if *GetPlayback(e) != before {
		t.Fatalf("playback changed: %+v", *GetPlayback(e))
	}
	if GetCharacter(e).Name != "Adam" {
		t.Fatal("character changed")
	}
}

func TestButtonStatesFollowPlayback(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	playback := GetPlayback(e)
	playback.SetAnimation(cfg.Phone)
	playback.SetDirection(cfg.Right)
	UpdateButtonStates(e)

	active := 0
	components.Button.Each(e.World, func(entry *donburi.Entry) {
		button := components.Button.Get(entry)
		if !button.Active {
			return
		}
		active++
		switch button.Action.Kind {
		case components.ButtonSelectAnimation:
			if button.Action.Animation != cfg.Phone {
				t.Errorf("%s button active", button.Label)
			}
		case components.ButtonSelectDirection:
			if button.Action.Direction != cfg.Right {
				t.Errorf("%s button active", button.Label)
			}
		default:
			t.Errorf("%s button active", button.Label)
		}
	})
	if active != 2 {
		t.Fatalf("%d active buttons, want 2", active)
	}
}

func TestButtonActive(t *testing.T) {
	playback := animations.NewPlayback(cfg.IdleAnim, cfg.Down, 8)
	tests := []struct {
		name   string
		action components.ButtonAction
		want   bool
	}{
		{"current animation", components.ButtonAction{Kind: components.ButtonSelectAnimation, Animation: cfg.IdleAnim}, true},
		{"other animation", components.ButtonAction{Kind: components.ButtonSelectAnimation, Animation: cfg.Run}, false},
		{"current direction", components.ButtonAction{Kind: components.ButtonSelectDirection, Direction: cfg.Down}, true},
		{"other direction", components.ButtonAction{Kind: components.ButtonSelectDirection, Direction: cfg.Up}, false},
		{"next character", components.ButtonAction{Kind: components.ButtonNextCharacter}, false},
		{"faster", components.ButtonAction{Kind: components.ButtonFaster}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ButtonActive(tt.action, playback); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaybackAdvancesWithSheet(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	playback := GetPlayback(e)

	for i := 0; i < playback.TicksPerFrame; i++ {
		step(e)
	}
	if playback.Frame != 1 {
		t.Fatalf("frame = %d, want 1", playback.Frame)
	}
	hat, body := CurrentSprites(e)
	if hat == nil || body == nil {
		t.Fatal("expected sprites")
	}
	want := []string{
		"Character: Adam",
		"Animation: idle_anim",
		"Direction: down",
		"Frame: 2/6",
	}
	lines := HUDLines(e)
	if len(lines) != len(want) {
		t.Fatalf("got %d HUD lines", len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("HUD line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFadeCompletes(t *testing.T) {
	roster := []string{"Adam"}
	e := newTestViewer(t, roster, rosterFS(t, roster))
	entry, _ := tags.Character.First(e.World)
	fade := components.Fade.Get(entry)

	ticks := int(cfg.Viewer.FadeInSeconds*float32(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateFade(e)
	}
	if !fade.Done || fade.Alpha != 1 {
		t.Fatalf("fade = %+v", *fade)
	}
}
