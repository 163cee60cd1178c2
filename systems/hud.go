package systems

import (
	"fmt"

	cfg "github.com/automoto/animtester/config"
	"github.com/automoto/animtester/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const hudTitle = "Animation Tester"

// HUDLines returns the status lines shown under the title.
func HUDLines(e *ecs.ECS) []string {
	session := GetSession(e)
	playback := GetPlayback(e)
	if session == nil || playback == nil {
		return nil
	}

	frame := "-"
	if character := GetCharacter(e); character != nil && character.Sheet(playback.Animation) != nil {
		frame = fmt.Sprintf("%d/%d", playback.Frame+1, playback.Animation.Def().Frames)
	}

	return []string{
		"Character: " + session.CurrentName(),
		"Animation: " + playback.Animation.String(),
		"Direction: " + playback.Direction.String(),
		"Frame: " + frame,
	}
}

// SpeedText is the label above the speed buttons.
func SpeedText(e *ecs.ECS) string {
	playback := GetPlayback(e)
	if playback == nil {
		return ""
	}
	return fmt.Sprintf("Speed: %d frames/step", playback.TicksPerFrame)
}

// DrawHUD renders the title, status lines and speed label.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	text.Draw(screen, hudTitle, fonts.Title.Get(), cfg.UI.HUDX, cfg.UI.TitleY, cfg.UI.TextColor)

	face := fonts.Regular.Get()
	for i, line := range HUDLines(e) {
		y := cfg.UI.HUDStartY + i*cfg.UI.HUDLineHeight
		text.Draw(screen, line, face, cfg.UI.HUDX, y, cfg.UI.TextColor)
	}

	if s := SpeedText(e); s != "" {
		text.Draw(screen, s, fonts.Small.Get(), cfg.Layout.SpeedLabel.X, cfg.Layout.SpeedLabel.Y, cfg.UI.TextColor)
	}
}
