package systems

import (
	"github.com/automoto/animtester/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayback advances the frame loop by one tick.
func UpdatePlayback(e *ecs.ECS) {
	playback := GetPlayback(e)
	if playback == nil {
		return
	}

	frames := 0
	if character := GetCharacter(e); character != nil {
		if sheet := character.Sheet(playback.Animation); sheet != nil {
			frames = sheet.Def.Frames
		}
	}
	playback.Tick(frames)
}

// CurrentSprites returns the hat and body tiles for the current playback
// state. Both are nil when the animation has no loaded sheet.
func CurrentSprites(e *ecs.ECS) (hat, body *ebiten.Image) {
	playback := GetPlayback(e)
	character := GetCharacter(e)
	if playback == nil || character == nil {
		return nil, nil
	}
	hat = character.Sprite(playback.Animation, playback.Direction, playback.Frame, assets.Hat)
	body = character.Sprite(playback.Animation, playback.Direction, playback.Frame, assets.Body)
	return hat, body
}
