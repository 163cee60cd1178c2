package components

import (
	"github.com/automoto/animtester/assets"
	cfg "github.com/automoto/animtester/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CharacterData is the currently viewed character and its loaded sheets.
// Sheets never change after loading; an animation that failed to load has
// no entry.
type CharacterData struct {
	Name   string
	Sheets map[cfg.AnimationID]*assets.Sheet
}

// Sheet returns the loaded sheet for anim, or nil.
func (c *CharacterData) Sheet(anim cfg.AnimationID) *assets.Sheet {
	return c.Sheets[anim]
}

// Sprite returns one tile of the character, or nil when the animation has
// no loaded sheet.
func (c *CharacterData) Sprite(anim cfg.AnimationID, dir cfg.Direction, frame int, part assets.Part) *ebiten.Image {
	sheet := c.Sheet(anim)
	if sheet == nil {
		return nil
	}
	return sheet.Sprite(dir, frame, part)
}

// Release frees every sheet image.
func (c *CharacterData) Release() {
	for id, sheet := range c.Sheets {
		sheet.Deallocate()
		delete(c.Sheets, id)
	}
}

var Character = donburi.NewComponentType[CharacterData]()
