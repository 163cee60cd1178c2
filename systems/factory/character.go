package factory

import (
	"github.com/automoto/animtester/archetypes"
	"github.com/automoto/animtester/assets"
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCharacter loads every sheet of a character and spawns it. Sheets
// that fail to load are already logged by the loader and simply stay
// absent. The character fades in from transparent.
func CreateCharacter(ecs *ecs.ECS, name string, loader *assets.SheetLoader) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	var sheets map[cfg.AnimationID]*assets.Sheet
	if loader != nil {
		sheets, _ = loader.LoadCharacter(name)
	}
	if sheets == nil {
		sheets = map[cfg.AnimationID]*assets.Sheet{}
	}

	components.Character.SetValue(character, components.CharacterData{
		Name:   name,
		Sheets: sheets,
	})
	components.Fade.SetValue(character, components.FadeData{
		Tween: gween.New(0, 1, cfg.Viewer.FadeInSeconds, ease.OutQuad),
	})

	return character
}
