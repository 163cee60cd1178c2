package systems

import (
	"github.com/automoto/animtester/components"
	cfg "github.com/automoto/animtester/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade steps every running fade tween by one tick.
func UpdateFade(e *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)
	components.Fade.Each(e.World, func(entry *donburi.Entry) {
		fade := components.Fade.Get(entry)
		if fade.Done || fade.Tween == nil {
			return
		}
		fade.Alpha, fade.Done = fade.Tween.Update(dt)
		if fade.Done {
			fade.Alpha = 1
		}
	})
}
