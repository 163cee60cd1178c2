package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData fades an entity in after it is spawned.
type FadeData struct {
	Tween *gween.Tween
	Alpha float32
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
