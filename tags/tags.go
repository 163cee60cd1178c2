package tags

import "github.com/yohamta/donburi"

var (
	Session   = donburi.NewTag().SetName("Session")
	Character = donburi.NewTag().SetName("Character")
	Button    = donburi.NewTag().SetName("Button")
)
