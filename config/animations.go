package config

import "fmt"

// AnimationID identifies one of the fixed per-character animations
type AnimationID int

const (
	Idle AnimationID = iota
	IdleAnim
	Phone
	Run
	AnimationCount // Must be last - used for array sizing
)

// AnimationDef is the fixed sheet metadata for one animation.
// Frame counts and the direction axis are properties of the asset format,
// they are never read back from the image.
type AnimationDef struct {
	Key         string // file name key, e.g. "idle_anim"
	Label       string // button text
	Frames      int    // frames per direction column
	Directional bool   // false = a single strip of frames
}

// Animations is indexed by AnimationID.
var Animations = [AnimationCount]AnimationDef{
	Idle:     {Key: "idle", Label: "Idle", Frames: 2, Directional: true},
	IdleAnim: {Key: "idle_anim", Label: "Idle Anim", Frames: 6, Directional: true},
	Phone:    {Key: "phone", Label: "Phone", Frames: 8, Directional: false},
	Run:      {Key: "run", Label: "Run", Frames: 6, Directional: true},
}

// AllAnimations lists the animations in table order.
func AllAnimations() []AnimationID {
	ids := make([]AnimationID, 0, AnimationCount)
	for id := AnimationID(0); id < AnimationCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

func (a AnimationID) Valid() bool {
	return a >= 0 && a < AnimationCount
}

// Def returns the metadata for a. It panics for invalid ids.
func (a AnimationID) Def() AnimationDef {
	if !a.Valid() {
		panic(fmt.Sprintf("unknown animation id %d", int(a)))
	}
	return Animations[a]
}

func (a AnimationID) String() string {
	if !a.Valid() {
		return fmt.Sprintf("AnimationID(%d)", int(a))
	}
	return Animations[a].Key
}

// SheetFileName returns the file holding one animation of one character,
// e.g. "Adam_idle_anim_16x16.png".
func SheetFileName(character string, a AnimationID) string {
	return fmt.Sprintf("%s_%s_%dx%d.png", character, a.Def().Key, C.TileSize, C.TileSize)
}

// Direction is a facing. The order is the column order of directional
// sheets and must not change.
type Direction int

const (
	Right Direction = iota
	Up
	Left
	Down
	DirectionCount // Must be last - used for array sizing
)

var directionNames = [DirectionCount]string{
	Right: "right",
	Up:    "up",
	Left:  "left",
	Down:  "down",
}

func (d Direction) Valid() bool {
	return d >= 0 && d < DirectionCount
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Label is the capitalized name used on buttons.
func (d Direction) Label() string {
	s := d.String()
	if !d.Valid() {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
