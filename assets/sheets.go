package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/automoto/animtester/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Part selects one of the two rows every sheet has.
type Part int

const (
	Hat Part = iota
	Body
)

func (p Part) String() string {
	switch p {
	case Hat:
		return "hat"
	case Body:
		return "body"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// Locate returns the source rectangle of one tile.
//
// Directional sheets hold one column block of def.Frames tiles per facing,
// in Direction order (right, up, left, down). Non-directional sheets are a
// single strip and ignore dir. Hats are on row 0, bodies on row 1.
//
// frame must be in [0, def.Frames) and dir must be valid for directional
// sheets; anything else is a caller bug and panics.
func Locate(def config.AnimationDef, dir config.Direction, frame int, part Part) image.Rectangle {
	if frame < 0 || frame >= def.Frames {
		panic(fmt.Sprintf("frame %d out of range for %s (%d frames)", frame, def.Key, def.Frames))
	}

	col := frame
	if def.Directional {
		if !dir.Valid() {
			panic(fmt.Sprintf("invalid direction %d for %s", int(dir), def.Key))
		}
		col = int(dir)*def.Frames + frame
	}

	var row int
	switch part {
	case Hat:
		row = 0
	case Body:
		row = 1
	default:
		panic(fmt.Sprintf("invalid sheet part %d", int(part)))
	}

	size := config.C.TileSize
	x, y := col*size, row*size
	return image.Rect(x, y, x+size, y+size)
}

// DisplayRect scales a source rectangle to screen pixels.
func DisplayRect(r image.Rectangle) image.Rectangle {
	s := config.C.Scale
	return image.Rect(r.Min.X*s, r.Min.Y*s, r.Max.X*s, r.Max.Y*s)
}

// Sheet is one loaded animation of one character.
type Sheet struct {
	Image  *ebiten.Image
	Def    config.AnimationDef
	frames map[image.Rectangle]*ebiten.Image
}

func NewSheet(img *ebiten.Image, def config.AnimationDef) *Sheet {
	return &Sheet{
		Image:  img,
		Def:    def,
		frames: make(map[image.Rectangle]*ebiten.Image),
	}
}

// Sprite returns the cached sub-image for a tile, or nil when the image is
// too small to hold it.
func (s *Sheet) Sprite(dir config.Direction, frame int, part Part) *ebiten.Image {
	r := Locate(s.Def, dir, frame, part)
	if img, ok := s.frames[r]; ok {
		return img
	}
	if !r.In(s.Image.Bounds()) {
		return nil
	}

	img := s.Image.SubImage(r).(*ebiten.Image)
	s.frames[r] = img
	return img
}

// Deallocate frees the sheet's GPU memory. The sheet must not be drawn
// afterwards.
func (s *Sheet) Deallocate() {
	s.frames = nil
	s.Image.Deallocate()
}

// SheetLoader reads character sheets from a directory tree.
type SheetLoader struct {
	fsys fs.FS
}

func NewSheetLoader(fsys fs.FS) *SheetLoader {
	return &SheetLoader{fsys: fsys}
}

// LoadSheet decodes one animation sheet of a character.
func (l *SheetLoader) LoadSheet(character string, id config.AnimationID) (*Sheet, error) {
	name := config.SheetFileName(character, id)
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return NewSheet(img, id.Def()), nil
}

// LoadCharacter loads every animation of a character. Each animation is
// independent: a sheet that fails to load is logged and left out of the
// result, and its error is joined into the returned error.
func (l *SheetLoader) LoadCharacter(character string) (map[config.AnimationID]*Sheet, error) {
	sheets := make(map[config.AnimationID]*Sheet, config.AnimationCount)
	var errs []error

	for _, id := range config.AllAnimations() {
		sheet, err := l.LoadSheet(character, id)
		if err != nil {
			log.Printf("Warning: Failed to load %s for %s: %v", id, character, err)
			errs = append(errs, err)
			continue
		}
		log.Printf("Loaded %s for %s", id, character)
		sheets[id] = sheet
	}

	return sheets, errors.Join(errs...)
}
