package config

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer used by every viewer renderer.
const Default ecs.LayerID = 0

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int

	// Sheet tiling and display scale are independent of each other.
	TileSize int
	Scale    int
}

// ViewerConfig contains the character roster and playback defaults
type ViewerConfig struct {
	AssetRoot  string
	Characters []string

	StartAnimation AnimationID
	StartDirection Direction

	// Playback speed in ticks per frame; lower is faster
	DefaultTicksPerFrame int
	MinTicksPerFrame     int
	MaxTicksPerFrame     int
	SpeedStep            int

	FadeInSeconds  float32 // alpha fade for a freshly loaded character
	ReloadDebounce int     // milliseconds between reloads of the same file
}

// UIConfig contains colors and text positions for the viewer screen
type UIConfig struct {
	BackgroundColor  color.RGBA
	PanelColor       color.RGBA
	TextColor        color.RGBA
	SubtleTextColor  color.RGBA
	PanelWidth       float32
	HUDX             int
	TitleY           int
	HUDStartY        int
	HUDLineHeight    int
	HelpPaddingLeft  int
	HelpPaddingBelow int
	HelpLineSpacing  int
}

// ButtonConfig contains the look of on-screen buttons
type ButtonConfig struct {
	Width       int
	Height      int
	BaseColor   color.RGBA
	HoverColor  color.RGBA
	ActiveColor color.RGBA
	BorderColor color.RGBA
	BorderWidth float32
}

// LayoutConfig places every button by its top-left corner
type LayoutConfig struct {
	PrevCharacter image.Point
	NextCharacter image.Point
	Animations    [AnimationCount]image.Point
	Directions    [DirectionCount]image.Point
	Slower        image.Point
	Faster        image.Point
	SpeedLabel    image.Point
}

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Gray      = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	LightGray = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	Blue      = color.RGBA{R: 70, G: 130, B: 220, A: 255}
	LightBlue = color.RGBA{R: 100, G: 160, B: 255, A: 255}
	Green     = color.RGBA{R: 80, G: 200, B: 120, A: 255}
)

// Global configuration instances
var C *Config
var Viewer ViewerConfig
var UI UIConfig
var Button ButtonConfig
var Layout LayoutConfig

func init() {
	C = &Config{
		Width:    1200,
		Height:   800,
		Title:    "Character Animation Tester",
		TPS:      60,
		TileSize: 16,
		Scale:    4,
	}

	Viewer = ViewerConfig{
		AssetRoot:  "./assets/Characters_free/",
		Characters: []string{"Adam", "Alex", "Amelia", "Bob"},

		StartAnimation: IdleAnim,
		StartDirection: Down,

		DefaultTicksPerFrame: 8,
		MinTicksPerFrame:     1,
		MaxTicksPerFrame:     30,
		SpeedStep:            2,

		FadeInSeconds:  0.25,
		ReloadDebounce: 100,
	}

	UI = UIConfig{
		BackgroundColor:  DarkGray,
		PanelColor:       Gray,
		TextColor:        White,
		SubtleTextColor:  LightGray,
		PanelWidth:       250,
		HUDX:             270,
		TitleY:           40,
		HUDStartY:        80,
		HUDLineHeight:    26,
		HelpPaddingLeft:  20,
		HelpPaddingBelow: 20,
		HelpLineSpacing:  6,
	}

	Button = ButtonConfig{
		Width:       100,
		Height:      40,
		BaseColor:   Blue,
		HoverColor:  LightBlue,
		ActiveColor: Green,
		BorderColor: White,
		BorderWidth: 2,
	}

	// Right-hand controls hang off the bottom-right corner of the canvas.
	right := C.Width - 230
	speed := C.Width - 120
	Layout = LayoutConfig{
		PrevCharacter: image.Pt(20, 20),
		NextCharacter: image.Pt(130, 20),
		Animations: [AnimationCount]image.Point{
			Idle:     image.Pt(20, 80),
			IdleAnim: image.Pt(20, 190),
			Phone:    image.Pt(20, 300),
			Run:      image.Pt(20, 410),
		},
		Directions: [DirectionCount]image.Point{
			Right: image.Pt(right, C.Height-150),
			Up:    image.Pt(right, C.Height-200),
			Left:  image.Pt(right, C.Height-100),
			Down:  image.Pt(right, C.Height-50),
		},
		Slower:     image.Pt(speed, C.Height-150),
		Faster:     image.Pt(speed, C.Height-100),
		SpeedLabel: image.Pt(speed, C.Height-165),
	}
}
