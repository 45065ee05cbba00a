package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	WindowScale int
	TPS         int
	Title       string
}

// FighterConfig contains fighter defaults shared by every character
type FighterConfig struct {
	// Sprite defaults used by built-in characters
	FrameSize int
	Scale     float64

	// Collision body, anchored at the fighter's feet
	CollisionWidth  int
	CollisionHeight int

	InitialState StateID
}

// ArenaConfig contains arena loading and drawing configuration
type ArenaConfig struct {
	Level           string // TMX file inside assets/levels
	CharactersFile  string // YAML file inside assets/data
	CellSize        int    // resolv space cell size
	BackgroundColor color.RGBA
	FloorColor      color.RGBA
	WallColor       color.RGBA
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	// Follow the selected fighter by its displacement
	// and pull back towards it when it drifts further than MaxDrift.
	MaxDrift        float64
	FollowSmoothing float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	CursorTravel      float32 // pixels the cursor bobs
	CursorPeriod      float32 // seconds per bob
}

// HUDConfig contains in-fight overlay configuration
type HUDConfig struct {
	TextColor  color.RGBA
	DebugColor color.RGBA
	Margin     int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu         bool // Skip menu and go directly to the arena
	TraceTransitions bool // Log every fighter state transition
	Overlay          bool // Start with the debug overlay visible
}

// Default is the only render layer.
const Default ecs.LayerID = iota

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Arena ArenaConfig
var Camera CameraConfig
var Menu MenuConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:       640,
		Height:      360,
		WindowScale: 2,
		TPS:         60,
		Title:       "Maurice 2D",
	}

	Fighter = FighterConfig{
		FrameSize:       100,
		Scale:           0.75,
		CollisionWidth:  30,
		CollisionHeight: 70,
		InitialState:    Idle,
	}

	Arena = ArenaConfig{
		Level:           "levels/arena.tmx",
		CharactersFile:  "data/characters.yaml",
		CellSize:        16,
		BackgroundColor: color.RGBA{R: 32, G: 40, B: 64, A: 255},
		FloorColor:      color.RGBA{R: 70, G: 52, B: 40, A: 255},
		WallColor:       color.RGBA{R: 48, G: 48, B: 56, A: 255},
	}

	Camera = CameraConfig{
		MaxDrift:        160,
		FollowSmoothing: 0.1,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 16, G: 16, B: 24, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "MAURICE FIGHT",
		TitleY:            90,
		MenuStartY:        150,
		MenuItemHeight:    24,
		MenuItemGap:       12,
		CursorTravel:      6,
		CursorPeriod:      0.4,
	}

	HUD = HUDConfig{
		TextColor:  White,
		DebugColor: Yellow,
		Margin:     8,
	}
}
