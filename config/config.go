package config

import (
	"image/color"

	"github.com/automoto/movingsquare/shared/motion"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration float64
	JumpStrength float64
	JumpTime     int // ticks of gravity counteraction after a jump

	// Physics
	Mass           float64
	Deceleration   float64
	GroundFriction float64
	SpeedThreshold float64

	// Dimensions
	Size float64

	Color color.RGBA
}

// Tuning returns the movement constants used by the integrator.
func (p PlayerConfig) Tuning() motion.Tuning {
	return motion.Tuning{
		Mass:           p.Mass,
		Acceleration:   p.Acceleration,
		JumpStrength:   p.JumpStrength,
		JumpTime:       p.JumpTime,
		Deceleration:   p.Deceleration,
		GroundFriction: p.GroundFriction,
		SpeedThreshold: p.SpeedThreshold,
	}
}

// LevelsConfig controls where runs are read from and how the collision
// space is laid out.
type LevelsConfig struct {
	Root       string // directory holding one folder per run
	DefaultRun string
	// Dir, when set, reads runs from disk instead of the embedded levels.
	Dir string

	SpaceCellSize int
	// ProbeMargin inflates the player's broadphase box so touching
	// obstacles are still returned.
	ProbeMargin float64
}

// ObjectsConfig contains colors and animation values for level objects
type ObjectsConfig struct {
	ObstacleColor   color.RGBA
	CoinColor       color.RGBA
	DoorLockedColor color.RGBA
	DoorOpenColor   color.RGBA
	BackgroundColor color.RGBA

	CoinBobHeight  float32
	CoinBobSeconds float32
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin        float64
	TextColor     color.RGBA
	PulseColor    color.RGBA
	PulseScale    float32
	PulseDuration float32 // seconds
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
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
	MenuOptions       []string
}

// SummaryConfig contains the end-of-run score screen configuration
type SummaryConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColor         color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	LinesStartY       float64
	LineHeight        float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to game
	ShowColliders bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Levels LevelsConfig
var Objects ObjectsConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var Summary SummaryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	// Legacy 640x480 levels at scale 2
	C = &Config{
		Width:  1280,
		Height: 960,
		TPS:    60,
	}

	Player = PlayerConfig{
		Acceleration: 1.0,
		JumpStrength: 7.0,
		JumpTime:     20,

		Mass:           1.0,
		Deceleration:   0.8,
		GroundFriction: 0.8,
		SpeedThreshold: 0.5,

		Size:  50,
		Color: LightBlue,
	}

	Levels = LevelsConfig{
		Root:          "levels",
		DefaultRun:    "og4",
		SpaceCellSize: 32,
		ProbeMargin:   2,
	}

	Objects = ObjectsConfig{
		ObstacleColor:   White,
		CoinColor:       Yellow,
		DoorLockedColor: Grey,
		DoorOpenColor:   Orange,
		BackgroundColor: color.RGBA{R: 15, G: 15, B: 25, A: 255},

		CoinBobHeight:  6,
		CoinBobSeconds: 0.8,
	}

	HUD = HUDConfig{
		Margin:        16,
		TextColor:     White,
		PulseColor:    BrightGreen,
		PulseScale:    1,
		PulseDuration: 0.4,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "MOVING SQUARE",
		TitleY:            200,
		MenuStartY:        320,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Play", "Levels", "Exit"},
	}

	Summary = SummaryConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        BrightGreen,
		TextColor:         White,
		TextColorSelected: BrightOrange,
		Title:             "Run Complete!",
		TitleY:            240,
		LinesStartY:       320,
		LineHeight:        36,
		MenuStartY:        520,
		MenuItemHeight:    42,
		MenuOptions:       []string{"Replay", "Main Menu"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:      false,
		ShowColliders: false,
	}
}
