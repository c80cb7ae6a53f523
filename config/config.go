package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the game scenes.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MovementSpeed float64 `yaml:"movement_speed"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	FallThreshold float64 `yaml:"fall_threshold"`

	// Collision box, in world pixels
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig contains the platformer stepper values
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`

	// Distance probed below the player's feet by CanJump
	GroundProbe float64 `yaml:"ground_probe"`

	// Spatial hash cell size
	CellSize int `yaml:"cell_size"`
}

// ProjectileConfig contains laser configuration values
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MeteorConfig controls the random meteor field spawned per level
type MeteorConfig struct {
	Count  int     `yaml:"count"`
	MinY   float64 `yaml:"min_y"`
	Size   float64 `yaml:"size"`
	Points int     `yaml:"points"`
}

// CoinConfig controls the generated coin row
type CoinConfig struct {
	StartX float64 `yaml:"start_x"`
	EndX   float64 `yaml:"end_x"`
	StepX  float64 `yaml:"step_x"`
	Y      float64 `yaml:"y"`
	Size   float64 `yaml:"size"`
	Points int     `yaml:"points"`

	// Bobbing tween
	BobHeight   float32 `yaml:"bob_height"`
	BobDuration float32 `yaml:"bob_duration"`
}

// LevelConfig describes how level assets are found and scaled
type LevelConfig struct {
	PathPattern     string
	FirstLevel      int
	SpritePixelSize float64
	TileScaling     float64

	// Layer names inside each tile map
	PlatformsLayer  string
	CoinsLayer      string
	ForegroundLayer string
	BackgroundLayer string
	HazardLayer     string
}

// GridPixelSize is the on-screen size of one map tile.
func (l LevelConfig) GridPixelSize() float64 {
	return l.SpritePixelSize * l.TileScaling
}

// ScreenConfig holds the colors and text of the non-game screens
type ScreenConfig struct {
	InstructionsBackground color.RGBA
	GameOverBackground     color.RGBA
	GameBackground         color.RGBA
	InstructionLines       []string
	GameOverTitle          string
	GameOverHint           string
}

// MessageConfig contains banner popup configuration
type MessageConfig struct {
	DisplayDuration int        // Frames to display a banner
	BoxPadding      float64    // Padding inside message box
	BoxColor        color.RGBA // Semi-transparent background color
	TextColor       color.RGBA // Text color
	TopMargin       float64    // Distance from top of screen
	LevelFormat     string     // Banner shown when a level starts
}

// PauseConfig contains the pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipInstructions bool
	ShowHitboxes     bool
	StartLevel       int
	Seed             int64
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Projectile ProjectileConfig
var Meteor MeteorConfig
var Coin CoinConfig
var Level LevelConfig
var Screen ScreenConfig
var Message MessageConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	Cornflower = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	Brown      = color.RGBA{R: 120, G: 72, B: 40, A: 255}
	Gray       = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Lime       = color.RGBA{R: 60, G: 220, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 650,
		Title:  "Kalli's World",
	}

	Player = PlayerConfig{
		MovementSpeed: 10,
		JumpSpeed:     20,
		StartX:        64,
		StartY:        225,
		FallThreshold: -100,
		Width:         48,
		Height:        96,
	}

	Physics = PhysicsConfig{
		Gravity:     1,
		GroundProbe: 5,
		CellSize:    32,
	}

	Projectile = ProjectileConfig{
		Speed:  5,
		Width:  24,
		Height: 8,
	}

	Meteor = MeteorConfig{
		Count:  20,
		MinY:   120,
		Size:   40,
		Points: 2,
	}

	Coin = CoinConfig{
		StartX:      300,
		EndX:        2000,
		StepX:       258,
		Y:           215,
		Size:        32,
		Points:      1,
		BobHeight:   4,
		BobDuration: 0.6,
	}

	Level = LevelConfig{
		PathPattern:     "levels/level_%d.tmx",
		FirstLevel:      1,
		SpritePixelSize: 128,
		TileScaling:     0.5,
		PlatformsLayer:  "Platforms",
		CoinsLayer:      "Coins",
		ForegroundLayer: "Foreground",
		BackgroundLayer: "Background",
		HazardLayer:     "Don't Touch",
	}

	Screen = ScreenConfig{
		InstructionsBackground: LightBlue,
		GameOverBackground:     Red,
		GameBackground:         Cornflower,
		InstructionLines: []string{
			"Welcome to Kalli's World",
			"Use the LEFT and RIGHT arrow keys to MOVE",
			"Use the UP arrow to JUMP",
			"Left click the mouse to shoot meteors",
			"Click to advance",
		},
		GameOverTitle: "GAME OVER",
		GameOverHint:  "Click to restart",
	}

	Message = MessageConfig{
		DisplayDuration: 120, // 2 seconds at 60fps
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       30.0,
		LevelFormat:     "Level %d",
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 150},
		Title:        "PAUSED",
		Hint:         "Esc or P to resume",
	}

	Debug = DebugConfig{
		StartLevel: 1,
	}
}
