package config

import "image/color"

// MovementConfig contains the character controller tuning. Field names
// match movement.Tuning so the two convert directly.
type MovementConfig struct {
	WalkSpeed    float64 // units/second
	SprintSpeed  float64 // units/second
	Acceleration float64 // units/second² of speed change
	DashBoost    float64 // speed added instantly on dash
	DashCooldown float64 // seconds between dashes
}

// LobbyConfig contains the roster size policy
type LobbyConfig struct {
	MinPlayers int // players required before a match can start
	MaxPlayers int // joins beyond this are refused
}

// SimulationConfig contains fixed-timestep driver settings
type SimulationConfig struct {
	TickRate    int // updates per second
	DemoFrames  int // frames run by the headless demo
	ReportEvery int // demo prints a trace line every N frames
}

// EffectsConfig contains visual effect timings
type EffectsConfig struct {
	DashFlashSeconds float64 // how long the dash flash takes to fade
}

// CameraConfig contains arena camera behavior
type CameraConfig struct {
	FollowSmoothing    float64 // How fast the camera follows the players (0.0-1.0)
	LookAheadSeconds   float64 // Lead the target by average velocity times this
	LookAheadSmoothing float64 // How fast the look-ahead offset changes (0.0-1.0)
}

// ScreenShakeConfig contains screen shake triggers
type ScreenShakeConfig struct {
	DashIntensity float64 // pixels
	DashDuration  int     // frames
}

// ArenaConfig contains playground rendering values
type ArenaConfig struct {
	PixelsPerUnit float64 // world units to screen pixels
	PlayerSize    float64 // pixels
	GridSpacing   float64 // world units between grid lines
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipLobby   bool   // Skip the lobby and go straight into the arena
	TuningFile  string // YAML tuning override, hot reloaded when set
	ShowVectors bool   // Draw velocity and input direction lines in the arena
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Lobby LobbyConfig
var Simulation SimulationConfig
var Effects EffectsConfig
var Arena ArenaConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	GridColor    = color.RGBA{R: 40, G: 40, B: 55, A: 255}
	ArenaBg      = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// PlayerColors is indexed by roster position
var PlayerColors = []color.RGBA{LightBlue, LightRed, LightGreen, Orange}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Movement = MovementConfig{
		WalkSpeed:    4.5,
		SprintSpeed:  7.0,
		Acceleration: 18.0,
		DashBoost:    10.0,
		DashCooldown: 0.8,
	}

	Lobby = LobbyConfig{
		MinPlayers: 2,
		MaxPlayers: 4,
	}

	Simulation = SimulationConfig{
		TickRate:    60,
		DemoFrames:  180,
		ReportEvery: 45,
	}

	Effects = EffectsConfig{
		DashFlashSeconds: 0.25,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.15,
		LookAheadSeconds:   0.25,
		LookAheadSmoothing: 0.1,
	}

	ScreenShake = ScreenShakeConfig{
		DashIntensity: 3.0,
		DashDuration:  6,
	}

	Arena = ArenaConfig{
		PixelsPerUnit: 24,
		PlayerSize:    14,
		GridSpacing:   2,
	}
}

// FrameDelta returns the fixed timestep in seconds for the configured tick rate.
func FrameDelta() float64 {
	if Simulation.TickRate <= 0 {
		return 0
	}
	return 1.0 / float64(Simulation.TickRate)
}
