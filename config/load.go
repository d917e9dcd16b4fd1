package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a partial override of the global configuration. Only fields
// present in the YAML are applied.
type File struct {
	Movement   *MovementFile   `yaml:"movement"`
	Lobby      *LobbyFile      `yaml:"lobby"`
	Simulation *SimulationFile `yaml:"simulation"`
	Effects    *EffectsFile    `yaml:"effects"`
}

type MovementFile struct {
	WalkSpeed    *float64 `yaml:"walk_speed"`
	SprintSpeed  *float64 `yaml:"sprint_speed"`
	Acceleration *float64 `yaml:"acceleration"`
	DashBoost    *float64 `yaml:"dash_boost"`
	DashCooldown *float64 `yaml:"dash_cooldown"`
}

type LobbyFile struct {
	MinPlayers *int `yaml:"min_players"`
	MaxPlayers *int `yaml:"max_players"`
}

type SimulationFile struct {
	TickRate    *int `yaml:"tick_rate"`
	DemoFrames  *int `yaml:"demo_frames"`
	ReportEvery *int `yaml:"report_every"`
}

type EffectsFile struct {
	DashFlashSeconds *float64 `yaml:"dash_flash_seconds"`
}

// LoadFile reads and validates a YAML override file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates YAML override data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

var errNegative = errors.New("must not be negative")

func (f *File) validate() error {
	if m := f.Movement; m != nil {
		for name, v := range map[string]*float64{
			"walk_speed":    m.WalkSpeed,
			"sprint_speed":  m.SprintSpeed,
			"acceleration":  m.Acceleration,
			"dash_boost":    m.DashBoost,
			"dash_cooldown": m.DashCooldown,
		} {
			if v != nil && *v < 0 {
				return fmt.Errorf("movement.%s: %w", name, errNegative)
			}
		}
	}
	if l := f.Lobby; l != nil {
		minP, maxP := Lobby.MinPlayers, Lobby.MaxPlayers
		if l.MinPlayers != nil {
			minP = *l.MinPlayers
		}
		if l.MaxPlayers != nil {
			maxP = *l.MaxPlayers
		}
		if minP < 0 || maxP < 0 {
			return fmt.Errorf("lobby: player counts %w", errNegative)
		}
		if minP > maxP {
			return fmt.Errorf("lobby: min_players %d exceeds max_players %d", minP, maxP)
		}
	}
	if s := f.Simulation; s != nil && s.TickRate != nil && *s.TickRate <= 0 {
		return fmt.Errorf("simulation.tick_rate must be positive, got %d", *s.TickRate)
	}
	return nil
}

// Apply writes the present fields into the global configuration.
func (f *File) Apply() {
	if m := f.Movement; m != nil {
		setFloat(&Movement.WalkSpeed, m.WalkSpeed)
		setFloat(&Movement.SprintSpeed, m.SprintSpeed)
		setFloat(&Movement.Acceleration, m.Acceleration)
		setFloat(&Movement.DashBoost, m.DashBoost)
		setFloat(&Movement.DashCooldown, m.DashCooldown)
	}
	if l := f.Lobby; l != nil {
		setInt(&Lobby.MinPlayers, l.MinPlayers)
		setInt(&Lobby.MaxPlayers, l.MaxPlayers)
	}
	if s := f.Simulation; s != nil {
		setInt(&Simulation.TickRate, s.TickRate)
		setInt(&Simulation.DemoFrames, s.DemoFrames)
		setInt(&Simulation.ReportEvery, s.ReportEvery)
	}
	if e := f.Effects; e != nil {
		setFloat(&Effects.DashFlashSeconds, e.DashFlashSeconds)
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
