package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset parses a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard): %w", name, ErrInvalid)
	}
}

// ApplyStarfighterPreset modifies the config based on a difficulty preset.
// Easy fires and turns faster; hard slows both and halves the momentum band.
// Normal leaves the loaded values alone.
func ApplyStarfighterPreset(cfg *StarfighterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Bullets.FireInterval = 5
		cfg.Ship.RotationRepeat = 2
	case DifficultyHard:
		cfg.Bullets.FireInterval = 12
		cfg.Ship.RotationRepeat = 4
		cfg.Ship.ThrustLimit = 512
	}
}
