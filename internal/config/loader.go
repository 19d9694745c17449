package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "starfighter.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.starfighter/configs/starfighter.yaml ->
// ./configs/starfighter.yaml -> embedded default -> hardcoded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (StarfighterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarfighterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return StarfighterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultStarfighterYAML)
	if err != nil {
		return DefaultStarfighterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (StarfighterConfig, error) {
	cfg := DefaultStarfighterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starfighter", "configs", filename)
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that every value is usable.
func (c StarfighterConfig) Validate() error {
	switch {
	case c.Ship.RotationRepeat < 1:
		return fmt.Errorf("config: ship.rotation_repeat must be at least 1: %w", ErrInvalid)
	case c.Ship.ThrustLimit < 1:
		return fmt.Errorf("config: ship.thrust_limit must be positive: %w", ErrInvalid)
	case c.Ship.FrictionDelay < 0 || c.Ship.FrictionSteps < 0:
		return fmt.Errorf("config: ship friction values must not be negative: %w", ErrInvalid)
	case c.Bullets.FireInterval < 0:
		return fmt.Errorf("config: bullets.fire_interval must not be negative: %w", ErrInvalid)
	case c.Field.CellWidth < 1 || c.Field.CellHeight < 1:
		return fmt.Errorf("config: field cell size must be positive: %w", ErrInvalid)
	case c.Field.InsetX < 0 || c.Field.InsetY < 0:
		return fmt.Errorf("config: field inset must not be negative: %w", ErrInvalid)
	case c.Field.Boundary != "" && c.Field.Boundary != "scroll" && c.Field.Boundary != "wrap":
		return fmt.Errorf("config: field.boundary %q must be scroll or wrap: %w", c.Field.Boundary, ErrInvalid)
	case c.Starfield.Width < 1 || c.Starfield.Height < 1:
		return fmt.Errorf("config: starfield size must be positive: %w", ErrInvalid)
	case c.Starfield.NearFactor < 1 || c.Starfield.FarFactor < 1:
		return fmt.Errorf("config: starfield parallax factors must be at least 1: %w", ErrInvalid)
	case c.Starfield.NearDensity < 0 || c.Starfield.NearDensity > 1 ||
		c.Starfield.FarDensity < 0 || c.Starfield.FarDensity > 1:
		return fmt.Errorf("config: starfield densities must be within [0, 1]: %w", ErrInvalid)
	case c.Input.HoldTicks < 1:
		return fmt.Errorf("config: input.hold_ticks must be at least 1: %w", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: audio.volume must be within [0, 1]: %w", ErrInvalid)
	case c.Audio.SampleRate < 8000:
		return fmt.Errorf("config: audio.sample_rate must be at least 8000: %w", ErrInvalid)
	}
	return nil
}
