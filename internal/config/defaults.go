package config

import (
	_ "embed"
)

//go:embed defaults/starfighter.yaml
var defaultStarfighterYAML []byte

// DefaultStarfighterConfig returns the default configuration.
// It matches defaults/starfighter.yaml.
func DefaultStarfighterConfig() StarfighterConfig {
	return StarfighterConfig{
		Ship: ShipConfig{
			RotationRepeat: 3,
			ThrustLimit:    1024,
			FrictionDelay:  50,
			FrictionSteps:  8,
		},
		Bullets: BulletConfig{
			FireInterval: 8,
			MuzzleX:      4,
			MuzzleY:      4,
		},
		Field: FieldConfig{
			CellWidth:  4,
			CellHeight: 8,
			InsetX:     100,
			InsetY:     80,
			Boundary:   "scroll",
		},
		Starfield: StarfieldConfig{
			Width:       64,
			Height:      32,
			NearFactor:  2,
			FarFactor:   4,
			NearDensity: 0.04,
			FarDensity:  0.08,
			DebugHUD:    false,
		},
		Input: InputConfig{
			HoldTicks: 30,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}
