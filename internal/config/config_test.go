package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(defaultStarfighterYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultStarfighterConfig()) {
		t.Errorf("embedded default = %+v\nexpected %+v", cfg, DefaultStarfighterConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultStarfighterConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".starfighter", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("field:\n  boundary: wrap\n")
	if err := os.WriteFile(filepath.Join(dir, "starfighter.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Field.Boundary != "wrap" {
		t.Errorf("Field.Boundary = %q, expected wrap", cfg.Field.Boundary)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bullets:\n  fire_interval: 3\nstarfield:\n  debug_hud: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bullets.FireInterval != 3 || !cfg.Starfield.DebugHUD {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.Bullets.MuzzleX != 4 || cfg.Ship.RotationRepeat != 3 || cfg.Field.CellWidth != 4 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("ship: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  boundary: bounce\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*StarfighterConfig)
	}{
		{"rotation repeat", func(c *StarfighterConfig) { c.Ship.RotationRepeat = 0 }},
		{"thrust limit", func(c *StarfighterConfig) { c.Ship.ThrustLimit = 0 }},
		{"friction", func(c *StarfighterConfig) { c.Ship.FrictionSteps = -1 }},
		{"fire interval", func(c *StarfighterConfig) { c.Bullets.FireInterval = -1 }},
		{"cell size", func(c *StarfighterConfig) { c.Field.CellHeight = 0 }},
		{"inset", func(c *StarfighterConfig) { c.Field.InsetX = -5 }},
		{"boundary", func(c *StarfighterConfig) { c.Field.Boundary = "clamp" }},
		{"starfield size", func(c *StarfighterConfig) { c.Starfield.Width = 0 }},
		{"parallax", func(c *StarfighterConfig) { c.Starfield.FarFactor = 0 }},
		{"density", func(c *StarfighterConfig) { c.Starfield.NearDensity = 1.5 }},
		{"hold ticks", func(c *StarfighterConfig) { c.Input.HoldTicks = 0 }},
		{"volume", func(c *StarfighterConfig) { c.Audio.Volume = 2 }},
		{"sample rate", func(c *StarfighterConfig) { c.Audio.SampleRate = 100 }},
	}

	if err := DefaultStarfighterConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStarfighterConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name           string
		preset         DifficultyPreset
		fireInterval   int
		rotationRepeat int
		thrustLimit    int
	}{
		{"easy", DifficultyEasy, 5, 2, 1024},
		{"normal", DifficultyNormal, 8, 3, 1024},
		{"hard", DifficultyHard, 12, 4, 512},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStarfighterConfig()
			ApplyStarfighterPreset(&cfg, tc.preset)
			if cfg.Bullets.FireInterval != tc.fireInterval ||
				cfg.Ship.RotationRepeat != tc.rotationRepeat ||
				cfg.Ship.ThrustLimit != tc.thrustLimit {
				t.Errorf("%s preset = fire %d rotation %d thrust %d", tc.name,
					cfg.Bullets.FireInterval, cfg.Ship.RotationRepeat, cfg.Ship.ThrustLimit)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
