// Package config provides YAML-based game configuration loading and
// difficulty presets for starfighter.
package config

// StarfighterConfig contains all configuration for the game.
type StarfighterConfig struct {
	Ship      ShipConfig      `yaml:"ship"`
	Bullets   BulletConfig    `yaml:"bullets"`
	Field     FieldConfig     `yaml:"field"`
	Starfield StarfieldConfig `yaml:"starfield"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// ShipConfig defines the ship controller tuning.
type ShipConfig struct {
	RotationRepeat int `yaml:"rotation_repeat"` // ticks between rotation steps
	ThrustLimit    int `yaml:"thrust_limit"`    // momentum band (exclusive)
	FrictionDelay  int `yaml:"friction_delay"`  // ticks between friction halvings
	FrictionSteps  int `yaml:"friction_steps"`  // halvings before the ship stops
}

// BulletConfig defines the bullet pool tuning.
type BulletConfig struct {
	FireInterval int `yaml:"fire_interval"` // ticks that must pass between shots
	MuzzleX      int `yaml:"muzzle_x"`
	MuzzleY      int `yaml:"muzzle_y"`
}

// FieldConfig maps the terminal onto the logical play field.
type FieldConfig struct {
	CellWidth  int    `yaml:"cell_width"`  // logical pixels per terminal column
	CellHeight int    `yaml:"cell_height"` // logical pixels per terminal row
	InsetX     int    `yaml:"inset_x"`     // scroll boundary distance from left/right edges
	InsetY     int    `yaml:"inset_y"`     // scroll boundary distance from top/bottom edges
	Boundary   string `yaml:"boundary"`    // "scroll" or "wrap"
}

// StarfieldConfig defines the scrolling background.
type StarfieldConfig struct {
	Width       int     `yaml:"width"`  // tile map width in cells
	Height      int     `yaml:"height"` // tile map height in cells
	NearFactor  int     `yaml:"near_factor"`
	FarFactor   int     `yaml:"far_factor"`
	NearDensity float64 `yaml:"near_density"` // fraction of near-layer cells holding a star
	FarDensity  float64 `yaml:"far_density"`
	DebugHUD    bool    `yaml:"debug_hud"`
}

// InputConfig defines keyboard sampling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // ticks a key counts as held after a press
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 to 1.0
	SampleRate int     `yaml:"sample_rate"`
}
