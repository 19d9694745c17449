package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfighter/internal/audio"
	"github.com/vovakirdan/starfighter/internal/config"
	"github.com/vovakirdan/starfighter/internal/core"
	"github.com/vovakirdan/starfighter/internal/games/starfighter"
	"github.com/vovakirdan/starfighter/internal/platform/tui"
	"github.com/vovakirdan/starfighter/internal/registry"
	"github.com/vovakirdan/starfighter/internal/sim"
	"github.com/vovakirdan/starfighter/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBoundary   string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly a mode",
	Long: `Start flying the specified mode (default: starfighter).

Controls:
  Left/Right, A/D  - Turn
  Up, W            - Thrust
  Space, Z, X      - Fire
  P                - Pause
  Esc/B            - Back to menu (while paused)
  R                - Restart the flight
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Faster turns and a shorter fire cooldown
  normal - The configured values
  hard   - Slower turns, longer cooldown, half the top speed

Examples:
  starfighter play
  starfighter play starfighter_wrap
  starfighter play --difficulty hard
  starfighter play --boundary wrap --mute
  starfighter play --config ./my-starfighter.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBoundary, "boundary", "", "Override field.boundary: scroll or wrap")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// applyFlightFlags validates the flight flags and hands them to the game package.
func applyFlightFlags() error {
	starfighter.SetConfigPath(flagConfig)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		starfighter.SetDifficultyPreset(preset)
	}

	if flagBoundary != "" {
		if _, err := sim.ParseBoundary(flagBoundary); err != nil {
			return err
		}
	}
	starfighter.SetBoundary(flagBoundary)
	return nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS < 1 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be at least 1, got %d", flagFPS)
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, nil
}

// openStore opens the scores database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSoundManager opens the speaker unless muted. A machine without an audio
// device gets a silent manager.
func newSoundManager() *audio.SoundManager {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		log.Warn("using default audio settings", "error", err)
		cfg = config.DefaultStarfighterConfig()
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	sm := audio.NewSoundManager(cfg.Audio)
	if err := sm.Initialize(); err != nil {
		log.Warn("audio disabled", "error", err)
	}
	return sm
}

// attachAudio routes a game's sound effects to sm when the game makes sound.
func attachAudio(game registry.Game, sm *audio.SoundManager) {
	if g, ok := game.(interface{ SetAudio(sim.Audio) }); ok {
		g.SetAudio(sm)
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := starfighter.IDScroll
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'starfighter list' to see available modes", gameID)
	}
	if err := applyFlightFlags(); err != nil {
		return err
	}
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	sm := newSoundManager()
	defer sm.Close()
	attachAudio(game, sm)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	log.Info("flight starting", "mode", gameID, "difficulty", flagDifficulty, "boundary", flagBoundary)
	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
