package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfighter/internal/games/starfighter"
	"github.com/vovakirdan/starfighter/internal/platform/tui"
	"github.com/vovakirdan/starfighter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, then pick a
difficulty. Pause and press Esc during a flight to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores and flight log
  Q            - Quit

Examples:
  starfighter menu
  starfighter menu --fps 30
  starfighter menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the difficulty picker: easy, normal, hard")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyFlightFlags(); err != nil {
		return err
	}
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	sm := newSoundManager()
	defer sm.Close()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		gameID := menuResult.GameID
		if gameID == "" {
			return nil
		}

		// Ask for a difficulty unless one was given on the command line
		if flagDifficulty == "" {
			setup, setupErr := tui.RunFlightSetup(cfg)
			if setupErr != nil {
				return setupErr
			}
			if setup.Quit {
				return nil
			}
			if setup.Back {
				continue
			}
			starfighter.SetDifficultyPreset(setup.Preset)
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		attachAudio(game, sm)

		// New starfield for each flight unless the seed is pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		log.Info("flight starting", "mode", gameID)
		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
