// starfighter is a free-flight arcade shooter for the terminal.
//
// Usage:
//
//	starfighter list              - List available modes
//	starfighter play [mode]       - Fly a mode (default: starfighter)
//	starfighter menu              - Pick modes interactively
//	starfighter serve             - Start SSH server for remote play
//	starfighter scores [mode]     - Show high scores and the flight log
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set starfield seed for reproducible layouts
//	--db <path>           - Set database path (default: ~/.starfighter/scores.db)
//	--log-file <path>     - Write logs to a file while the TUI owns the terminal
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/starfighter/internal/games/starfighter"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	defer closeLogging()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closeLogging()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfighter",
	Short: "Starfighter - free-flight space shooter in your terminal",
	Long: `Starfighter is a terminal arcade shooter. Turn through 24 headings,
thrust with drifting momentum and fire from an eight-round magazine
while the starfield scrolls past.

Available commands:
  list     - Show all available modes
  play     - Fly a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and the flight log

Examples:
  starfighter play
  starfighter play starfighter_wrap
  starfighter menu
  starfighter serve --ssh :2222
  starfighter scores --flights`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// The SSH server owns no terminal, so its logs go to stderr.
		return setupLogging(cmd.Name() == serveCmd.Name())
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Starfield seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.starfighter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
