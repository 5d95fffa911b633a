// vecroids is a vector-graphics arcade game that runs in the terminal or in a window.
//
// Usage:
//
//	vecroids list            - List available games
//	vecroids play [game]     - Play a game (default: asteroids)
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/vecroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vecroids",
	Short: "Vecroids - vector arcade games for the terminal and the desktop",
	Long: `Vecroids draws classic vector arcade games as line art, either in your
terminal or in a native window.

Available commands:
  list     - Show all available games
  play     - Play a game

Examples:
  vecroids list
  vecroids play
  vecroids play asteroids --backend window
  vecroids play --difficulty hard --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}

// setupLogging installs the default logger. Logs go to --log-file when set
// and to fallback otherwise. The returned func closes the log file.
func setupLogging(fallback io.Writer) (func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, done := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		//nolint:errcheck // Best-effort close on exit
		w, done = f, func() { f.Close() }
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "vecroids",
		Level:           level,
	}))
	return done, nil
}
