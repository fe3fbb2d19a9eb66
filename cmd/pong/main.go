// pong is a terminal Pong game: you on the left, the computer on the right.
//
// Usage:
//
//	pong                 - Play in this terminal
//	pong serve           - Host games over SSH
//	pong scores          - Show round history
//	pong defaults        - Print the default game config
//
// Global flags:
//
//	--config <path>     - Custom game config YAML
//	--speed <preset>    - Pacing preset: easy, normal, hard, fixed
//	--db <path>         - Round history database (default: ~/.tui-pong/rounds.db)
//	--log-file <path>   - Write logs to a file while the game owns the terminal
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSpeed   string
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong against the computer, drawn with terminal cells.

The left paddle is yours, the right one belongs to the CPU.
First to 10 points wins the round.

Controls:
  Up/W     - Move paddle up
  Down/S   - Move paddle down
  Esc      - Quit
  Any key  - Start a round

Examples:
  pong
  pong --speed hard
  pong --backend tea
  pong serve --ssh :2222
  pong scores`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run:           runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-pong/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// loadGameConfig resolves the game config from --config and --speed.
func loadGameConfig() (config.PongConfig, error) {
	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return config.PongConfig{}, err
	}
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger returns a logger writing to path, or discarding when path is
// empty so log lines never land on the game screen.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
