package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML.

Save it as ~/.tui-pong/pong.yaml or ./configs/pong.yaml to customize
paddle size, the winning score and pacing.

Examples:
  pong defaults > ~/.tui-pong/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
