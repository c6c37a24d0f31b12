package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game|controls>",
	Short: "Print the default config for a game",
	Long: `Print the built-in YAML config for a game, or the default key bindings.
Save the output to ~/.arcade/configs/<name>.yaml to customize it.

Examples:
  arcade config asteroids > ~/.arcade/configs/asteroids.yaml
  arcade config controls`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default config for %q\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
