// arena runs two-player robot battles in the terminal.
//
// Usage:
//
//	arena list                 - List available bots
//	arena run <bot1> <bot2>    - Play a match headless and print the result
//	arena watch [bot1 bot2]    - Watch a match in the terminal
//	arena serve                - Start SSH server for remote spectators
//	arena maps [name]          - List built-in maps or draw one
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible matches
//	--settings <path>    - Settings YAML (default: ~/.arena/settings.yaml, ./configs/settings.yaml)
//	--map <name|path>    - Board map (default: default)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import bots to register them
	_ "github.com/vovakirdan/robot-arena/internal/bots"
)

var (
	// Global flags
	flagSeed     int64
	flagSettings string
	flagMap      string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Robot Arena - two-player robot battles in your terminal",
	Long: `Robot Arena pits two robot logics against each other on a square board.
Every turn each robot moves, attacks, guards or self-destructs, all at once.

Available commands:
  list     - Show all available bots
  run      - Play a match without a UI and print the result
  watch    - Watch a match in the terminal
  serve    - Start SSH server for remote spectators
  maps     - List or draw the built-in maps

Examples:
  arena list
  arena run rush random --seed 42
  arena watch kamikaze rush
  arena serve --ssh :2222
  arena maps duel`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "default", "Built-in map name or path to map YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mapsCmd)
}
