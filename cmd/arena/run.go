package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/match"
)

var (
	flagTurns   int
	flagHistory string
)

var runCmd = &cobra.Command{
	Use:   "run <bot1> <bot2>",
	Short: "Play a match headless",
	Long: `Play a full match between two bots without a UI and print the result.

The turn history (every surviving robot's location and health after each
turn) can be written as YAML for later review.

Examples:
  arena run rush random
  arena run kamikaze rush --seed 7 --turns 50
  arena run rush rush --history match.yaml
  arena run guard rush --history - --log-level warn`,
	Args: cobra.ExactArgs(2),
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTurns, "turns", 0, "Override max_turns from the settings")
	runCmd.Flags().StringVar(&flagHistory, "history", "", "Write the turn history as YAML to this file (- for stdout)")
}

// historyFile is the YAML document written by --history.
type historyFile struct {
	Bots   [2]string     `yaml:"bots"`
	Seed   int64         `yaml:"seed"`
	Map    string        `yaml:"map"`
	Result string        `yaml:"result"`
	Turns  arena.History `yaml:"turns"`
}

func runRun(cmd *cobra.Command, args []string) error {
	bots := [2]string{args[0], args[1]}
	if err := checkBots(bots[:]...); err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "arena")
	if err != nil {
		return err
	}
	settings, board, err := loadSetup()
	if err != nil {
		return err
	}
	if flagTurns > 0 {
		settings.MaxTurns = flagTurns
	}

	var opts []arena.Option
	if flagHistory != "" {
		opts = append(opts, arena.WithHistory())
	}
	s := seed()
	game, err := gameFactory(settings, board, logger, opts...)(bots, s)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("match started", "p1", bots[0], "p2", bots[1], "seed", s, "map", flagMap, "turns", settings.MaxTurns)
	res, runErr := match.NewRunner(game, match.WithLogger(logger)).Run(ctx)

	fmt.Printf("%s (%s) vs %s (%s)\n", arena.PlayerOne, bots[0], arena.PlayerTwo, bots[1])
	fmt.Println(res.String())
	fmt.Printf("Robots lost: %d / %d\n", res.Lost[0], res.Lost[1])

	if flagHistory != "" {
		doc := historyFile{Bots: bots, Seed: s, Map: flagMap, Result: res.String(), Turns: game.History()}
		if err := writeHistory(flagHistory, doc); err != nil {
			return err
		}
	}
	return runErr
}

func writeHistory(path string, doc historyFile) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("write history: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return enc.Close()
}
