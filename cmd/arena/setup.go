package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/registry"
	"github.com/vovakirdan/robot-arena/internal/platform/tui"
)

// newLogger creates the CLI logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadSetup reads the settings and builds the board from the global flags.
func loadSetup() (config.Settings, *core.Board, error) {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return config.Settings{}, nil, err
	}
	m, err := config.LoadMap(flagMap)
	if err != nil {
		return config.Settings{}, nil, err
	}
	board, err := m.Board(settings.BoardSize, settings.SpawnPerPlayer)
	if err != nil {
		return config.Settings{}, nil, fmt.Errorf("map %q: %w", flagMap, err)
	}
	return settings, board, nil
}

// seed returns --seed, or a time based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// checkBots fails for bot IDs that are not registered.
func checkBots(ids ...string) error {
	for _, id := range ids {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown bot %q (run 'arena list' to see available bots)", id)
		}
	}
	return nil
}

// gameFactory builds games on the given board. Player two's bot is seeded
// differently from player one's so mirror matches do not play in lockstep.
func gameFactory(settings config.Settings, board *core.Board, logger *log.Logger, opts ...arena.Option) tui.GameFactory {
	return func(bots [2]string, seed int64) (*arena.Game, error) {
		var providers [2]arena.Provider
		for i, id := range bots {
			bot, err := registry.Create(id, seed+int64(i))
			if err != nil {
				return nil, err
			}
			providers[i] = bot
		}
		all := append([]arena.Option{arena.WithSeed(seed), arena.WithLogger(logger)}, opts...)
		return arena.NewGame(settings, board, providers, all...)
	}
}
