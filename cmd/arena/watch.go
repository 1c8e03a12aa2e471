package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/robot-arena/internal/platform/tui"
)

var flagLogFile string

var watchCmd = &cobra.Command{
	Use:   "watch [bot1 bot2]",
	Short: "Watch a match in the terminal",
	Long: `Watch a match turn by turn. Without arguments a picker lets you choose
both bots.

Controls:
  Space/P    - Pause
  N          - Next turn (while paused)
  +/-        - Faster/slower
  R          - New match with the next seed
  Esc/B      - Back to the bot picker
  Q/Ctrl+C   - Quit

Examples:
  arena watch
  arena watch rush kamikaze
  arena watch rush random --map duel --seed 3`,
	Args: cobra.MatchAll(cobra.RangeArgs(0, 2), func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return fmt.Errorf("give both bots or none")
		}
		return nil
	}),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write engine logs to this file (the screen is busy)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	var bots [2]string
	if len(args) == 2 {
		bots = [2]string{args[0], args[1]}
		if err := checkBots(bots[:]...); err != nil {
			return err
		}
	}

	settings, board, err := loadSetup()
	if err != nil {
		return err
	}

	out := os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "arena")
	if err != nil {
		return err
	}
	if flagLogFile == "" {
		// keep the alternate screen clean
		logger.SetLevel(log.FatalLevel)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := tui.WatchConfig{
		Bots:     bots,
		Seed:     seed(),
		Interval: settings.TurnInterval(),
		NewGame:  gameFactory(settings, board, logger),
		Logger:   logger,
	}

	res, err := tui.Run(cfg, width, height)
	if err != nil {
		return err
	}
	if res != nil {
		fmt.Println(res.String())
	}
	return nil
}
