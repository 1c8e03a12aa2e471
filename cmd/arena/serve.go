package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeBots   []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arena SSH server",
	Long: `Start an SSH server that lets users connect and watch matches.

Each SSH connection gets its own session with a bot picker, unless --bots
fixes the match for everyone.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arena/host_key

Examples:
  arena serve                           # Listen on :23234 with auto-generated key
  arena serve --ssh :2222               # Listen on port 2222
  arena serve --bots rush,kamikaze      # Everyone watches rush vs kamikaze

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringSliceVar(&flagServeBots, "bots", nil, "Two bot IDs every session watches")
}

func runServe(_ *cobra.Command, _ []string) error {
	var bots [2]string
	if len(flagServeBots) > 0 {
		if len(flagServeBots) != 2 {
			return fmt.Errorf("--bots needs exactly two bot IDs, got %d", len(flagServeBots))
		}
		bots = [2]string{flagServeBots[0], flagServeBots[1]}
		if err := checkBots(bots[:]...); err != nil {
			return err
		}
	}

	logger, err := newLogger(os.Stderr, "arena-ssh")
	if err != nil {
		return err
	}
	settings, board, err := loadSetup()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Watch = tui.WatchConfig{
		Bots:     bots,
		Seed:     flagSeed,
		Interval: settings.TurnInterval(),
		NewGame:  gameFactory(settings, board, logger),
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting arena SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.Serve(ctx)
}
