package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/api"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH and the leaderboard over HTTP",
	Long: `Start an SSH server where every connection plays its own game, and an
HTTP server exposing the leaderboard as JSON. All sessions share one scores
database, so they share the leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

Pass an empty address to disable a server.

Examples:
  tetris serve                           # SSH on :23234, HTTP on :8080
  tetris serve --ssh :2222 --http ""     # SSH only
  tetris serve --db ./scores.db

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "Leaderboard HTTP address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

type server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: both --ssh and --http are empty")
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	var servers []server
	if flagSSHAddr != "" {
		sshSrv, err := tui.NewSSHServer(tui.SSHServerConfig{
			Address:     flagSSHAddr,
			HostKeyPath: flagHostKey,
			GameID:      defaultGameID,
			TickRate:    flagFPS,
			IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		}, store, logger)
		if err != nil {
			return fmt.Errorf("create SSH server: %w", err)
		}
		servers = append(servers, sshSrv)
	}
	if flagHTTPAddr != "" {
		servers = append(servers, api.NewServer(api.Options{
			Addr:         flagHTTPAddr,
			GameID:       defaultGameID,
			HighScoreKey: tetris.HighScoreKey,
			Source:       store,
			Logger:       logger,
		}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		go func() { errCh <- s.ListenAndServe() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
		if runErr != nil {
			logger.Error("server failed", "err", runErr)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, s := range servers {
		if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("shutdown", "err", err)
		}
	}
	return runErr
}
