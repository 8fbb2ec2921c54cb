package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/boozedog/smoovboard/internal/config"
	"github.com/boozedog/smoovboard/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session server",
	Long:  `Starts the session server holding the board in memory, with the web UI, the JSON API for the other commands, and a live-refresh event stream. Board state lasts for the lifetime of the process.`,
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stateDir, err := config.DefaultDir()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	port := servePort
	if port == 0 {
		port = cfg.Server.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := web.NewServer(cfg, stateDir, port)
	return srv.ListenAndServe(ctx)
}
