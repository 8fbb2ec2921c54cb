// Package web serves the smoovboard UI and JSON API.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/config"
	"github.com/boozedog/smoovboard/internal/directory"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/ticket"
	"github.com/boozedog/smoovboard/internal/web/handler"
	"github.com/boozedog/smoovboard/internal/web/middleware"
	"github.com/boozedog/smoovboard/internal/web/sse"
)

// Server is the smoovboard session server. Board state lives in memory
// for the lifetime of the process; only the config directory (roster
// override, theme flag) persists across restarts.
type Server struct {
	cfg      *config.Config
	stateDir string
	port     int
	broker   *sse.Broker
	srv      *http.Server
}

// NewServer creates a new session server. stateDir is the config
// directory holding the optional roster override and the theme flag.
func NewServer(cfg *config.Config, stateDir string, port int) *Server {
	return &Server{
		cfg:      cfg,
		stateDir: stateDir,
		port:     port,
	}
}

// ListenAndServe starts the server and blocks until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := os.MkdirAll(s.stateDir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	seedPath, err := config.SeedPath()
	if err != nil {
		return fmt.Errorf("resolve seed path: %w", err)
	}
	departments, err := directory.LoadSeed(seedPath)
	if err != nil {
		return fmt.Errorf("load directory seed: %w", err)
	}

	// Start SSE broker and config-dir watcher.
	s.broker = sse.NewBroker()
	watcher, err := sse.NewWatcher(s.stateDir, s.broker)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Board mutations push a refresh signal to every connected browser.
	dir := directory.NewStoreWith(departments)
	tickets := ticket.NewStore()
	b := board.New(dir, tickets, func() {
		s.broker.Broadcast(sse.Signal{Event: "refresh"})
	})

	pipeline := suggest.NewPipeline(suggest.NewGeminiClient(s.cfg.APIKey(), s.cfg.AI.Model))
	h := handler.New(b, pipeline, s.broker, s.stateDir)

	s.srv = &http.Server{
		Addr: fmt.Sprintf(":%d", s.port),
		Handler: middleware.Chain(h.Routes(),
			middleware.CORS(),
			middleware.RateLimit(ctx, middleware.DefaultRateLimitConfig()),
		),
		ReadTimeout: 5 * time.Second,
		// WriteTimeout is deliberately unset (0 = no timeout) because SSE
		// connections are long-lived. A per-handler write timeout would
		// kill the /events stream and trigger aggressive browser reconnects
		// that exhaust the HTTP/1.1 connection pool.
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		slog.Info("shutting down session server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", fmt.Sprintf("http://localhost:%d", s.port))
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
