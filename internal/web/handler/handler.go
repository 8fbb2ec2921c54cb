package handler

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/boozedog/smoovboard/internal/board"
	"github.com/boozedog/smoovboard/internal/suggest"
	"github.com/boozedog/smoovboard/internal/theme"
	"github.com/boozedog/smoovboard/internal/web/sse"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	board    *board.Board
	pipeline *suggest.Pipeline
	broker   *sse.Broker
	stateDir string

	mu          sync.Mutex
	description string
}

// New creates a new Handler. stateDir is where the theme flag persists.
func New(b *board.Board, pipeline *suggest.Pipeline, broker *sse.Broker, stateDir string) *Handler {
	return &Handler{
		board:    b,
		pipeline: pipeline,
		broker:   broker,
		stateDir: stateDir,
	}
}

func (h *Handler) theme() string {
	return theme.Load(h.stateDir)
}

func (h *Handler) lastDescription() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.description
}

func (h *Handler) setDescription(d string) {
	h.mu.Lock()
	h.description = d
	h.mu.Unlock()
}

// redirectWithError sends the user back to a page with a surfaced error
// banner. Errors are never fatal to the session; the user can always retry.
func redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}
