package handler

import (
	"log/slog"
	"net/http"

	"github.com/boozedog/smoovboard/internal/theme"
)

// ToggleTheme flips between light and dark mode and persists the choice.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := theme.Dark
	if h.theme() == theme.Dark {
		next = theme.Light
	}
	if err := theme.Save(h.stateDir, next); err != nil {
		slog.Warn("failed to persist theme", "error", err)
	}

	back := r.Header.Get("Referer")
	if back == "" {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
