package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jasonfuller/relic-quest/internal/levels"
	"github.com/jasonfuller/relic-quest/pkg/game"
)

// LevelSummary is the UI-safe listing form of a level. Map structure and
// the optimal move count stay server-side.
type LevelSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Rooms      int    `json:"rooms"`
}

// LevelsHandler serves the level catalog.
// Routes:
// GET /v1/levels
// GET /v1/levels/{id}
type LevelsHandler struct {
	registry *levels.Registry
	logger   *slog.Logger
}

func NewLevelsHandler(registry *levels.Registry, logger *slog.Logger) *LevelsHandler {
	return &LevelsHandler{registry: registry, logger: logger}
}

func (h *LevelsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/levels"), "/")
	if id == "" {
		h.handleList(w)
		return
	}

	lvl := h.registry.Get(id)
	if lvl == nil {
		writeError(w, h.logger, http.StatusNotFound, "Unknown level id")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, summarize(lvl))
}

func (h *LevelsHandler) handleList(w http.ResponseWriter) {
	all := h.registry.All()
	summaries := make([]LevelSummary, 0, len(all))
	for _, lvl := range all {
		summaries = append(summaries, summarize(lvl))
	}
	writeJSON(w, h.logger, http.StatusOK, summaries)
}

func summarize(lvl *game.Level) LevelSummary {
	return LevelSummary{
		ID:         lvl.ID,
		Name:       lvl.Name,
		Difficulty: lvl.Difficulty.String(),
		Rooms:      len(lvl.Map.Rooms),
	}
}
