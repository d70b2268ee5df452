package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/internal/storage"
)

// LeaderboardHandler serves top scores per level.
// Routes:
// GET /v1/leaderboard/{level_id}?limit=10
type LeaderboardHandler struct {
	storage storage.Storage
	logger  *slog.Logger
}

func NewLeaderboardHandler(store storage.Storage, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{storage: store, logger: logger}
}

func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	levelID := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/leaderboard"), "/")
	if levelID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Level ID is required")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, h.logger, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	results, err := h.storage.TopScores(r.Context(), levelID, limit)
	if err != nil {
		h.logger.Error("Failed to load leaderboard", "level_id", levelID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load leaderboard")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, results)
}

// HistoryHandler serves the authenticated user's finished runs.
// Routes:
// GET /v1/history
type HistoryHandler struct {
	storage storage.Storage
	tokens  *auth.TokenManager
	logger  *slog.Logger
}

func NewHistoryHandler(store storage.Storage, tokens *auth.TokenManager, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{storage: store, tokens: tokens, logger: logger}
}

func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userEmail, err := userFromRequest(r, h.tokens)
	if err != nil {
		writeError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	results, err := h.storage.ResultsByUser(r.Context(), userEmail)
	if err != nil {
		h.logger.Error("Failed to load history", "user", userEmail, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load history")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, results)
}
