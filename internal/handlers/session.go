package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/internal/session"
)

type StartSessionRequest struct {
	LevelID string `json:"level_id"`
}

type MoveRequest struct {
	Direction string `json:"direction"`
}

// SessionHandler serves the gameplay session lifecycle.
// Routes:
// POST   /v1/session          - Start a new session
// GET    /v1/session          - View the active session
// DELETE /v1/session          - Abandon the active session
// POST   /v1/session/move     - Apply one movement action
// POST   /v1/session/restart  - Abandon and start fresh
type SessionHandler struct {
	service *session.Service
	tokens  *auth.TokenManager
	logger  *slog.Logger
}

func NewSessionHandler(service *session.Service, tokens *auth.TokenManager, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{service: service, tokens: tokens, logger: logger}
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userEmail, err := userFromRequest(r, h.tokens)
	if err != nil {
		writeError(w, h.logger, http.StatusUnauthorized, "Authentication required")
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/session"), "/")

	switch {
	case path == "" && r.Method == http.MethodPost:
		h.handleStart(w, r, userEmail)
	case path == "" && r.Method == http.MethodGet:
		h.handleView(w, r, userEmail)
	case path == "" && r.Method == http.MethodDelete:
		h.handleAbandon(w, r, userEmail)
	case path == "move" && r.Method == http.MethodPost:
		h.handleMove(w, r, userEmail)
	case path == "restart" && r.Method == http.MethodPost:
		h.handleRestart(w, r, userEmail)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *SessionHandler) handleStart(w http.ResponseWriter, r *http.Request, userEmail string) {
	levelID, ok := h.decodeLevelID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Start(r.Context(), userEmail, levelID)
	if err != nil {
		h.writeServiceError(w, err, "Failed to start session")
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, view)
}

func (h *SessionHandler) handleRestart(w http.ResponseWriter, r *http.Request, userEmail string) {
	levelID, ok := h.decodeLevelID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Restart(r.Context(), userEmail, levelID)
	if err != nil {
		h.writeServiceError(w, err, "Failed to restart session")
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, view)
}

func (h *SessionHandler) handleView(w http.ResponseWriter, r *http.Request, userEmail string) {
	view, err := h.service.Restore(r.Context(), userEmail)
	if err != nil {
		h.writeServiceError(w, err, "Failed to load session")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

func (h *SessionHandler) handleMove(w http.ResponseWriter, r *http.Request, userEmail string) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Direction == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Direction is required")
		return
	}

	view, err := h.service.Move(r.Context(), userEmail, strings.ToLower(req.Direction))
	if err != nil {
		h.writeServiceError(w, err, "Failed to apply move")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

func (h *SessionHandler) handleAbandon(w http.ResponseWriter, r *http.Request, userEmail string) {
	if err := h.service.Abandon(r.Context(), userEmail); err != nil {
		h.writeServiceError(w, err, "Failed to abandon session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) decodeLevelID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return "", false
	}
	if req.LevelID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Level ID is required")
		return "", false
	}
	return req.LevelID, true
}

func (h *SessionHandler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, session.ErrUnknownLevel):
		writeError(w, h.logger, http.StatusNotFound, "Unknown level id")
	case errors.Is(err, session.ErrNoActiveSession):
		writeError(w, h.logger, http.StatusNotFound, "No active session")
	case errors.Is(err, session.ErrSessionExists):
		writeError(w, h.logger, http.StatusConflict, "An active session already exists")
	default:
		h.logger.Error("Session operation failed", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, fallback)
	}
}
