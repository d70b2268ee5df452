package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/internal/storage"
)

type SignupRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token       string `json:"token"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// AuthHandler serves signup and login.
// Routes:
// POST /v1/auth/signup
// POST /v1/auth/login
type AuthHandler struct {
	storage storage.Storage
	tokens  *auth.TokenManager
	logger  *slog.Logger
}

func NewAuthHandler(store storage.Storage, tokens *auth.TokenManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{storage: store, tokens: tokens, logger: logger}
}

func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	switch strings.TrimPrefix(r.URL.Path, "/v1/auth") {
	case "/signup":
		h.handleSignup(w, r)
	case "/login":
		h.handleLogin(w, r)
	default:
		writeError(w, h.logger, http.StatusNotFound, "Not found")
	}
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.DisplayName == "" || req.Email == "" || req.Password == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Display name, email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := &auth.User{
		Email:        email,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.storage.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			writeError(w, h.logger, http.StatusConflict, "That email already exists")
			return
		}
		h.logger.Error("Failed to create user", "email", email, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create user")
		return
	}

	h.logger.Info("User created", "email", email)
	h.respondWithToken(w, user, http.StatusCreated)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.storage.GetUser(r.Context(), email)
	if err != nil {
		h.logger.Error("Failed to load user", "email", email, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, req.Password) {
		h.logger.Warn("Failed login attempt", "email", email)
		writeError(w, h.logger, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	h.respondWithToken(w, user, http.StatusOK)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *auth.User, status int) {
	token, err := h.tokens.Issue(user.Email)
	if err != nil {
		h.logger.Error("Failed to issue token", "email", user.Email, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	writeJSON(w, h.logger, status, AuthResponse{
		Token:       token,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	})
}
