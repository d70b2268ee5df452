package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/internal/config"
	"github.com/jasonfuller/relic-quest/internal/handlers"
	"github.com/jasonfuller/relic-quest/internal/levels"
	"github.com/jasonfuller/relic-quest/internal/logger"
	"github.com/jasonfuller/relic-quest/internal/middleware"
	"github.com/jasonfuller/relic-quest/internal/session"
	"github.com/jasonfuller/relic-quest/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logr := logger.Setup(cfg)

	logr.Info("Starting Relic Quest API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir)

	store := storage.NewRedisStorage(cfg.RedisURL, cfg.DataDir, logr)

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()
	if err := store.WaitForConnection(storageCtx); err != nil {
		logr.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	registry, err := levels.Load(storageCtx, store, logr)
	if err != nil {
		logr.Error("Failed to load levels", "error", err)
		os.Exit(1)
	}
	logr.Info("Levels loaded", "count", len(registry.All()))

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	sessions := session.NewService(registry, store, logr)

	mux := http.NewServeMux()

	mux.Handle("/health", handlers.NewHealthHandler(store, logr))

	authHandler := handlers.NewAuthHandler(store, tokens, logr)
	mux.Handle("/v1/auth/", authHandler)

	levelsHandler := handlers.NewLevelsHandler(registry, logr)
	mux.Handle("/v1/levels", levelsHandler)
	mux.Handle("/v1/levels/", levelsHandler)

	sessionHandler := handlers.NewSessionHandler(sessions, tokens, logr)
	mux.Handle("/v1/session", sessionHandler)
	mux.Handle("/v1/session/", sessionHandler)

	mux.Handle("/v1/leaderboard/", handlers.NewLeaderboardHandler(store, logr))
	mux.Handle("/v1/history", handlers.NewHistoryHandler(store, tokens, logr))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.Logger(mux, logr),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("Server forced to shutdown", "error", err)
	}
	if err := store.Close(); err != nil {
		logr.Error("Failed to close storage", "error", err)
	}

	logr.Info("Server stopped")
}
