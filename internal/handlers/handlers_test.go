package handlers

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jasonfuller/relic-quest/internal/auth"
	"github.com/jasonfuller/relic-quest/internal/levels"
	"github.com/jasonfuller/relic-quest/internal/session"
	"github.com/jasonfuller/relic-quest/internal/storage"
	"github.com/jasonfuller/relic-quest/pkg/level"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func questDefinition() *level.Definition {
	return &level.Definition{
		ID:         "quest",
		Name:       "Quest",
		Difficulty: "easy",
		StartRoom:  "Hall",
		Rooms: map[string]level.RoomDefinition{
			"Hall": {Exits: map[string]string{"east": "Shrine"}},
			"Shrine": {
				Exits: map[string]string{"west": "Hall", "east": "Lair"},
				Item:  &level.ItemDefinition{Type: "relic", Name: "Gem"},
			},
			"Lair": {
				Exits: map[string]string{"west": "Shrine"},
				Item:  &level.ItemDefinition{Type: "villain", Name: "Shadow"},
			},
		},
		Coords: map[string][2]int{"Hall": {0, 0}, "Shrine": {1, 0}, "Lair": {2, 0}},
		Rules:  level.RulesDefinition{RequiredItems: []string{"Gem"}},
	}
}

// testStack wires the full handler dependency chain over MockStorage.
func testStack(t *testing.T) (*storage.MockStorage, *levels.Registry, *session.Service) {
	t.Helper()

	store := storage.NewMockStorage()
	store.AddLevelDefinition(questDefinition())

	registry, err := levels.Load(context.Background(), store, testLogger())
	require.NoError(t, err)

	return store, registry, session.NewService(registry, store, testLogger())
}
