package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonfuller/relic-quest/internal/levels"
	"github.com/jasonfuller/relic-quest/internal/storage"
	"github.com/jasonfuller/relic-quest/pkg/game"
	"github.com/jasonfuller/relic-quest/pkg/level"
)

const testUser = "player@example.com"

// questDefinition mirrors the engine test map: two relics, one of them
// down a dead end, villain two rooms east. Optimal win in four moves.
func questDefinition(difficulty string) *level.Definition {
	return &level.Definition{
		ID:         "quest",
		Name:       "Quest",
		Difficulty: difficulty,
		StartRoom:  "Hall",
		Rooms: map[string]level.RoomDefinition{
			"Hall": {Exits: map[string]string{"east": "Shrine", "south": "Cellar"}},
			"Shrine": {
				Exits: map[string]string{"west": "Hall", "east": "Lair"},
				Item:  &level.ItemDefinition{Type: "relic", Name: "Gem"},
			},
			"Lair": {
				Exits: map[string]string{"west": "Shrine"},
				Item:  &level.ItemDefinition{Type: "villain", Name: "Shadow"},
			},
			"Cellar": {
				Exits: map[string]string{"north": "Hall"},
				Item:  &level.ItemDefinition{Type: "relic", Name: "Orb"},
			},
		},
		Coords: map[string][2]int{
			"Hall": {0, 0}, "Shrine": {1, 0}, "Lair": {2, 0}, "Cellar": {0, 1},
		},
		Rules: level.RulesDefinition{RequiredItems: []string{"Gem", "Orb"}},
	}
}

func newTestService(t *testing.T, difficulty string) (*Service, *storage.MockStorage) {
	t.Helper()

	store := storage.NewMockStorage()
	store.AddLevelDefinition(questDefinition(difficulty))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry, err := levels.Load(context.Background(), store, logger)
	require.NoError(t, err)

	return NewService(registry, store, logger), store
}

func TestService_Start(t *testing.T) {
	svc, store := newTestService(t, "easy")
	ctx := context.Background()

	view, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	require.NotNil(t, view.Save)
	assert.Equal(t, testUser, view.Save.UserEmail)
	assert.Equal(t, "quest", view.Save.LevelID)
	assert.Equal(t, "Hall", view.Save.State.Player.Location)
	assert.Equal(t, "Started Quest", view.Save.State.Message)
	assert.Equal(t, "Hall", view.Level.PlayerRoom)
	assert.Nil(t, view.Score)

	saved, err := store.GetActiveSave(ctx, testUser)
	require.NoError(t, err)
	assert.NotNil(t, saved)
}

func TestService_StartUnknownLevel(t *testing.T) {
	svc, _ := newTestService(t, "easy")

	_, err := svc.Start(context.Background(), testUser, "nope")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestService_StartConflictsWithActiveSession(t *testing.T) {
	svc, _ := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	_, err = svc.Start(ctx, testUser, "quest")
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestService_RestartReplacesActiveSession(t *testing.T) {
	svc, _ := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)
	_, err = svc.Move(ctx, testUser, "east")
	require.NoError(t, err)

	view, err := svc.Restart(ctx, testUser, "quest")
	require.NoError(t, err)
	assert.Equal(t, 0, view.Save.State.MoveCount)
	assert.Equal(t, "Hall", view.Save.State.Player.Location)
}

func TestService_Restore(t *testing.T) {
	svc, _ := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Restore(ctx, testUser)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)
	_, err = svc.Move(ctx, testUser, "east")
	require.NoError(t, err)

	view, err := svc.Restore(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, "Shrine", view.Save.State.Player.Location)
	assert.Equal(t, 1, view.Save.State.MoveCount)
}

func TestService_MoveAutosaves(t *testing.T) {
	svc, store := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	view, err := svc.Move(ctx, testUser, "east")
	require.NoError(t, err)
	assert.Equal(t, game.StatusInProgress, view.Save.State.Status)
	assert.Nil(t, view.Score)

	saved, err := store.GetActiveSave(ctx, testUser)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Shrine", saved.State.Player.Location)
}

func TestService_MovePersistsFreshTimestamp(t *testing.T) {
	svc, store := newTestService(t, "easy")
	ctx := context.Background()

	started, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)
	created := started.Save.State.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	_, err = svc.Move(ctx, testUser, "east")
	require.NoError(t, err)

	saved, err := store.GetActiveSave(ctx, testUser)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, saved.State.UpdatedAt.After(created))
}

func TestService_MoveWithoutSession(t *testing.T) {
	svc, _ := newTestService(t, "easy")

	_, err := svc.Move(context.Background(), testUser, "east")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestService_WinFinalizes(t *testing.T) {
	svc, store := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	var view *View
	for _, direction := range []string{"south", "north", "east", "east"} {
		view, err = svc.Move(ctx, testUser, direction)
		require.NoError(t, err)
	}

	assert.Equal(t, game.StatusCompleted, view.Save.State.Status)
	require.NotNil(t, view.Score)
	// 1000 base + 500 progress + 1000 efficiency at 0.75.
	assert.Equal(t, 2250, *view.Score)

	// The run is finalized: save gone, result recorded.
	saved, err := store.GetActiveSave(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, saved)

	results, err := store.ResultsByUser(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2250, results[0].Score)
	assert.Equal(t, game.StatusCompleted, results[0].Status)
	assert.Equal(t, 4, results[0].Moves)
	assert.Equal(t, 2, results[0].ItemsCollected)

	_, err = svc.Move(ctx, testUser, "west")
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestService_LossFinalizes(t *testing.T) {
	svc, store := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	var view *View
	for _, direction := range []string{"east", "east"} {
		view, err = svc.Move(ctx, testUser, direction)
		require.NoError(t, err)
	}

	assert.Equal(t, game.StatusGameOver, view.Save.State.Status)
	require.NotNil(t, view.Score)
	// One of two relics collected: progress only.
	assert.Equal(t, 250, *view.Score)

	results, err := store.ResultsByUser(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, game.StatusGameOver, results[0].Status)
}

func TestService_Abandon(t *testing.T) {
	svc, store := newTestService(t, "easy")
	ctx := context.Background()

	_, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	require.NoError(t, svc.Abandon(ctx, testUser))

	saved, err := store.GetActiveSave(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, saved)

	// Abandoned runs leave no result behind.
	results, err := store.ResultsByUser(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestService_HardViewIsFogged(t *testing.T) {
	svc, _ := newTestService(t, "hard")
	ctx := context.Background()

	view, err := svc.Start(ctx, testUser, "quest")
	require.NoError(t, err)

	assert.Equal(t, game.RenderPlayer, view.Level.Rooms["Hall"].Render)
	assert.Equal(t, game.RenderHidden, view.Level.Rooms["Lair"].Render)
}
