// Package record holds the persistence-boundary records: the active game
// save and the append-only game result. Records carry what happened, not
// how; runtime detail stays in game.GameState.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/jasonfuller/relic-quest/pkg/game"
)

// GameSave is a user's single active game session as persisted by the
// storage layer. The storage layer enforces at most one active save per
// user; the save is deleted once the run is finalized or abandoned.
type GameSave struct {
	ID        uuid.UUID       `json:"id"`
	UserEmail string          `json:"user_email"`
	LevelID   string          `json:"level_id"`
	State     *game.GameState `json:"state"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewGameSave wraps a session state for persistence under a user.
func NewGameSave(userEmail, levelID string, state *game.GameState) *GameSave {
	return &GameSave{
		ID:        uuid.New(),
		UserEmail: userEmail,
		LevelID:   levelID,
		State:     state,
		UpdatedAt: time.Now().UTC(),
	}
}
