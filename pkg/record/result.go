package record

import (
	"time"

	"github.com/jasonfuller/relic-quest/pkg/game"
)

// Snapshot is an optional summary of the final game state, kept for
// analytics alongside a result.
type Snapshot struct {
	FinalRoom          string   `json:"final_room"`
	Inventory          []string `json:"inventory"`
	EncounteredVillain bool     `json:"encountered_villain"`
	OptimalMoves       *int     `json:"optimal_moves,omitempty"`
}

// GameResult is the immutable, append-only record of a finished game
// session. Results are never mutated after creation.
type GameResult struct {
	UserEmail      string      `json:"user_email"`
	LevelID        string      `json:"level_id"`
	Status         game.Status `json:"status"`
	Score          int         `json:"score"`
	Moves          int         `json:"moves"`
	ItemsCollected int         `json:"items_collected"`
	FinishedAt     time.Time   `json:"finished_at"`
	Snapshot       *Snapshot   `json:"snapshot,omitempty"`
}

// NewGameResult captures a terminal session state into a result record.
// The score is computed by the caller via the level's scoring strategy.
func NewGameResult(userEmail string, lvl *game.Level, state *game.GameState, score int) *GameResult {
	return &GameResult{
		UserEmail:      userEmail,
		LevelID:        state.LevelID,
		Status:         state.Status,
		Score:          score,
		Moves:          state.MoveCount,
		ItemsCollected: len(state.CollectedItems),
		FinishedAt:     time.Now().UTC(),
		Snapshot: &Snapshot{
			FinalRoom:          state.Player.Location,
			Inventory:          state.CollectedItems.Sorted(),
			EncounteredVillain: state.EncounteredVillain,
			OptimalMoves:       lvl.OptimalMoves,
		},
	}
}
