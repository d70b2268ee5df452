package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_Basic(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	Move(state, lvl, "east")

	assert.Equal(t, "Shrine", state.Player.Location)
	assert.Equal(t, 1, state.MoveCount)
	assert.True(t, state.VisitedRooms.Contains("Shrine"))
	assert.Equal(t, StatusInProgress, state.Status)
}

func TestMove_BlockedStillCounts(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	Move(state, lvl, "north")

	assert.Equal(t, "Hall", state.Player.Location)
	assert.Equal(t, 1, state.MoveCount)
	assert.Equal(t, "You bumped into a wall.", state.Message)
	assert.Contains(t, state.EventLog, "Bumped into a wall")
}

func TestMove_MoveCountStrictlyIncrements(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	for i, direction := range []string{"east", "west", "north", "south"} {
		Move(state, lvl, direction)
		assert.Equal(t, i+1, state.MoveCount)
	}
}

func TestMove_CollectRelic(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	Move(state, lvl, "east")

	assert.True(t, state.CollectedItems.Contains("Gem"))
	assert.Equal(t, "You found the Gem!", state.Message)
	assert.Contains(t, state.EventLog, "Collected Gem")
}

func TestMove_RelicCollectionIsIdempotent(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	Move(state, lvl, "east")
	Move(state, lvl, "west")
	Move(state, lvl, "east")

	assert.Len(t, state.CollectedItems, 1)

	collected := 0
	for _, event := range state.EventLog {
		if event == "Collected Gem" {
			collected++
		}
	}
	assert.Equal(t, 1, collected)
	// Re-entry is silent; the move message is cleared, not replayed.
	assert.Empty(t, state.Message)
}

func TestMove_VillainTooSoon(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	Move(state, lvl, "east")
	Move(state, lvl, "east")

	assert.Equal(t, StatusGameOver, state.Status)
	assert.True(t, state.EncounteredVillain)
	assert.Equal(t, "You found the villain too soon.", state.Message)
	assert.Contains(t, state.EventLog, "Defeated by the villain")
}

func TestMove_WinWithAllRelics(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	for _, direction := range []string{"south", "north", "east", "east"} {
		Move(state, lvl, direction)
	}

	assert.Equal(t, StatusCompleted, state.Status)
	assert.True(t, state.EncounteredVillain)
	assert.Equal(t, 4, state.MoveCount)
	assert.Equal(t, "You defeated the villain!", state.Message)
	assert.Contains(t, state.EventLog, "Defeated the villain")
}

func TestMove_RefreshesUpdatedAt(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)
	created := state.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	Move(state, lvl, "east")
	assert.True(t, state.UpdatedAt.After(created))

	// A bump is still a state change.
	afterMove := state.UpdatedAt
	time.Sleep(5 * time.Millisecond)
	Move(state, lvl, "north")
	assert.True(t, state.UpdatedAt.After(afterMove))
}

func TestMove_TerminalStateIsGuarded(t *testing.T) {
	lvl := questLevel(t, "easy")
	state := NewGameState(lvl.ID, lvl.StartRoom)

	Move(state, lvl, "east")
	Move(state, lvl, "east")
	require.Equal(t, StatusGameOver, state.Status)

	movesBefore := state.MoveCount
	eventsBefore := len(state.EventLog)

	Move(state, lvl, "west")

	assert.Equal(t, movesBefore, state.MoveCount)
	assert.Equal(t, "Lair", state.Player.Location)
	assert.Equal(t, "Game already ended.", state.Message)
	assert.Len(t, state.EventLog, eventsBefore)
}
