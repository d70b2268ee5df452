package game

import (
	"fmt"
	"time"

	"github.com/jasonfuller/relic-quest/pkg/level"
)

// User-facing move messages.
const (
	msgGameEnded   = "Game already ended."
	msgBumpedWall  = "You bumped into a wall."
	msgVillainWin  = "You defeated the villain!"
	msgVillainLoss = "You found the villain too soon."
)

// Move applies one movement action to the session state. It is the single
// authoritative place state transitions occur; no other code sets Status.
//
// A direction with no exit is not an error: the move still counts, the
// player stays put, and the state carries a wall message. A move on a
// terminal session is a guarded no-op that only refreshes the message.
func Move(state *GameState, lvl *Level, direction string) {
	if state.Status.IsTerminal() {
		state.Message = msgGameEnded
		return
	}

	state.UpdatedAt = time.Now().UTC()

	room := lvl.Map.Room(state.Player.Location)

	next, ok := room.Exits[direction]
	if !ok {
		// Blocked moves still consume a move; blind exploration costs.
		state.MoveCount++
		state.Message = msgBumpedWall
		state.EventLog = append(state.EventLog, "Bumped into a wall")
		return
	}

	state.Player.Location = next
	state.MoveCount++
	state.Visit(next)
	state.EventLog = append(state.EventLog, fmt.Sprintf("Moved %s to %s", direction, next))
	state.Message = ""

	entered := lvl.Map.Room(next)
	enterRoom(state, entered)
	checkRules(state, lvl, entered)
}

// enterRoom applies the entered room's item behavior. Item effects are a
// closed variant dispatched here, so room entry stays pure and testable.
func enterRoom(state *GameState, room *level.Room) {
	if room.Item == nil {
		return
	}

	switch room.Item.Kind {
	case level.KindRelic:
		// Idempotent: re-entering a collected relic's room is a no-op.
		if !state.CollectedItems.Contains(room.Item.Name) {
			state.CollectedItems.Add(room.Item.Name)
			state.EventLog = append(state.EventLog, fmt.Sprintf("Collected %s", room.Item.Name))
			state.Message = fmt.Sprintf("You found the %s!", room.Item.Name)
		}
	case level.KindVillain:
		// Set-once flag; rule evaluation still runs on every entry.
		state.EncounteredVillain = true
	}
}

// checkRules evaluates the win/loss condition after room entry. Meeting
// the villain with every required item collected wins; meeting the villain
// early loses. Any other room leaves the status untouched.
func checkRules(state *GameState, lvl *Level, room *level.Room) {
	if !room.Item.IsVillain() {
		return
	}

	if state.CollectedItems.ContainsAll(lvl.RequiredItems) {
		state.Status = StatusCompleted
		state.Message = msgVillainWin
		state.EventLog = append(state.EventLog, "Defeated the villain")
	} else {
		state.Status = StatusGameOver
		state.Message = msgVillainLoss
		state.EventLog = append(state.EventLog, "Defeated by the villain")
	}
}
