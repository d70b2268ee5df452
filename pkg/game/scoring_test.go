package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scoringLevel hand-assembles the slice of Level the strategies read.
func scoringLevel(multiplier float64, optimal int) *Level {
	return &Level{
		RequiredItems: NewSet("R1", "R2", "R3", "R4", "R5", "R6"),
		Multiplier:    multiplier,
		OptimalMoves:  &optimal,
	}
}

func finishedState(collected int, moves int, status Status) *GameState {
	state := NewGameState("quest", "Hall")
	names := []string{"R1", "R2", "R3", "R4", "R5", "R6"}
	for _, name := range names[:collected] {
		state.CollectedItems.Add(name)
	}
	state.MoveCount = moves
	state.Status = status
	return state
}

func TestStandardScore_WinAtOptimal(t *testing.T) {
	lvl := scoringLevel(0.75, 7)
	state := finishedState(6, 7, StatusCompleted)

	// 1000 base + 500 progress + 1000 efficiency at a 0.75 multiplier.
	assert.Equal(t, 2250, StandardScore{}.Calculate(state, lvl))
}

func TestStandardScore_LossScoresProgressOnly(t *testing.T) {
	lvl := scoringLevel(0.75, 7)
	state := finishedState(5, 3, StatusGameOver)

	assert.Equal(t, 416, StandardScore{}.Calculate(state, lvl))
}

func TestStandardScore_InProgressScoresProgressOnly(t *testing.T) {
	lvl := scoringLevel(1.0, 7)
	state := finishedState(3, 2, StatusInProgress)

	assert.Equal(t, 250, StandardScore{}.Calculate(state, lvl))
}

func TestStandardScore_EfficiencyCappedAtOne(t *testing.T) {
	lvl := scoringLevel(0.75, 7)

	// Beating the optimum cannot score above a perfect run.
	under := finishedState(6, 5, StatusCompleted)
	atOptimal := finishedState(6, 7, StatusCompleted)

	assert.Equal(t,
		StandardScore{}.Calculate(atOptimal, lvl),
		StandardScore{}.Calculate(under, lvl))
}

func TestStandardScore_SlowWinScoresLess(t *testing.T) {
	lvl := scoringLevel(1.0, 7)

	fast := StandardScore{}.Calculate(finishedState(6, 7, StatusCompleted), lvl)
	slow := StandardScore{}.Calculate(finishedState(6, 14, StatusCompleted), lvl)

	assert.Less(t, slow, fast)
}

func TestStandardScore_NilOptimalFallsBackToFullEfficiency(t *testing.T) {
	lvl := scoringLevel(1.0, 7)
	lvl.OptimalMoves = nil
	state := finishedState(6, 30, StatusCompleted)

	assert.Equal(t, 2500, StandardScore{}.Calculate(state, lvl))
}

func TestStandardScore_MultiplierScalesEfficiencyOnly(t *testing.T) {
	state := finishedState(6, 7, StatusCompleted)

	easy := StandardScore{}.Calculate(state, scoringLevel(0.75, 7))
	medium := StandardScore{}.Calculate(state, scoringLevel(1.0, 7))
	hard := StandardScore{}.Calculate(state, scoringLevel(1.25, 7))

	assert.Equal(t, 2250, easy)
	assert.Equal(t, 2500, medium)
	assert.Equal(t, 2750, hard)

	// The multiplier never touches the progress term.
	loss := finishedState(5, 3, StatusGameOver)
	assert.Equal(t,
		StandardScore{}.Calculate(loss, scoringLevel(0.75, 7)),
		StandardScore{}.Calculate(loss, scoringLevel(1.25, 7)))
}

func TestMaxMovesScore_PenalizesOverage(t *testing.T) {
	lvl := scoringLevel(1.25, 7)
	state := finishedState(6, 14, StatusCompleted)

	// Standard base is 2125; a full overage costs half of it, rounded down.
	assert.Equal(t, 2125, StandardScore{}.Calculate(state, lvl))
	assert.Equal(t, 1063, MaxMovesScore{}.Calculate(state, lvl))
}

func TestMaxMovesScore_NoPenaltyAtOrUnderOptimal(t *testing.T) {
	lvl := scoringLevel(1.25, 7)

	for _, moves := range []int{5, 7} {
		state := finishedState(6, moves, StatusCompleted)
		assert.Equal(t,
			StandardScore{}.Calculate(state, lvl),
			MaxMovesScore{}.Calculate(state, lvl))
	}
}

func TestMaxMovesScore_PenaltyCapsAtHalf(t *testing.T) {
	lvl := scoringLevel(1.25, 7)

	// Overage past 2x optimal never costs more than half the base.
	state := finishedState(6, 50, StatusCompleted)
	base := StandardScore{}.Calculate(state, lvl)
	got := MaxMovesScore{}.Calculate(state, lvl)

	assert.Equal(t, base-base/2, got)
	assert.GreaterOrEqual(t, got, 0)
}

func TestMaxMovesScore_LossIsNotPenalized(t *testing.T) {
	lvl := scoringLevel(1.25, 7)
	state := finishedState(5, 40, StatusGameOver)

	assert.Equal(t,
		StandardScore{}.Calculate(state, lvl),
		MaxMovesScore{}.Calculate(state, lvl))
}
