package game

import "github.com/jasonfuller/relic-quest/pkg/level"

// ScoreStrategy computes a deterministic score from a session's final
// state and its level. Strategies are stateless values and never mutate
// their inputs.
type ScoreStrategy interface {
	Calculate(state *GameState, lvl *Level) int
}

// Scoring constants shared by all strategies.
const (
	winBase            = 1000
	maxProgressScore   = 500
	maxEfficiencyScore = 1000
)

// StandardScore rewards progress always and efficiency only on a win.
// Difficulty scales the efficiency term through the level's multiplier,
// never the progress term.
type StandardScore struct{}

func (StandardScore) Calculate(state *GameState, lvl *Level) int {
	progress := 0.0
	if total := len(lvl.RequiredItems); total > 0 {
		progress = float64(len(state.CollectedItems)) / float64(total)
	}
	progressScore := int(maxProgressScore * progress)

	if state.Status != StatusCompleted {
		return progressScore
	}

	// Efficiency defaults to 1.0 when the optimum is undefined or no moves
	// were recorded; never divide by zero.
	efficiency := 1.0
	if lvl.OptimalMoves != nil && *lvl.OptimalMoves > 0 && state.MoveCount > 0 {
		efficiency = min(float64(*lvl.OptimalMoves)/float64(state.MoveCount), 1.0)
	}
	efficiencyScore := int(maxEfficiencyScore * efficiency)

	return int(winBase + float64(progressScore) + float64(efficiencyScore)*lvl.Multiplier)
}

// MaxMovesScore is the standard score with an overage penalty: completing
// a level in more moves than the optimum costs up to half the base score.
// The hard-difficulty default.
type MaxMovesScore struct {
	StandardScore
}

const overagePenaltyFactor = 0.5

func (s MaxMovesScore) Calculate(state *GameState, lvl *Level) int {
	base := s.StandardScore.Calculate(state, lvl)

	if state.Status != StatusCompleted {
		return base
	}
	if lvl.OptimalMoves == nil || *lvl.OptimalMoves <= 0 {
		return base
	}
	if state.MoveCount <= *lvl.OptimalMoves {
		return base
	}

	overage := state.MoveCount - *lvl.OptimalMoves
	penaltyRatio := min(float64(overage)/float64(*lvl.OptimalMoves), 1.0)
	penalty := int(float64(base) * penaltyRatio * overagePenaltyFactor)

	return max(base-penalty, 0)
}

// strategyFor resolves the scoring algorithm for a difficulty.
func strategyFor(d level.Difficulty) ScoreStrategy {
	if d == level.DifficultyHard {
		return MaxMovesScore{}
	}
	return StandardScore{}
}

// multiplierFor resolves the difficulty's efficiency multiplier. The
// values are monotonically non-decreasing by difficulty.
func multiplierFor(d level.Difficulty) float64 {
	switch d {
	case level.DifficultyEasy:
		return 0.75
	case level.DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}
