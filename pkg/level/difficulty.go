package level

import "fmt"

// Difficulty selects the visibility policy, scoring strategy, and scoring
// multiplier for a level. It is a pure lookup key and carries no gameplay
// logic itself.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a wire label into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}

func (d Difficulty) String() string {
	return string(d)
}
