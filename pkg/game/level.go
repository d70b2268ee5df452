package game

import (
	"fmt"

	"github.com/jasonfuller/relic-quest/pkg/level"
)

// Level is a fully-built, immutable level configuration: the static map,
// win rules, the difficulty-resolved visibility and scoring behavior, and
// the solver's precomputed optimal move count. Built once per level id and
// shared read-only across all sessions.
type Level struct {
	ID         string
	Name       string
	Difficulty level.Difficulty
	StartRoom  string

	Map           *level.MapGraph
	RequiredItems Set

	Visibility VisibilityPolicy
	Scoring    ScoreStrategy
	Multiplier float64

	// OptimalMoves is nil only in hand-assembled test fixtures; BuildLevel
	// always sets it or fails.
	OptimalMoves *int
}

// BuildLevel validates a definition and assembles an immutable Level.
//
// Steps, in order: structural validation, room/item construction, map
// graph, required-item resolution, solvability (an unsolvable level is a
// construction failure, not a runtime condition), then difficulty
// resolution. No partially-built Level is ever returned.
func BuildLevel(defn *level.Definition) (*Level, error) {
	if err := level.ValidateDefinition(defn); err != nil {
		return nil, err
	}

	mapGraph, err := level.BuildMap(defn)
	if err != nil {
		return nil, err
	}

	required := NewSet(defn.Rules.RequiredItems...)

	optimal, err := level.Solve(mapGraph, defn.StartRoom, defn.Rules.RequiredItems)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", defn.ID, err)
	}

	difficulty, err := level.ParseDifficulty(defn.Difficulty)
	if err != nil {
		return nil, err
	}

	return &Level{
		ID:            defn.ID,
		Name:          defn.Name,
		Difficulty:    difficulty,
		StartRoom:     defn.StartRoom,
		Map:           mapGraph,
		RequiredItems: required,
		Visibility:    visibilityFor(difficulty),
		Scoring:       strategyFor(difficulty),
		Multiplier:    multiplierFor(difficulty),
		OptimalMoves:  &optimal,
	}, nil
}
