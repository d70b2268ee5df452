// Package levels builds and caches playable levels. A level is constructed
// exactly once per id at startup and shared read-only across all sessions;
// reconstruction per request is neither safe nor useful.
package levels

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jasonfuller/relic-quest/internal/storage"
	"github.com/jasonfuller/relic-quest/pkg/game"
)

// Registry holds the built levels. Immutable after Load.
type Registry struct {
	byID map[string]*game.Level
}

// Load reads every level definition from storage and builds it. Any
// invalid or unsolvable definition fails the whole load; a broken level
// must never be served.
func Load(ctx context.Context, store storage.Storage, log *slog.Logger) (*Registry, error) {
	definitions, err := store.ListLevelDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load level definitions: %w", err)
	}
	if len(definitions) == 0 {
		return nil, fmt.Errorf("no level definitions found")
	}

	byID := make(map[string]*game.Level, len(definitions))
	for _, defn := range definitions {
		lvl, err := game.BuildLevel(defn)
		if err != nil {
			return nil, fmt.Errorf("failed to build level %q: %w", defn.ID, err)
		}
		byID[lvl.ID] = lvl

		log.Info("Level built",
			"level_id", lvl.ID,
			"difficulty", lvl.Difficulty,
			"rooms", len(lvl.Map.Rooms),
			"optimal_moves", *lvl.OptimalMoves)
	}

	return &Registry{byID: byID}, nil
}

// Get returns the built level for an id, or nil if unknown.
func (r *Registry) Get(id string) *game.Level {
	return r.byID[id]
}

// All returns every level sorted by id.
func (r *Registry) All() []*game.Level {
	all := make([]*game.Level, 0, len(r.byID))
	for _, lvl := range r.byID {
		all = append(all, lvl)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
