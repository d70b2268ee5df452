package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jasonfuller/relic-quest/pkg/level"
)

// Level definition operations (filesystem-backed)

func (r *RedisStorage) ListLevelDefinitions(ctx context.Context) ([]*level.Definition, error) {
	levelsDir := filepath.Join(r.dataDir, "levels")
	var definitions []*level.Definition

	err := filepath.WalkDir(levelsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		defn, readErr := readLevelFile(path)
		if readErr != nil {
			r.logger.Warn("Skipping invalid level file", "path", path, "error", readErr)
			return nil
		}

		definitions = append(definitions, defn)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list level definitions: %w", err)
	}

	return definitions, nil
}

func (r *RedisStorage) GetLevelDefinition(ctx context.Context, id string) (*level.Definition, error) {
	definitions, err := r.ListLevelDefinitions(ctx)
	if err != nil {
		return nil, err
	}

	for _, defn := range definitions {
		if defn.ID == id {
			return defn, nil
		}
	}
	return nil, nil
}

func readLevelFile(path string) (*level.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	var defn level.Definition
	if err := decoder.Decode(&defn); err != nil {
		return nil, fmt.Errorf("failed to decode level file %s: %w", path, err)
	}

	return &defn, nil
}
