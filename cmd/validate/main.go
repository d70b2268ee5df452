// Command validate checks a level definition file: strict JSON decode,
// structural validation, and solvability. It prints the optimal move
// count on success so level authors can sanity-check their layouts.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jasonfuller/relic-quest/pkg/game"
	"github.com/jasonfuller/relic-quest/pkg/level"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <level.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	if err := validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
}

var filenamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("level file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !filenamePattern.MatchString(nameWithoutExt) {
		return fmt.Errorf("level filename %q must be lowercase snake_case (e.g. relic_rush_easy.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()

	var defn level.Definition
	if err := decoder.Decode(&defn); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	lvl, err := game.BuildLevel(&defn)
	if err != nil {
		return err
	}

	fmt.Println("Level file is valid!")
	fmt.Printf("  id:            %s\n", lvl.ID)
	fmt.Printf("  difficulty:    %s\n", lvl.Difficulty)
	fmt.Printf("  rooms:         %d\n", len(lvl.Map.Rooms))
	fmt.Printf("  required:      %d\n", len(lvl.RequiredItems))
	fmt.Printf("  optimal moves: %d\n", *lvl.OptimalMoves)
	return nil
}
