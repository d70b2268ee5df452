package level

import (
	"errors"
	"fmt"
)

// ValidationError reports a structurally invalid level definition. These
// are build-time failures; once a level is loaded they never occur at
// runtime.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid level definition: " + e.Reason
}

// ErrUnsolvable marks a level with no winning path. Unsolvable levels must
// never be served to players, so this too is a build-time failure.
var ErrUnsolvable = errors.New("level is not solvable")

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ValidateDefinition enforces the structural invariants of a level
// definition: required fields present, start room exists, exit closure,
// a coordinate for every room, and exactly one villain. Traversal checks
// (solvability) are separate; see Solve.
func ValidateDefinition(defn *Definition) error {
	if defn.ID == "" {
		return validationErrorf("missing id")
	}
	if defn.Name == "" {
		return validationErrorf("missing name")
	}
	if defn.Difficulty == "" {
		return validationErrorf("missing difficulty")
	}
	if _, err := ParseDifficulty(defn.Difficulty); err != nil {
		return &ValidationError{Reason: err.Error()}
	}
	if defn.StartRoom == "" {
		return validationErrorf("missing start_room")
	}
	if len(defn.Rooms) == 0 {
		return validationErrorf("missing rooms")
	}
	if defn.Coords == nil {
		return validationErrorf("missing coords")
	}
	if defn.Rules.RequiredItems == nil {
		return validationErrorf("missing rules.required_items")
	}

	if _, ok := defn.Rooms[defn.StartRoom]; !ok {
		return validationErrorf("start room %q does not exist", defn.StartRoom)
	}

	for name, room := range defn.Rooms {
		for direction, target := range room.Exits {
			if _, ok := defn.Rooms[target]; !ok {
				return validationErrorf("room %q has invalid exit %s to %q", name, direction, target)
			}
		}
	}

	// Coordinates express layout, not occupancy; duplicates are legal.
	for name := range defn.Rooms {
		if _, ok := defn.Coords[name]; !ok {
			return validationErrorf("room %q missing coordinates", name)
		}
	}

	villains := 0
	for _, room := range defn.Rooms {
		if room.Item != nil && ItemKind(room.Item.Type) == KindVillain {
			villains++
		}
	}
	if villains != 1 {
		return validationErrorf("level must contain exactly one villain, found %d", villains)
	}

	return nil
}
