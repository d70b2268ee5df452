package game

import "github.com/jasonfuller/relic-quest/pkg/level"

// Projection is the UI-safe view of what a session may see. It is derived
// data, recomputed on every render, never persisted.
type Projection struct {
	ShowFullMap     bool `json:"show_full_map"`
	ShowItems       bool `json:"show_items"`
	ShowVillain     bool `json:"show_villain"`
	DiscoveredRooms Set  `json:"discovered_rooms"`
}

// CanRenderRoom reports whether the UI may render a room at all.
func (p Projection) CanRenderRoom(roomName string) bool {
	return p.ShowFullMap || p.DiscoveredRooms.Contains(roomName)
}

// VisibilityPolicy redacts a level/state pair into a Projection without
// leaking hidden information. Policies are stateless values keyed by
// difficulty.
type VisibilityPolicy interface {
	Project(lvl *Level, state *GameState) Projection
}

// EasyVisibility is omniscient: full map, items, and villain visible.
type EasyVisibility struct{}

func (EasyVisibility) Project(lvl *Level, state *GameState) Projection {
	return Projection{
		ShowFullMap:     true,
		ShowItems:       true,
		ShowVillain:     true,
		DiscoveredRooms: allRooms(lvl),
	}
}

// MediumVisibility shows the full map and the villain but hides items.
type MediumVisibility struct{}

func (MediumVisibility) Project(lvl *Level, state *GameState) Projection {
	return Projection{
		ShowFullMap:     true,
		ShowItems:       false,
		ShowVillain:     true,
		DiscoveredRooms: allRooms(lvl),
	}
}

// allRooms marks every room discovered on full-map projections, so the
// serialized discovered_rooms field carries the same data the UI renders.
func allRooms(lvl *Level) Set {
	discovered := NewSet()
	for name := range lvl.Map.Rooms {
		discovered.Add(name)
	}
	return discovered
}

// HardVisibility is fog-of-war: only visited rooms and the current
// location exist as far as the UI is concerned.
type HardVisibility struct{}

func (HardVisibility) Project(lvl *Level, state *GameState) Projection {
	discovered := NewSet(state.VisitedRooms.Sorted()...)
	discovered.Add(state.Player.Location)
	return Projection{
		ShowFullMap:     false,
		ShowItems:       false,
		ShowVillain:     false,
		DiscoveredRooms: discovered,
	}
}

// visibilityFor resolves the visibility policy for a difficulty.
func visibilityFor(d level.Difficulty) VisibilityPolicy {
	switch d {
	case level.DifficultyEasy:
		return EasyVisibility{}
	case level.DifficultyHard:
		return HardVisibility{}
	default:
		return MediumVisibility{}
	}
}
