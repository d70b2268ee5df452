package level

// Definition is the wire form of a level, as loaded from the data dir or
// seeded into storage. It is validated and compiled into rooms and a map
// graph before play; a Definition itself is never served to players.
type Definition struct {
	ID         string                    `json:"id"`
	Name       string                    `json:"name"`
	Difficulty string                    `json:"difficulty"`
	StartRoom  string                    `json:"start_room"`
	Rooms      map[string]RoomDefinition `json:"rooms"`
	Coords     map[string][2]int         `json:"coords"`
	Rules      RulesDefinition           `json:"rules"`
	Version    int                       `json:"version,omitempty"`
}

// RoomDefinition describes one room: its exits (direction → room name)
// and an optional item.
type RoomDefinition struct {
	Exits map[string]string `json:"exits,omitempty"`
	Item  *ItemDefinition   `json:"item,omitempty"`
}

// ItemDefinition is the wire form of a room item.
type ItemDefinition struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// RulesDefinition declares the win condition: the items that must be
// collected before meeting the villain.
type RulesDefinition struct {
	RequiredItems []string `json:"required_items"`
}
