package level

import "fmt"

// Room is a single named location. Immutable after construction; exits map
// compass directions to room names within the same level.
type Room struct {
	Name  string            `json:"name"`
	Exits map[string]string `json:"exits,omitempty"`
	Item  *Item             `json:"item,omitempty"`
}

// Coord is a render-layout position. Coordinates never imply adjacency;
// adjacency is exits only.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapGraph owns all rooms of a level plus their layout coordinates.
type MapGraph struct {
	Rooms  map[string]*Room `json:"rooms"`
	Coords map[string]Coord `json:"coords"`
}

// Room returns the named room, or nil if it does not exist.
func (m *MapGraph) Room(name string) *Room {
	return m.Rooms[name]
}

// Neighbors returns the exits of a room as direction → room name.
func (m *MapGraph) Neighbors(name string) map[string]string {
	room := m.Rooms[name]
	if room == nil {
		return nil
	}
	return room.Exits
}

// BuildMap compiles a validated definition's rooms and coordinates into a
// MapGraph. Unknown item kinds are rejected here rather than at play time.
func BuildMap(defn *Definition) (*MapGraph, error) {
	rooms := make(map[string]*Room, len(defn.Rooms))
	for name, rd := range defn.Rooms {
		var item *Item
		if rd.Item != nil {
			var err error
			item, err = NewItem(rd.Item.Type, rd.Item.Name)
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", name, err)
			}
		}

		exits := make(map[string]string, len(rd.Exits))
		for dir, target := range rd.Exits {
			exits[dir] = target
		}

		rooms[name] = &Room{
			Name:  name,
			Exits: exits,
			Item:  item,
		}
	}

	coords := make(map[string]Coord, len(defn.Coords))
	for name, xy := range defn.Coords {
		coords[name] = Coord{X: xy[0], Y: xy[1]}
	}

	return &MapGraph{Rooms: rooms, Coords: coords}, nil
}
