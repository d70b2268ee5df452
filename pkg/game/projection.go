package game

// Render keys a UI may receive for a room cell.
const (
	RenderHidden  = "hidden"
	RenderPlayer  = "player"
	RenderVillain = "villain"
	RenderRelic   = "relic"
	RenderEmpty   = "empty"
)

// RoomView is one room cell of a level view.
type RoomView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Render string `json:"render"`
}

// GridSize is the bounding box of the level layout.
type GridSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LevelView is the grid-shaped, UI-safe view of a level for one session,
// already filtered through the level's visibility policy.
type LevelView struct {
	PlayerRoom string              `json:"player_room"`
	Grid       GridSize            `json:"grid"`
	Rooms      map[string]RoomView `json:"rooms"`
}

// View renders the level through its visibility policy for the given
// session. Hidden rooms keep their coordinates so the UI can draw fog;
// collected relics and concealed villains render as empty cells.
func (lvl *Level) View(state *GameState) LevelView {
	visibility := lvl.Visibility.Project(lvl, state)

	rooms := make(map[string]RoomView, len(lvl.Map.Rooms))
	maxX, maxY := 0, 0

	for name, room := range lvl.Map.Rooms {
		coord := lvl.Map.Coords[name]
		maxX = max(maxX, coord.X)
		maxY = max(maxY, coord.Y)

		if !visibility.CanRenderRoom(name) {
			rooms[name] = RoomView{X: coord.X, Y: coord.Y, Render: RenderHidden}
			continue
		}

		render := RenderEmpty
		switch {
		case name == state.Player.Location:
			render = RenderPlayer
		case room.Item.IsVillain() && visibility.ShowVillain:
			render = RenderVillain
		case room.Item.IsRelic() && visibility.ShowItems && !state.CollectedItems.Contains(room.Item.Name):
			render = RenderRelic
		}

		rooms[name] = RoomView{X: coord.X, Y: coord.Y, Render: render}
	}

	return LevelView{
		PlayerRoom: state.Player.Location,
		Grid:       GridSize{Width: maxX + 1, Height: maxY + 1},
		Rooms:      rooms,
	}
}
